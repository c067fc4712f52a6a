package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// GetFilm returns the film by id
func (k Keeper) GetFilm(ctx sdk.Context, id uint64) (types.Film, error) {
	var f types.Film
	if !k.load(ctx, types.GetFilmKey(id), &f) {
		return f, types.ErrFilmNotFound.Wrapf("id %d", id)
	}
	return f, nil
}

func (k Keeper) setFilm(ctx sdk.Context, f types.Film) {
	k.save(ctx, types.GetFilmKey(f.ID), &f)
}

// IterateFilms calls cb for all films ordered by id until cb returns true
func (k Keeper) IterateFilms(ctx sdk.Context, cb func(types.Film) bool) {
	iterate(ctx, k.storeKey, types.FilmPrefix, func(_, value []byte) bool {
		var f types.Film
		k.cdc.MustUnmarshal(value, &f)
		return cb(f)
	})
}

// GetFilmStatus returns the status of the film
func (k Keeper) GetFilmStatus(ctx sdk.Context, id uint64) (types.FilmStatus, error) {
	f, err := k.GetFilm(ctx, id)
	if err != nil {
		return 0, err
	}
	return f.Status, nil
}

// ProposalFilmCreate lists a new film of the studio. Films created with noVote skip the
// community vote.
func (k Keeper) ProposalFilmCreate(ctx sdk.Context, studio sdk.AccAddress, fundType types.FundType, noVote bool) (uint64, error) {
	var id uint64
	err := k.atomic(ctx, "proposal_film_create", func(ctx sdk.Context) error {
		if err := fundType.ValidateBasic(); err != nil {
			return err
		}
		if err := k.requireProposer(ctx, studio); err != nil {
			return err
		}
		id = k.autoIncrementID(ctx, types.SequenceFilmID)
		f := types.NewFilm(id, studio, fundType, !noVote, ctx.BlockTime())
		k.setFilm(ctx, f)
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeProjectStatusChanged,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyFilmID, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeKeyNewStatus, f.Status.String()),
			sdk.NewAttribute(types.AttributeKeyCreator, studio.String()),
		))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ProposalFilmUpdate completes a listed film with its terms. A film that requires a vote
// opens its film proposal, a fast track film is approved right away.
func (k Keeper) ProposalFilmUpdate(ctx sdk.Context, studio sdk.AccAddress, filmID uint64, terms types.FilmTerms) error {
	return k.atomic(ctx, "proposal_film_update", func(ctx sdk.Context) error {
		f, err := k.GetFilm(ctx, filmID)
		if err != nil {
			return err
		}
		if !f.Studio.Equals(studio) {
			return types.ErrNotStudio
		}
		if f.Status != types.FilmStatusListed {
			return types.ErrInvalidFilmStatus.Wrapf("film %d is %s", f.ID, f.Status)
		}
		if err := terms.ValidateBasic(f.FundType); err != nil {
			return err
		}
		f.Terms = terms
		if err := k.transitionFilm(ctx, &f, types.FilmStatusUpdated); err != nil {
			return err
		}
		if f.RequiresVote {
			p, err := k.submitProposal(ctx, studio, types.ProposalContent{
				Film: &types.FilmApproval{FilmID: f.ID},
			}, terms.Title, terms.Description)
			if err != nil {
				return err
			}
			f.ProposalID = p.ID
		} else if err := k.transitionFilm(ctx, &f, f.FundType.ApprovedStatus()); err != nil {
			return err
		}
		k.setFilm(ctx, f)
		return nil
	})
}

// transitionFilm moves the film status forward. Approval for funding opens the fund period.
func (k Keeper) transitionFilm(ctx sdk.Context, f *types.Film, to types.FilmStatus) error {
	if !f.CanTransition(to) {
		return types.ErrInvalidFilmStatus.Wrapf("film %d: %s to %s", f.ID, f.Status, to)
	}
	old := f.Status
	f.Status = to
	if to == types.FilmStatusApprovedFunding {
		f.FundPeriodStart = ctx.BlockTime()
	}
	if to == types.FilmStatusApprovedListing || to == types.FilmStatusApprovedFunding {
		ModuleLogger(ctx).Info("film approved", "id", f.ID, "status", to.String())
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProjectStatusChanged,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyFilmID, strconv.FormatUint(f.ID, 10)),
		sdk.NewAttribute(types.AttributeKeyOldStatus, old.String()),
		sdk.NewAttribute(types.AttributeKeyNewStatus, to.String()),
	))
	return nil
}

// filmProposal returns the open vote of a film
func (k Keeper) filmProposal(ctx sdk.Context, f types.Film) (types.Proposal, error) {
	if f.Status != types.FilmStatusUpdated || !f.RequiresVote {
		return types.Proposal{}, types.ErrInvalidFilmStatus.Wrapf("film %d is not up for a vote", f.ID)
	}
	return k.GetProposal(ctx, f.ProposalID)
}

// VoteToFilms casts votes on several films. Either all votes are recorded or none.
func (k Keeper) VoteToFilms(ctx sdk.Context, voter sdk.AccAddress, filmIDs []uint64, choices []types.VoteChoice) error {
	return k.atomic(ctx, "vote_films", func(ctx sdk.Context) error {
		if len(filmIDs) == 0 {
			return types.ErrEmptyBatch
		}
		if len(filmIDs) != len(choices) {
			return types.ErrLengthMismatch.Wrap("film ids and choices")
		}
		for i, id := range filmIDs {
			f, err := k.GetFilm(ctx, id)
			if err != nil {
				return err
			}
			p, err := k.filmProposal(ctx, f)
			if err != nil {
				return err
			}
			if err := k.castVote(ctx, voter, p, choices[i]); err != nil {
				return sdkerrors.Wrapf(err, "film %d", id)
			}
		}
		return nil
	})
}

// ApproveFilms finalizes several films. Fast track films are approved by their fund
// type, voted films are tallied once their vote period passed. Either all films are
// processed or none. The result holds the approval of each film.
func (k Keeper) ApproveFilms(ctx sdk.Context, filmIDs []uint64) ([]bool, error) {
	result := make([]bool, len(filmIDs))
	err := k.atomic(ctx, "approve_films", func(ctx sdk.Context) error {
		if len(filmIDs) == 0 {
			return types.ErrEmptyBatch
		}
		for i, id := range filmIDs {
			f, err := k.GetFilm(ctx, id)
			if err != nil {
				return err
			}
			if f.Status != types.FilmStatusUpdated {
				return types.ErrInvalidFilmStatus.Wrapf("film %d is %s", f.ID, f.Status)
			}
			approved := true
			if f.RequiresVote {
				p, err := k.filmProposal(ctx, f)
				if err != nil {
					return err
				}
				if approved, err = k.tally(ctx, p, types.ErrFilmVotePeriod); err != nil {
					return sdkerrors.Wrapf(err, "film %d", id)
				}
				p.Status = types.ProposalStatusRejected
				if approved {
					p.Status = types.ProposalStatusApproved
				}
				k.setProposal(ctx, p)
				k.emitTallied(ctx, p, approved)
			}
			if approved {
				if err := k.transitionFilm(ctx, &f, f.FundType.ApprovedStatus()); err != nil {
					return err
				}
				k.setFilm(ctx, f)
			}
			result[i] = approved
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
