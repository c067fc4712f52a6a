package keeper

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

const filmFundPeriod = 20 * 24 * 60 * 60

// usd returns whole asset units normalized to 18 decimals
func usd(n int64) sdk.Int {
	return sdk.NewIntWithDecimal(n, types.NormalizedDecimals)
}

// rawUSD returns whole asset units in the 6 decimals of the test asset
func rawUSD(n int64) sdk.Int {
	return sdk.NewIntWithDecimal(n, testAssetDecimals)
}

// validTerms pays everything to a single payee
func validTerms(raise sdk.Int, payee sdk.AccAddress) types.FilmTerms {
	return types.FilmTerms{
		Title:         "my film",
		Description:   "a documentary",
		SharePercents: []types.Percent{types.OneHundredPercent},
		Payees:        []sdk.AccAddress{payee},
		RaiseAmount:   raise,
		FundPeriod:    filmFundPeriod,
	}
}

// createFilm lists and updates a film of the first fixture staker
func (f *daoFixture) createFilm(t *testing.T, fundType types.FundType, noVote bool, terms types.FilmTerms) uint64 {
	studio := f.stakers[0]
	id, err := f.k.ProposalFilmCreate(f.ctx, studio, fundType, noVote)
	require.NoError(t, err)
	require.NoError(t, f.k.ProposalFilmUpdate(f.ctx, studio, id, terms))
	return id
}

// fundingFilm returns a film open for deposits from now on
func (f *daoFixture) fundingFilm(t *testing.T, raise sdk.Int) uint64 {
	return f.createFilm(t, types.FundTypeFunding, true, validTerms(raise, RandomAddress(t)))
}

func TestProposalFilmCreate(t *testing.T) {
	f := setupDAO(t, 1)
	specs := map[string]struct {
		studio   sdk.AccAddress
		fundType types.FundType
		expErr   error
	}{
		"funding": {
			studio:   f.stakers[0],
			fundType: types.FundTypeFunding,
		},
		"listing": {
			studio:   f.stakers[0],
			fundType: types.FundTypeListing,
		},
		"unknown fund type": {
			studio:   f.stakers[0],
			fundType: 1,
			expErr:   types.ErrInvalidFundType,
		},
		"not staked": {
			studio:   RandomAddress(t),
			fundType: types.FundTypeFunding,
			expErr:   types.ErrNotStaker,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, _ := f.ctx.CacheContext()
			id, gotErr := f.k.ProposalFilmCreate(ctx, spec.studio, spec.fundType, false)
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, uint64(1), id)
			film, err := f.k.GetFilm(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, types.FilmStatusListed, film.Status)
			assert.Equal(t, spec.fundType, film.FundType)
			assert.True(t, film.RequiresVote)
			assert.Equal(t, spec.studio, film.Studio)
		})
	}
}

func TestProposalFilmUpdate(t *testing.T) {
	f := setupDAO(t, 2)
	studio := f.stakers[0]
	payee := RandomAddress(t)
	id, err := f.k.ProposalFilmCreate(f.ctx, studio, types.FundTypeFunding, false)
	require.NoError(t, err)

	unbalanced := validTerms(usd(1_000), payee)
	unbalanced.SharePercents = []types.Percent{types.NewPercent(99)}
	noRaise := validTerms(sdk.ZeroInt(), payee)
	noPeriod := validTerms(usd(1_000), payee)
	noPeriod.FundPeriod = 0
	noTitle := validTerms(usd(1_000), payee)
	noTitle.Title = ""
	endless := validTerms(usd(1_000), payee)
	endless.FundPeriod = 1 << 34

	specs := map[string]struct {
		studio sdk.AccAddress
		filmID uint64
		terms  types.FilmTerms
		expErr error
	}{
		"valid": {
			studio: studio,
			filmID: id,
			terms:  validTerms(usd(1_000), payee),
		},
		"not the studio": {
			studio: f.stakers[1],
			filmID: id,
			terms:  validTerms(usd(1_000), payee),
			expErr: types.ErrNotStudio,
		},
		"unknown film": {
			studio: studio,
			filmID: 99,
			terms:  validTerms(usd(1_000), payee),
			expErr: types.ErrFilmNotFound,
		},
		"shares below 100%": {
			studio: studio,
			filmID: id,
			terms:  unbalanced,
			expErr: types.ErrInvalidFilmTerms,
		},
		"funding without raise amount": {
			studio: studio,
			filmID: id,
			terms:  noRaise,
			expErr: types.ErrInvalidFilmTerms,
		},
		"funding without fund period": {
			studio: studio,
			filmID: id,
			terms:  noPeriod,
			expErr: types.ErrInvalidFilmTerms,
		},
		"empty title": {
			studio: studio,
			filmID: id,
			terms:  noTitle,
			expErr: types.ErrInvalidText,
		},
		"fund period beyond max": {
			studio: studio,
			filmID: id,
			terms:  endless,
			expErr: types.ErrInvalidFilmTerms,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, _ := f.ctx.CacheContext()
			gotErr := f.k.ProposalFilmUpdate(ctx, spec.studio, spec.filmID, spec.terms)
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				status, err := f.k.GetFilmStatus(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, types.FilmStatusListed, status)
				return
			}
			require.NoError(t, gotErr)
			film, err := f.k.GetFilm(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, types.FilmStatusUpdated, film.Status)
			assertIntEqual(t, spec.terms.RaiseAmount, film.Terms.RaiseAmount)
			p, err := f.k.GetProposal(ctx, film.ProposalID)
			require.NoError(t, err)
			assert.Equal(t, types.ProposalKindFilm, p.Kind())
			assert.Equal(t, id, p.Flag())
			assert.Equal(t, spec.terms.Title, p.Title)

			// terms are final
			err = f.k.ProposalFilmUpdate(ctx, studio, id, spec.terms)
			require.ErrorIs(t, err, types.ErrInvalidFilmStatus)
		})
	}
}

func TestFastTrackFilm(t *testing.T) {
	specs := map[string]struct {
		fundType  types.FundType
		expStatus types.FilmStatus
	}{
		"listing": {
			fundType:  types.FundTypeListing,
			expStatus: types.FilmStatusApprovedListing,
		},
		"funding": {
			fundType:  types.FundTypeFunding,
			expStatus: types.FilmStatusApprovedFunding,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			f := setupDAO(t, 1)
			id := f.createFilm(t, spec.fundType, true, validTerms(usd(1_000), RandomAddress(t)))
			film, err := f.k.GetFilm(f.ctx, id)
			require.NoError(t, err)
			assert.Equal(t, spec.expStatus, film.Status)
			assert.False(t, film.RequiresVote)
			assert.Equal(t, uint64(0), film.ProposalID)
			if spec.fundType == types.FundTypeFunding {
				assert.True(t, f.ctx.BlockTime().Equal(film.FundPeriodStart))
			}

			// nothing to vote on or approve
			err = f.k.VoteToFilms(f.ctx, f.stakers[0], []uint64{id}, []types.VoteChoice{types.VoteYes})
			require.ErrorIs(t, err, types.ErrInvalidFilmStatus)
			_, err = f.k.ApproveFilms(f.ctx, []uint64{id})
			require.ErrorIs(t, err, types.ErrInvalidFilmStatus)
		})
	}
}

func TestVoteAndApproveFilms(t *testing.T) {
	f := setupDAO(t, 5)
	approvedID := f.createFilm(t, types.FundTypeFunding, false, validTerms(usd(1_000), RandomAddress(t)))
	rejectedID := f.createFilm(t, types.FundTypeListing, false, validTerms(sdk.ZeroInt(), RandomAddress(t)))
	ids := []uint64{approvedID, rejectedID}

	f.voteAll(t, func(voter sdk.AccAddress) error {
		return f.k.VoteToFilms(f.ctx, voter, ids, []types.VoteChoice{types.VoteYes, types.VoteNo})
	})

	_, err := f.k.ApproveFilms(f.ctx, ids)
	require.ErrorIs(t, err, types.ErrFilmVotePeriod)

	f.wait(seconds(types.DefaultFilmVotePeriod))
	err = f.k.VoteToFilms(f.ctx, f.newStaker(t, fixtureStake), ids[:1], []types.VoteChoice{types.VoteNo})
	require.ErrorIs(t, err, types.ErrVotePeriodElapsed)

	result, err := f.k.ApproveFilms(f.ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, result)

	film, err := f.k.GetFilm(f.ctx, approvedID)
	require.NoError(t, err)
	assert.Equal(t, types.FilmStatusApprovedFunding, film.Status)
	assert.True(t, f.ctx.BlockTime().Equal(film.FundPeriodStart))

	// a rejected film stays updated with a closed vote
	film, err = f.k.GetFilm(f.ctx, rejectedID)
	require.NoError(t, err)
	assert.Equal(t, types.FilmStatusUpdated, film.Status)
	p, err := f.k.GetProposal(f.ctx, film.ProposalID)
	require.NoError(t, err)
	assert.Equal(t, types.ProposalStatusRejected, p.Status)

	_, err = f.k.ApproveFilms(f.ctx, []uint64{rejectedID})
	require.ErrorIs(t, err, types.ErrProposalFinalized)
}

func TestVoteToFilmsAllOrNothing(t *testing.T) {
	f := setupDAO(t, 1)
	id := f.createFilm(t, types.FundTypeFunding, false, validTerms(usd(1_000), RandomAddress(t)))
	voter := f.stakers[0]
	specs := map[string]struct {
		ids     []uint64
		choices []types.VoteChoice
		expErr  error
	}{
		"unknown film in batch": {
			ids:     []uint64{id, 99},
			choices: []types.VoteChoice{types.VoteYes, types.VoteYes},
			expErr:  types.ErrFilmNotFound,
		},
		"same film twice": {
			ids:     []uint64{id, id},
			choices: []types.VoteChoice{types.VoteYes, types.VoteNo},
			expErr:  types.ErrAlreadyVoted,
		},
		"invalid choice in batch": {
			ids:     []uint64{id},
			choices: []types.VoteChoice{types.VoteUndefined},
			expErr:  types.ErrInvalidChoice,
		},
		"length mismatch": {
			ids:     []uint64{id},
			choices: []types.VoteChoice{types.VoteYes, types.VoteYes},
			expErr:  types.ErrLengthMismatch,
		},
		"empty": {
			expErr: types.ErrEmptyBatch,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			gotErr := f.k.VoteToFilms(f.ctx, voter, spec.ids, spec.choices)
			require.ErrorIs(t, gotErr, spec.expErr)
			film, err := f.k.GetFilm(f.ctx, id)
			require.NoError(t, err)
			_, voted := f.k.GetVote(f.ctx, film.ProposalID, voter)
			assert.False(t, voted)
		})
	}
}

func TestApproveFilmsAllOrNothing(t *testing.T) {
	f := setupDAO(t, 5)
	voted := f.createFilm(t, types.FundTypeFunding, false, validTerms(usd(1_000), RandomAddress(t)))
	fresh := f.createFilm(t, types.FundTypeFunding, false, validTerms(usd(1_000), RandomAddress(t)))
	f.voteAll(t, func(voter sdk.AccAddress) error {
		return f.k.VoteToFilms(f.ctx, voter, []uint64{voted}, []types.VoteChoice{types.VoteYes})
	})
	f.wait(seconds(types.DefaultFilmVotePeriod))
	// a later film is still within its vote period
	late := f.createFilm(t, types.FundTypeFunding, false, validTerms(usd(1_000), RandomAddress(t)))

	_, err := f.k.ApproveFilms(f.ctx, []uint64{voted, late})
	require.ErrorIs(t, err, types.ErrFilmVotePeriod)
	status, err := f.k.GetFilmStatus(f.ctx, voted)
	require.NoError(t, err)
	assert.Equal(t, types.FilmStatusUpdated, status)

	_, err = f.k.ApproveFilms(f.ctx, nil)
	require.ErrorIs(t, err, types.ErrEmptyBatch)

	// without votes the quorum is missed
	result, err := f.k.ApproveFilms(f.ctx, []uint64{voted, fresh})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, result)
}

func TestFilmStatusUnknown(t *testing.T) {
	f := setupDAO(t, 0)
	_, err := f.k.GetFilmStatus(f.ctx, 1)
	require.ErrorIs(t, err, types.ErrFilmNotFound)
	assert.Equal(t, types.KindState, types.KindOf(err))
}

func TestFilmVotePeriodFromProperty(t *testing.T) {
	f := setupDAOWithConfig(t, 1, types.Config{TestingOverrides: true})
	require.NoError(t, f.k.UpdatePropertyForTesting(f.ctx, f.auditor, 60, types.FlagFilmVotePeriod))
	id := f.createFilm(t, types.FundTypeListing, false, validTerms(sdk.ZeroInt(), RandomAddress(t)))
	film, err := f.k.GetFilm(f.ctx, id)
	require.NoError(t, err)
	p, err := f.k.GetProposal(f.ctx, film.ProposalID)
	require.NoError(t, err)
	assert.True(t, f.ctx.BlockTime().Add(time.Minute).Equal(p.VoteDeadline))
}
