package keeper

import (
	"encoding/binary"
	"strconv"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// GetProposal returns the proposal by id
func (k Keeper) GetProposal(ctx sdk.Context, id uint64) (types.Proposal, error) {
	var p types.Proposal
	if !k.load(ctx, types.GetProposalKey(id), &p) {
		return p, types.ErrNoProposal.Wrapf("id %d", id)
	}
	return p, nil
}

// GetProposalByIndex returns the proposal at the index of a governance track
func (k Keeper) GetProposalByIndex(ctx sdk.Context, kind types.ProposalKind, flag, index uint64) (types.Proposal, error) {
	bz := ctx.KVStore(k.storeKey).Get(types.GetProposalIndexKey(kind, flag, index))
	if bz == nil {
		return types.Proposal{}, types.ErrNoProposal.Wrapf("%s flag %d index %d", kind, flag, index)
	}
	return k.GetProposal(ctx, binary.BigEndian.Uint64(bz))
}

// ProposalCount returns the number of proposals of a governance track
func (k Keeper) ProposalCount(ctx sdk.Context, kind types.ProposalKind, flag uint64) uint64 {
	return k.peekAutoIncrementID(ctx, types.GetProposalIndexSequenceName(kind, flag)) - 1
}

func (k Keeper) setProposal(ctx sdk.Context, p types.Proposal) {
	k.save(ctx, types.GetProposalKey(p.ID), &p)
}

func (k Keeper) indexProposal(ctx sdk.Context, p types.Proposal) {
	ctx.KVStore(k.storeKey).Set(types.GetProposalIndexKey(p.Kind(), p.Flag(), p.Index), sdk.Uint64ToBigEndian(p.ID))
}

// IterateProposals calls cb for all proposals ordered by id until cb returns true
func (k Keeper) IterateProposals(ctx sdk.Context, cb func(types.Proposal) bool) {
	iterate(ctx, k.storeKey, types.ProposalPrefix, func(_, value []byte) bool {
		var p types.Proposal
		k.cdc.MustUnmarshal(value, &p)
		return cb(p)
	})
}

// GetVote returns the vote of the voter on the proposal
func (k Keeper) GetVote(ctx sdk.Context, proposalID uint64, voter sdk.AccAddress) (types.VoteRecord, bool) {
	var v types.VoteRecord
	found := k.load(ctx, types.GetVoteKey(proposalID, voter), &v)
	return v, found
}

func (k Keeper) setVote(ctx sdk.Context, v types.VoteRecord) {
	k.save(ctx, types.GetVoteKey(v.ProposalID, v.Voter), &v)
}

// IterateVotes calls cb for all votes of a proposal until cb returns true
func (k Keeper) IterateVotes(ctx sdk.Context, proposalID uint64, cb func(types.VoteRecord) bool) {
	iterate(ctx, k.storeKey, types.GetVotePrefix(proposalID), func(_, value []byte) bool {
		var v types.VoteRecord
		k.cdc.MustUnmarshal(value, &v)
		return cb(v)
	})
}

// submitProposal appends a proposal to its governance track. The creator must hold the
// minimum stake.
func (k Keeper) submitProposal(ctx sdk.Context, creator sdk.AccAddress, content types.ProposalContent, title, description string) (types.Proposal, error) {
	if err := content.ValidateBasic(); err != nil {
		return types.Proposal{}, err
	}
	if err := types.ValidateProposalText(title, description); err != nil {
		return types.Proposal{}, err
	}
	if err := k.requireProposer(ctx, creator); err != nil {
		return types.Proposal{}, err
	}

	kind, flag := content.Kind(), content.Flag()
	now := ctx.BlockTime()
	p := types.Proposal{
		ID:           k.autoIncrementID(ctx, types.SequenceProposalID),
		Index:        k.autoIncrementID(ctx, types.GetProposalIndexSequenceName(kind, flag)) - 1,
		Content:      content,
		Title:        title,
		Description:  description,
		Creator:      creator,
		CreatedAt:    now,
		VoteDeadline: now.Add(k.votePeriod(ctx, kind)),
		Status:       types.ProposalStatusOpen,
		Tally:        types.NewTally(),
	}
	k.setProposal(ctx, p)
	k.indexProposal(ctx, p)

	telemetry.IncrCounter(1, types.ModuleName, "proposal", kind.String())
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProposalCreated,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(p.ID, 10)),
		sdk.NewAttribute(types.AttributeKeyKind, kind.String()),
		sdk.NewAttribute(types.AttributeKeyFlag, strconv.FormatUint(flag, 10)),
		sdk.NewAttribute(types.AttributeKeyIndex, strconv.FormatUint(p.Index, 10)),
		sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
		sdk.NewAttribute(types.AttributeKeyValue, content.Value()),
	))
	return p, nil
}

// requireProposer checks the address holds the minimum stake to create proposals
func (k Keeper) requireProposer(ctx sdk.Context, creator sdk.AccAddress) error {
	s, found := k.GetStaker(ctx, creator)
	if !found || !s.StakedAmount.IsPositive() {
		return types.ErrNotStaker
	}
	if min := k.property(ctx, types.FlagMinStakeToPropose); s.StakedAmount.LT(sdk.NewIntFromUint64(min)) {
		return types.ErrInsufficientStake.Wrapf("staked %s, required %d", s.StakedAmount, min)
	}
	return nil
}

// castVote records a vote with the current weight of the voter. The weight is final.
func (k Keeper) castVote(ctx sdk.Context, voter sdk.AccAddress, p types.Proposal, choice types.VoteChoice) error {
	if err := choice.ValidateBasic(); err != nil {
		return err
	}
	now := ctx.BlockTime()
	switch {
	case p.Status != types.ProposalStatusOpen:
		return types.ErrProposalFinalized
	case !p.VotingOpen(now):
		return types.ErrVotePeriodElapsed
	}
	if _, voted := k.GetVote(ctx, p.ID, voter); voted {
		return types.ErrAlreadyVoted
	}
	s, found := k.GetStaker(ctx, voter)
	if !found || !s.VoteWeight().IsPositive() {
		return types.ErrNotStaker
	}
	weight := s.VoteWeight()
	k.setVote(ctx, types.VoteRecord{
		ProposalID: p.ID,
		Voter:      voter,
		Choice:     choice,
		Weight:     weight,
		CastAt:     now,
	})
	p.Tally.Add(choice, weight)
	k.setProposal(ctx, p)
	commitVote(&s, now, p.VoteDeadline)
	k.setStaker(ctx, s)

	telemetry.IncrCounter(1, types.ModuleName, "vote", p.Kind().String())
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVoteCast,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(p.ID, 10)),
		sdk.NewAttribute(types.AttributeKeyVoter, voter.String()),
		sdk.NewAttribute(types.AttributeKeyChoice, choice.String()),
		sdk.NewAttribute(types.AttributeKeyWeight, weight.String()),
	))
	return nil
}

// tally closes the vote of an open proposal once the deadline passed. It returns
// periodErr before the deadline. The caller persists the returned status.
func (k Keeper) tally(ctx sdk.Context, p types.Proposal, periodErr error) (bool, error) {
	if p.Status != types.ProposalStatusOpen {
		return false, types.ErrProposalFinalized
	}
	if ctx.BlockTime().Before(p.VoteDeadline) {
		return false, sdkerrors.Wrapf(periodErr, "deadline %s", p.VoteDeadline)
	}
	approved := k.QuorumRule(ctx).Approves(p.Tally, k.GetRewardPool(ctx).TotalVoteWeight())
	ModuleLogger(ctx).Info("proposal tallied",
		"id", p.ID,
		"kind", p.Kind().String(),
		"yes", p.Tally.Yes.String(),
		"no", p.Tally.No.String(),
		"abstain", p.Tally.Abstain.String(),
		"voters", p.Tally.Voters,
		"approved", approved,
	)
	return approved, nil
}

func (k Keeper) emitTallied(ctx sdk.Context, p types.Proposal, approved bool) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProposalTallied,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(p.ID, 10)),
		sdk.NewAttribute(types.AttributeKeyKind, p.Kind().String()),
		sdk.NewAttribute(types.AttributeKeyApproved, strconv.FormatBool(approved)),
	))
}
