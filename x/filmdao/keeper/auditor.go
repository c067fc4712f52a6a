package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// ProposalAuditor proposes a replacement of the auditor
func (k Keeper) ProposalAuditor(ctx sdk.Context, creator, candidate sdk.AccAddress, title, description string) (types.Proposal, error) {
	var p types.Proposal
	err := k.atomic(ctx, "proposal_auditor", func(ctx sdk.Context) error {
		if k.GetAuditor(ctx).Equals(candidate) {
			return types.ErrSameAuditor
		}
		var err error
		p, err = k.submitProposal(ctx, creator, types.ProposalContent{
			Auditor: &types.AuditorChange{Candidate: candidate},
		}, title, description)
		return err
	})
	if err != nil {
		return types.Proposal{}, err
	}
	return p, nil
}

// GetAuditorProposal returns the auditor proposal at the index
func (k Keeper) GetAuditorProposal(ctx sdk.Context, index uint64) (types.Proposal, error) {
	return k.GetProposalByIndex(ctx, types.ProposalKindAuditor, 0, index)
}

// VoteToAgent casts a vote on an auditor proposal
func (k Keeper) VoteToAgent(ctx sdk.Context, voter sdk.AccAddress, index uint64, choice types.VoteChoice) error {
	return k.atomic(ctx, "vote_auditor", func(ctx sdk.Context) error {
		p, err := k.GetAuditorProposal(ctx, index)
		if err != nil {
			return err
		}
		return k.castVote(ctx, voter, p, choice)
	})
}

// FinalizeAuditorVote tallies an auditor proposal after the vote period. An approved
// proposal waits for the dispute grace period before it can be committed.
func (k Keeper) FinalizeAuditorVote(ctx sdk.Context, index uint64) (bool, error) {
	var approved bool
	err := k.atomic(ctx, "finalize_auditor_vote", func(ctx sdk.Context) error {
		p, err := k.GetAuditorProposal(ctx, index)
		if err != nil {
			return err
		}
		approved, err = k.tallyAuditor(ctx, &p)
		return err
	})
	if err != nil {
		return false, err
	}
	return approved, nil
}

func (k Keeper) tallyAuditor(ctx sdk.Context, p *types.Proposal) (bool, error) {
	approved, err := k.tally(ctx, *p, types.ErrAuditorVotePeriod)
	if err != nil {
		return false, err
	}
	p.Status = types.ProposalStatusRejected
	if approved {
		p.Status = types.ProposalStatusPendingDispute
	}
	k.setProposal(ctx, *p)
	k.emitTallied(ctx, *p, approved)
	return approved, nil
}

// ReplaceAuditor commits an approved auditor proposal once both the vote period and the
// dispute grace period after it passed. A proposal still open is tallied first. It
// returns false without error when the vote rejected the candidate.
func (k Keeper) ReplaceAuditor(ctx sdk.Context, index uint64) (bool, error) {
	var replaced bool
	err := k.atomic(ctx, "replace_auditor", func(ctx sdk.Context) error {
		p, err := k.GetAuditorProposal(ctx, index)
		if err != nil {
			return err
		}
		if p.Status == types.ProposalStatusOpen {
			approved, err := k.tallyAuditor(ctx, &p)
			if err != nil || !approved {
				return err
			}
		}
		if p.Status != types.ProposalStatusPendingDispute {
			return types.ErrProposalFinalized
		}
		disputeEnd := p.VoteDeadline.Add(k.periodOf(ctx, types.FlagDisputeGracePeriod))
		if ctx.BlockTime().Before(disputeEnd) {
			return types.ErrAuditorDisputePeriod.Wrapf("until %s", disputeEnd)
		}
		previous := k.GetAuditor(ctx)
		candidate := p.Content.Auditor.Candidate
		k.setAuditor(ctx, candidate)
		p.Status = types.ProposalStatusApproved
		k.setProposal(ctx, p)
		replaced = true

		ModuleLogger(ctx).Info("auditor replaced", "previous", previous.String(), "auditor", candidate.String())
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeAuditorReplaced,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyAuditor, candidate.String()),
		))
		return nil
	})
	if err != nil {
		return false, err
	}
	return replaced, nil
}
