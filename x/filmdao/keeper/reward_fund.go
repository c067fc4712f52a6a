package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// ProposalRewardFund proposes the address the reward pool is withdrawn to
func (k Keeper) ProposalRewardFund(ctx sdk.Context, creator, rewardAddr sdk.AccAddress, title, description string) (types.Proposal, error) {
	var p types.Proposal
	err := k.atomic(ctx, "proposal_reward_fund", func(ctx sdk.Context) error {
		var err error
		p, err = k.submitProposal(ctx, creator, types.ProposalContent{
			RewardFund: &types.RewardFundChange{Address: rewardAddr},
		}, title, description)
		return err
	})
	if err != nil {
		return types.Proposal{}, err
	}
	return p, nil
}

// GetRewardFundProposal returns the reward fund proposal at the index
func (k Keeper) GetRewardFundProposal(ctx sdk.Context, index uint64) (types.Proposal, error) {
	return k.GetProposalByIndex(ctx, types.ProposalKindRewardFund, 0, index)
}

// VoteToRewardFund casts a vote on a reward fund proposal
func (k Keeper) VoteToRewardFund(ctx sdk.Context, voter sdk.AccAddress, index uint64, choice types.VoteChoice) error {
	return k.atomic(ctx, "vote_reward_fund", func(ctx sdk.Context) error {
		p, err := k.GetRewardFundProposal(ctx, index)
		if err != nil {
			return err
		}
		return k.castVote(ctx, voter, p, choice)
	})
}

// SetRewardFundAddress tallies a reward fund proposal after its vote period and adopts
// the address when approved.
func (k Keeper) SetRewardFundAddress(ctx sdk.Context, index uint64) (bool, error) {
	var approved bool
	err := k.atomic(ctx, "set_reward_fund_address", func(ctx sdk.Context) error {
		p, err := k.GetRewardFundProposal(ctx, index)
		if err != nil {
			return err
		}
		if approved, err = k.tally(ctx, p, types.ErrRewardVotePeriod); err != nil {
			return err
		}
		p.Status = types.ProposalStatusRejected
		if approved {
			p.Status = types.ProposalStatusApproved
			pool := k.GetRewardPool(ctx)
			pool.RewardFundAddress = p.Content.RewardFund.Address
			k.setRewardPool(ctx, pool)
			ModuleLogger(ctx).Info("reward fund address updated", "address", pool.RewardFundAddress.String())
			ctx.EventManager().EmitEvent(sdk.NewEvent(
				types.EventTypeRewardAddressUpdated,
				sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
				sdk.NewAttribute(types.AttributeKeyAddress, pool.RewardFundAddress.String()),
			))
		}
		k.setProposal(ctx, p)
		k.emitTallied(ctx, p, approved)
		return nil
	})
	if err != nil {
		return false, err
	}
	return approved, nil
}
