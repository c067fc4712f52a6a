package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// ProposalProperty proposes a new value for a governable property
func (k Keeper) ProposalProperty(
	ctx sdk.Context,
	creator sdk.AccAddress,
	flag types.PropertyFlag,
	value uint64,
	title, description string,
) (types.Proposal, error) {
	var p types.Proposal
	err := k.atomic(ctx, "proposal_property", func(ctx sdk.Context) error {
		var err error
		p, err = k.submitProposal(ctx, creator, types.ProposalContent{
			Property: &types.PropertyChange{Flag: flag, Value: value},
		}, title, description)
		return err
	})
	if err != nil {
		return types.Proposal{}, err
	}
	return p, nil
}

// GetPropertyProposal returns the property proposal at the index of the flag
func (k Keeper) GetPropertyProposal(ctx sdk.Context, index uint64, flag types.PropertyFlag) (types.Proposal, error) {
	return k.GetProposalByIndex(ctx, types.ProposalKindProperty, uint64(flag), index)
}

// VoteToProperty casts a vote on a property proposal
func (k Keeper) VoteToProperty(ctx sdk.Context, voter sdk.AccAddress, index uint64, flag types.PropertyFlag, choice types.VoteChoice) error {
	return k.atomic(ctx, "vote_property", func(ctx sdk.Context) error {
		p, err := k.GetPropertyProposal(ctx, index, flag)
		if err != nil {
			return err
		}
		return k.castVote(ctx, voter, p, choice)
	})
}

// UpdateProperty tallies a property proposal after its vote period and commits the
// value when approved. Anybody can call it.
func (k Keeper) UpdateProperty(ctx sdk.Context, index uint64, flag types.PropertyFlag) (bool, error) {
	var approved bool
	err := k.atomic(ctx, "update_property", func(ctx sdk.Context) error {
		p, err := k.GetPropertyProposal(ctx, index, flag)
		if err != nil {
			return err
		}
		if approved, err = k.tally(ctx, p, types.ErrPropertyVotePeriod); err != nil {
			return err
		}
		p.Status = types.ProposalStatusRejected
		if approved {
			p.Status = types.ProposalStatusApproved
			if err := k.applyProperty(ctx, *p.Content.Property); err != nil {
				return err
			}
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

func (k Keeper) applyProperty(ctx sdk.Context, change types.PropertyChange) error {
	if err := k.setPropertyValue(ctx, change.Flag, change.Value); err != nil {
		return err
	}
	ModuleLogger(ctx).Info("property updated", "flag", change.Flag.String(), "value", change.Value)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeParameterUpdated,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyFlag, strconv.FormatUint(uint64(change.Flag), 10)),
		sdk.NewAttribute(types.AttributeKeyValue, strconv.FormatUint(change.Value, 10)),
	))
	return nil
}

// UpdatePropertyForTesting sets a property without a vote. It is only available to the
// auditor on nodes started with testing overrides.
func (k Keeper) UpdatePropertyForTesting(ctx sdk.Context, caller sdk.AccAddress, value uint64, flag types.PropertyFlag) error {
	return k.atomic(ctx, "update_property_for_testing", func(ctx sdk.Context) error {
		if !k.config.TestingOverrides {
			return types.ErrTestingOverrideOff
		}
		if err := k.requireAuditor(ctx, caller); err != nil {
			return err
		}
		return k.applyProperty(ctx, types.PropertyChange{Flag: flag, Value: value})
	})
}
