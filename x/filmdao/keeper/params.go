package keeper

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// GetParams returns all parameters as types.Params
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	var p types.Params
	k.paramStore.GetParamSet(ctx, &p)
	return p
}

// SetParams set the params
func (k Keeper) setParams(ctx sdk.Context, params types.Params) {
	k.paramStore.SetParamSet(ctx, &params)
}

// GetPropertyValue returns the current value of a governable property
func (k Keeper) GetPropertyValue(ctx sdk.Context, flag types.PropertyFlag) (uint64, error) {
	key, err := flag.ParamKey()
	if err != nil {
		return 0, err
	}
	var v uint64
	k.paramStore.Get(ctx, key, &v)
	return v, nil
}

func (k Keeper) setPropertyValue(ctx sdk.Context, flag types.PropertyFlag, value uint64) error {
	key, err := flag.ParamKey()
	if err != nil {
		return err
	}
	if err := flag.ValidateValue(value); err != nil {
		return err
	}
	k.paramStore.Set(ctx, key, value)
	return nil
}

func (k Keeper) property(ctx sdk.Context, flag types.PropertyFlag) uint64 {
	v, err := k.GetPropertyValue(ctx, flag)
	if err != nil {
		panic(err)
	}
	return v
}

func (k Keeper) periodOf(ctx sdk.Context, flag types.PropertyFlag) time.Duration {
	return time.Duration(k.property(ctx, flag)) * time.Second
}

// StakingDenom is the token staked for vote weight
func (k Keeper) StakingDenom(ctx sdk.Context) (res string) {
	k.paramStore.Get(ctx, types.KeyStakingDenom, &res)
	return
}

// QuorumRule returns the current approval rule of all governance tracks
func (k Keeper) QuorumRule(ctx sdk.Context) types.QuorumRule {
	return types.QuorumRule{
		QuorumPercent: types.Percent(k.property(ctx, types.FlagQuorumPercent)),
		MinVoteCount:  k.property(ctx, types.FlagMinVoteCount),
	}
}

// votePeriod returns the vote period of a governance track
func (k Keeper) votePeriod(ctx sdk.Context, kind types.ProposalKind) time.Duration {
	switch kind {
	case types.ProposalKindProperty:
		return k.periodOf(ctx, types.FlagPropertyVotePeriod)
	case types.ProposalKindAuditor:
		return k.periodOf(ctx, types.FlagAgentVotePeriod)
	case types.ProposalKindRewardFund:
		return k.periodOf(ctx, types.FlagRewardVotePeriod)
	case types.ProposalKindFilm:
		return k.periodOf(ctx, types.FlagFilmVotePeriod)
	default:
		panic("unknown proposal kind")
	}
}
