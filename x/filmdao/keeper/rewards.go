package keeper

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// accrue moves the reward of all complete periods since the last claim into the
// pending reward. The remainder of an incomplete period is kept.
func accrue(s *types.Staker, now time.Time, rate types.Percent, period time.Duration) {
	elapsed := now.Sub(s.LastRewardClaimTime)
	if elapsed <= 0 || period <= 0 {
		return
	}
	periods := int64(elapsed / period)
	if periods == 0 {
		return
	}
	s.PendingReward = s.PendingReward.Add(rate.MulInt(s.StakedAmount.MulRaw(periods)))
	s.LastRewardClaimTime = s.LastRewardClaimTime.Add(time.Duration(periods) * period)
}

func (k Keeper) settleReward(ctx sdk.Context, s *types.Staker) {
	accrue(s, ctx.BlockTime(), types.Percent(k.property(ctx, types.FlagRewardRate)), k.periodOf(ctx, types.FlagRewardPeriod))
}

// CalcReward returns the reward the staker could claim now, capped by the pool.
func (k Keeper) CalcReward(ctx sdk.Context, staker sdk.AccAddress) sdk.Int {
	s, found := k.GetStaker(ctx, staker)
	if !found {
		return sdk.ZeroInt()
	}
	k.settleReward(ctx, &s)
	return sdk.MinInt(s.PendingReward, k.GetRewardPool(ctx).TotalReward)
}

// ClaimReward pays the accrued staking reward from the pool. Reward above the pool
// balance stays pending.
func (k Keeper) ClaimReward(ctx sdk.Context, staker sdk.AccAddress) (sdk.Int, error) {
	paid := sdk.ZeroInt()
	err := k.atomic(ctx, "claim_reward", func(ctx sdk.Context) error {
		s, found := k.GetStaker(ctx, staker)
		if !found {
			return types.ErrNotStaker
		}
		k.settleReward(ctx, &s)
		if !s.PendingReward.IsPositive() {
			return types.ErrNoReward
		}
		pool := k.GetRewardPool(ctx)
		if !pool.TotalReward.IsPositive() {
			return types.ErrPoolEmpty
		}
		paid = sdk.MinInt(s.PendingReward, pool.TotalReward)
		s.PendingReward = s.PendingReward.Sub(paid)
		k.setStaker(ctx, s)
		pool.TotalReward = pool.TotalReward.Sub(paid)
		k.setRewardPool(ctx, pool)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeRewardClaimed,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, paid.String()),
		))
		return k.payout(ctx, staker, sdk.NewCoins(sdk.NewCoin(k.StakingDenom(ctx), paid)))
	})
	if err != nil {
		return sdk.ZeroInt(), err
	}
	return paid, nil
}

// AddRewardToPool transfers staking tokens from the funder into the reward pool
func (k Keeper) AddRewardToPool(ctx sdk.Context, funder sdk.AccAddress, amount sdk.Int) error {
	return k.atomic(ctx, "add_reward", func(ctx sdk.Context) error {
		return k.addReward(ctx, funder, amount)
	})
}

func (k Keeper) addReward(ctx sdk.Context, funder sdk.AccAddress, amount sdk.Int) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	pool := k.GetRewardPool(ctx)
	pool.TotalReward = pool.TotalReward.Add(amount)
	k.setRewardPool(ctx, pool)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRewardAdded,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(sdk.AttributeKeySender, funder.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return k.collect(ctx, funder, sdk.NewCoin(k.StakingDenom(ctx), amount))
}

// WithdrawAllFunds empties the reward pool to the given address. Once governance has
// chosen a reward fund address only that address is accepted.
func (k Keeper) WithdrawAllFunds(ctx sdk.Context, caller, to sdk.AccAddress) (sdk.Int, error) {
	withdrawn := sdk.ZeroInt()
	err := k.atomic(ctx, "withdraw_all_funds", func(ctx sdk.Context) error {
		if err := k.requireAuditor(ctx, caller); err != nil {
			return err
		}
		if err := sdk.VerifyAddressFormat(to); err != nil {
			return types.ErrInvalidAddress.Wrap("to")
		}
		pool := k.GetRewardPool(ctx)
		if !pool.RewardFundAddress.Empty() && !pool.RewardFundAddress.Equals(to) {
			return types.ErrWrongRewardFundAddr.Wrapf("expected %s", pool.RewardFundAddress)
		}
		if !pool.TotalReward.IsPositive() {
			return types.ErrPoolEmpty
		}
		withdrawn = pool.TotalReward
		pool.TotalReward = sdk.ZeroInt()
		k.setRewardPool(ctx, pool)

		ModuleLogger(ctx).Info("reward pool withdrawn", "to", to.String(), "amount", withdrawn.String())
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeRewardWithdraw,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, withdrawn.String()),
		))
		return k.payout(ctx, to, sdk.NewCoins(sdk.NewCoin(k.StakingDenom(ctx), withdrawn)))
	})
	if err != nil {
		return sdk.ZeroInt(), err
	}
	return withdrawn, nil
}
