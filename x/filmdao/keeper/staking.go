package keeper

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// GetStaker returns the ledger entry of the address
func (k Keeper) GetStaker(ctx sdk.Context, addr sdk.AccAddress) (types.Staker, bool) {
	var s types.Staker
	found := k.load(ctx, types.GetStakerKey(addr), &s)
	return s, found
}

// getOrNewStaker returns the stored entry or a fresh one that is not persisted yet
func (k Keeper) getOrNewStaker(ctx sdk.Context, addr sdk.AccAddress) types.Staker {
	if s, found := k.GetStaker(ctx, addr); found {
		return s
	}
	return types.NewStaker(addr, ctx.BlockTime())
}

func (k Keeper) setStaker(ctx sdk.Context, s types.Staker) {
	k.save(ctx, types.GetStakerKey(s.Address), &s)
}

// IterateStakers calls cb for all stakers until cb returns true
func (k Keeper) IterateStakers(ctx sdk.Context, cb func(types.Staker) bool) {
	iterate(ctx, k.storeKey, types.StakerPrefix, func(_, value []byte) bool {
		var s types.Staker
		k.cdc.MustUnmarshal(value, &s)
		return cb(s)
	})
}

// GetRewardPool returns the staking totals and reward funds
func (k Keeper) GetRewardPool(ctx sdk.Context) types.RewardPool {
	var p types.RewardPool
	if !k.load(ctx, types.RewardPoolKey, &p) {
		return types.NewRewardPool()
	}
	return p
}

func (k Keeper) setRewardPool(ctx sdk.Context, p types.RewardPool) {
	k.save(ctx, types.RewardPoolKey, &p)
}

// VoteWeight returns the weight a vote cast now by the address would carry
func (k Keeper) VoteWeight(ctx sdk.Context, addr sdk.AccAddress) sdk.Int {
	s, found := k.GetStaker(ctx, addr)
	if !found {
		return sdk.ZeroInt()
	}
	return s.VoteWeight()
}

// StakeVAB locks staking tokens of the staker in the module.
func (k Keeper) StakeVAB(ctx sdk.Context, staker sdk.AccAddress, amount sdk.Int) error {
	return k.atomic(ctx, "stake", func(ctx sdk.Context) error {
		pool := k.GetRewardPool(ctx)
		if !pool.Initialized {
			return types.ErrPoolNotInitialized
		}
		if err := requirePositive(amount); err != nil {
			return err
		}
		s := k.getOrNewStaker(ctx, staker)
		if s.StakedAmount.IsPositive() {
			k.settleReward(ctx, &s)
		} else {
			s.LastRewardClaimTime = ctx.BlockTime()
		}
		s.StakedAmount = s.StakedAmount.Add(amount)
		s.LastStakeTime = ctx.BlockTime()
		k.setStaker(ctx, s)
		pool.TotalStaked = pool.TotalStaked.Add(amount)
		k.setRewardPool(ctx, pool)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeStaked,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		))
		return k.collect(ctx, staker, sdk.NewCoin(k.StakingDenom(ctx), amount))
	})
}

// UnstakeVAB releases staked tokens once the lock period since the last stake passed.
func (k Keeper) UnstakeVAB(ctx sdk.Context, staker sdk.AccAddress, amount sdk.Int) error {
	return k.atomic(ctx, "unstake", func(ctx sdk.Context) error {
		if err := requirePositive(amount); err != nil {
			return err
		}
		s, found := k.GetStaker(ctx, staker)
		if !found {
			return types.ErrNotStaker
		}
		if s.StakedAmount.LT(amount) {
			return types.ErrInsufficientStaked.Wrapf("staked %s", s.StakedAmount)
		}
		unlocked := s.LastStakeTime.Add(k.periodOf(ctx, types.FlagLockPeriod))
		if ctx.BlockTime().Before(unlocked) {
			return types.ErrUnstakeLocked.Wrapf("until %s", unlocked)
		}
		k.settleReward(ctx, &s)
		s.StakedAmount = s.StakedAmount.Sub(amount)
		k.setStaker(ctx, s)
		pool := k.GetRewardPool(ctx)
		pool.TotalStaked = pool.TotalStaked.Sub(amount)
		k.setRewardPool(ctx, pool)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeUnstaked,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		))
		return k.payout(ctx, staker, sdk.NewCoins(sdk.NewCoin(k.StakingDenom(ctx), amount)))
	})
}

// DepositVAB adds to the voting deposit of the staker.
func (k Keeper) DepositVAB(ctx sdk.Context, staker sdk.AccAddress, amount sdk.Int) error {
	return k.atomic(ctx, "deposit_for_voting", func(ctx sdk.Context) error {
		if err := requirePositive(amount); err != nil {
			return err
		}
		s := k.getOrNewStaker(ctx, staker)
		s.VotingDeposit = s.VotingDeposit.Add(amount)
		k.setStaker(ctx, s)
		pool := k.GetRewardPool(ctx)
		pool.TotalVotingDeposit = pool.TotalVotingDeposit.Add(amount)
		k.setRewardPool(ctx, pool)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeVotingDeposit,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		))
		return k.collect(ctx, staker, sdk.NewCoin(k.StakingDenom(ctx), amount))
	})
}

// WithdrawVotingDeposit returns voting deposit to the staker. Votes already cast keep
// their weight. With the lock policy enabled the deposit committed to votes that are
// still open can not be withdrawn.
func (k Keeper) WithdrawVotingDeposit(ctx sdk.Context, staker sdk.AccAddress, amount sdk.Int) error {
	return k.atomic(ctx, "withdraw_voting_deposit", func(ctx sdk.Context) error {
		if err := requirePositive(amount); err != nil {
			return err
		}
		s, found := k.GetStaker(ctx, staker)
		if !found {
			return types.ErrNotStaker
		}
		if s.VotingDeposit.LT(amount) {
			return types.ErrInsufficientDeposit.Wrapf("deposit %s", s.VotingDeposit)
		}
		remaining := s.VotingDeposit.Sub(amount)
		if k.config.LockVotingDeposit && ctx.BlockTime().Before(s.VoteLockedUntil) && remaining.LT(s.CommittedDeposit) {
			return types.ErrVotingDepositLocked.Wrapf("committed %s until %s", s.CommittedDeposit, s.VoteLockedUntil)
		}
		s.VotingDeposit = remaining
		k.setStaker(ctx, s)
		pool := k.GetRewardPool(ctx)
		pool.TotalVotingDeposit = pool.TotalVotingDeposit.Sub(amount)
		k.setRewardPool(ctx, pool)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeVotingWithdraw,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		))
		return k.payout(ctx, staker, sdk.NewCoins(sdk.NewCoin(k.StakingDenom(ctx), amount)))
	})
}

// commitVote records the voting deposit backing a vote open until the deadline
func commitVote(s *types.Staker, now, deadline time.Time) {
	if !now.Before(s.VoteLockedUntil) {
		s.CommittedDeposit = sdk.ZeroInt()
	}
	if s.VotingDeposit.GT(s.CommittedDeposit) {
		s.CommittedDeposit = s.VotingDeposit
	}
	if deadline.After(s.VoteLockedUntil) {
		s.VoteLockedUntil = deadline
	}
}

func requirePositive(amount sdk.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount
	}
	return nil
}
