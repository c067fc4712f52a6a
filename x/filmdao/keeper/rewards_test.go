package keeper

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

const day = 24 * time.Hour

func TestAccrue(t *testing.T) {
	start := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	rate := types.Percent(types.DefaultRewardRate)
	specs := map[string]struct {
		staked     int64
		elapsed    time.Duration
		expReward  int64
		expClaimAt time.Time
	}{
		"one period": {
			staked:     80_000,
			elapsed:    day,
			expReward:  20,
			expClaimAt: start.Add(day),
		},
		"incomplete period is kept": {
			staked:     80_000,
			elapsed:    day + 23*time.Hour,
			expReward:  20,
			expClaimAt: start.Add(day),
		},
		"less than a period": {
			staked:     80_000,
			elapsed:    time.Hour,
			expClaimAt: start,
		},
		"many periods": {
			staked:     80_000,
			elapsed:    100 * day,
			expReward:  2_000,
			expClaimAt: start.Add(100 * day),
		},
		"rounded down": {
			staked:     1_000,
			elapsed:    3 * day,
			expClaimAt: start.Add(3 * day),
		},
		"nothing staked": {
			staked:     0,
			elapsed:    10 * day,
			expClaimAt: start.Add(10 * day),
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			s := types.NewStaker(RandomAddress(t), start)
			s.StakedAmount = sdk.NewInt(spec.staked)
			accrue(&s, start.Add(spec.elapsed), rate, day)
			assertIntEqual(t, sdk.NewInt(spec.expReward), s.PendingReward)
			assert.True(t, spec.expClaimAt.Equal(s.LastRewardClaimTime))
		})
	}
}

func TestClaimReward(t *testing.T) {
	f := setupDAO(t, 0)
	staker := f.newStaker(t, 80_000)

	f.wait(10 * day)
	assertIntEqual(t, sdk.NewInt(200), f.k.CalcReward(f.ctx, staker))
	paid, err := f.k.ClaimReward(f.ctx, staker)
	require.NoError(t, err)
	assertIntEqual(t, sdk.NewInt(200), paid)
	assertIntEqual(t, sdk.NewInt(fixtureBalance-80_000+200), f.balance(staker, sdk.DefaultBondDenom))
	assertIntEqual(t, sdk.NewInt(fixtureReward-200), f.k.GetRewardPool(f.ctx).TotalReward)

	// claimed periods are not paid twice
	f.wait(12 * time.Hour)
	assertIntEqual(t, sdk.ZeroInt(), f.k.CalcReward(f.ctx, staker))
	_, err = f.k.ClaimReward(f.ctx, staker)
	require.ErrorIs(t, err, types.ErrNoReward)

	_, err = f.k.ClaimReward(f.ctx, RandomAddress(t))
	require.ErrorIs(t, err, types.ErrNotStaker)
	f.requireInvariants(t)
}

func TestClaimRewardCappedByPool(t *testing.T) {
	f := setupDAO(t, 0)
	staker := f.newStaker(t, 80_000)

	// 60_000 accrued against a pool of 50_000
	f.wait(3_000 * day)
	assertIntEqual(t, sdk.NewInt(fixtureReward), f.k.CalcReward(f.ctx, staker))
	paid, err := f.k.ClaimReward(f.ctx, staker)
	require.NoError(t, err)
	assertIntEqual(t, sdk.NewInt(fixtureReward), paid)
	s, _ := f.k.GetStaker(f.ctx, staker)
	assertIntEqual(t, sdk.NewInt(10_000), s.PendingReward)

	_, err = f.k.ClaimReward(f.ctx, staker)
	require.ErrorIs(t, err, types.ErrPoolEmpty)

	// the rest is paid once the pool is refilled
	require.NoError(t, f.k.AddRewardToPool(f.ctx, f.auditor, sdk.NewInt(20_000)))
	paid, err = f.k.ClaimReward(f.ctx, staker)
	require.NoError(t, err)
	assertIntEqual(t, sdk.NewInt(10_000), paid)
	assertIntEqual(t, sdk.NewInt(10_000), f.k.GetRewardPool(f.ctx).TotalReward)
	f.requireInvariants(t)
}

func TestAddRewardToPool(t *testing.T) {
	f := setupDAO(t, 0)
	funder := f.keepers.Faucet.NewFundedAccount(f.ctx, stakeCoin(500))

	err := f.k.AddRewardToPool(f.ctx, funder, sdk.NewInt(501))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
	err = f.k.AddRewardToPool(f.ctx, funder, sdk.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)

	require.NoError(t, f.k.AddRewardToPool(f.ctx, funder, sdk.NewInt(500)))
	assertIntEqual(t, sdk.NewInt(fixtureReward+500), f.k.GetRewardPool(f.ctx).TotalReward)
	f.requireInvariants(t)
}

func TestWithdrawAllFunds(t *testing.T) {
	fundAddr := RandomAddress(t)
	specs := map[string]struct {
		rewardFund sdk.AccAddress
		to         sdk.AccAddress
		expErr     error
	}{
		"no reward fund address": {
			to: RandomAddress(t),
		},
		"to reward fund address": {
			rewardFund: fundAddr,
			to:         fundAddr,
		},
		"other than reward fund address": {
			rewardFund: fundAddr,
			to:         RandomAddress(t),
			expErr:     types.ErrWrongRewardFundAddr,
		},
		"empty target": {
			to:     sdk.AccAddress{},
			expErr: types.ErrInvalidAddress,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			f := setupDAO(t, 0)
			pool := f.k.GetRewardPool(f.ctx)
			pool.RewardFundAddress = spec.rewardFund
			f.k.setRewardPool(f.ctx, pool)

			withdrawn, gotErr := f.k.WithdrawAllFunds(f.ctx, f.auditor, spec.to)
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				assertIntEqual(t, sdk.NewInt(fixtureReward), f.k.GetRewardPool(f.ctx).TotalReward)
				return
			}
			require.NoError(t, gotErr)
			assertIntEqual(t, sdk.NewInt(fixtureReward), withdrawn)
			assertIntEqual(t, sdk.NewInt(fixtureReward), f.balance(spec.to, sdk.DefaultBondDenom))
			assertIntEqual(t, sdk.ZeroInt(), f.k.GetRewardPool(f.ctx).TotalReward)

			_, gotErr = f.k.WithdrawAllFunds(f.ctx, f.auditor, spec.to)
			require.ErrorIs(t, gotErr, types.ErrPoolEmpty)
			f.requireInvariants(t)
		})
	}
}
