package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// RegisterInvariants registers the film dao ledger invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "staking-totals", StakingTotalsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "film-deposits", FilmDepositsInvariant(k))
}

// StakingTotalsInvariant checks the pool totals equal the sums over all stakers
func StakingTotalsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		staked, deposit := sdk.ZeroInt(), sdk.ZeroInt()
		k.IterateStakers(ctx, func(s types.Staker) bool {
			staked = staked.Add(s.StakedAmount)
			deposit = deposit.Add(s.VotingDeposit)
			return false
		})
		pool := k.GetRewardPool(ctx)
		broken := !pool.TotalStaked.Equal(staked) || !pool.TotalVotingDeposit.Equal(deposit)
		return sdk.FormatInvariant(types.ModuleName, "staking totals", fmt.Sprintf(
			"\tpool staked: %s, sum of stakers: %s\n\tpool voting deposit: %s, sum of stakers: %s\n",
			pool.TotalStaked, staked, pool.TotalVotingDeposit, deposit,
		)), broken
	}
}

// FilmDepositsInvariant checks the deposited total of each film equals its deposit ledger
func FilmDepositsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)
		k.IterateFilms(ctx, func(f types.Film) bool {
			sum := sdk.ZeroInt()
			for _, d := range k.GetDeposits(ctx, f.ID) {
				sum = sum.Add(d.NormalizedAmount)
			}
			if !sum.Equal(f.DepositedTotal) {
				broken = true
				msg += fmt.Sprintf("\tfilm %d deposited total %s, ledger %s\n", f.ID, f.DepositedTotal, sum)
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "film deposits", msg), broken
	}
}
