package types

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Staker is the staking ledger entry of an address. Entries are never deleted.
type Staker struct {
	Address             sdk.AccAddress `json:"address" yaml:"address"`
	StakedAmount        sdk.Int        `json:"staked_amount" yaml:"staked_amount"`
	VotingDeposit       sdk.Int        `json:"voting_deposit" yaml:"voting_deposit"`
	LastRewardClaimTime time.Time      `json:"last_reward_claim_time" yaml:"last_reward_claim_time"`
	// PendingReward was settled on a stake change but not paid out yet
	PendingReward sdk.Int   `json:"pending_reward" yaml:"pending_reward"`
	LastStakeTime time.Time `json:"last_stake_time" yaml:"last_stake_time"`
	// CommittedDeposit is the voting deposit backing votes that are open until VoteLockedUntil
	CommittedDeposit sdk.Int   `json:"committed_deposit" yaml:"committed_deposit"`
	VoteLockedUntil  time.Time `json:"vote_locked_until" yaml:"vote_locked_until"`
}

// NewStaker returns an empty ledger entry
func NewStaker(addr sdk.AccAddress, now time.Time) Staker {
	return Staker{
		Address:             addr,
		StakedAmount:        sdk.ZeroInt(),
		VotingDeposit:       sdk.ZeroInt(),
		PendingReward:       sdk.ZeroInt(),
		CommittedDeposit:    sdk.ZeroInt(),
		LastRewardClaimTime: now,
		LastStakeTime:       now,
	}
}

// VoteWeight is the weight a vote cast now would carry
func (s Staker) VoteWeight() sdk.Int {
	return s.StakedAmount.Add(s.VotingDeposit)
}

func (s Staker) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(s.Address); err != nil {
		return ErrInvalidAddress.Wrap(err.Error())
	}
	for _, v := range []sdk.Int{s.StakedAmount, s.VotingDeposit, s.PendingReward, s.CommittedDeposit} {
		if v.IsNil() || v.IsNegative() {
			return ErrInvalidGenesis.Wrap("staker amounts must not be negative")
		}
	}
	return nil
}

// RewardPool holds the global staking totals and the reward funds.
type RewardPool struct {
	Initialized        bool           `json:"initialized" yaml:"initialized"`
	TotalReward        sdk.Int        `json:"total_reward" yaml:"total_reward"`
	TotalStaked        sdk.Int        `json:"total_staked" yaml:"total_staked"`
	TotalVotingDeposit sdk.Int        `json:"total_voting_deposit" yaml:"total_voting_deposit"`
	RewardFundAddress  sdk.AccAddress `json:"reward_fund_address,omitempty" yaml:"reward_fund_address"`
}

// NewRewardPool returns an uninitialized, empty pool
func NewRewardPool() RewardPool {
	return RewardPool{
		TotalReward:        sdk.ZeroInt(),
		TotalStaked:        sdk.ZeroInt(),
		TotalVotingDeposit: sdk.ZeroInt(),
	}
}

// TotalVoteWeight is the supply quorum is measured against
func (p RewardPool) TotalVoteWeight() sdk.Int {
	return p.TotalStaked.Add(p.TotalVotingDeposit)
}
