package keeper

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

func seconds(s uint64) time.Duration {
	return time.Duration(s) * time.Second
}

func TestUpdateProperty(t *testing.T) {
	const newPeriod = 20 * 24 * 60 * 60
	specs := map[string]struct {
		voters      int
		choice      func(i int) types.VoteChoice
		bystander   int64
		expApproved bool
	}{
		"all yes": {
			voters:      5,
			choice:      func(int) types.VoteChoice { return types.VoteYes },
			expApproved: true,
		},
		"below min vote count": {
			voters: 4,
			choice: func(int) types.VoteChoice { return types.VoteYes },
		},
		"yes equals no": {
			voters: 5,
			choice: func(i int) types.VoteChoice {
				return []types.VoteChoice{types.VoteYes, types.VoteNo, types.VoteYes, types.VoteNo, types.VoteAbstain}[i]
			},
		},
		"majority no": {
			voters: 5,
			choice: func(i int) types.VoteChoice {
				if i < 2 {
					return types.VoteYes
				}
				return types.VoteNo
			},
		},
		"abstentions count for quorum": {
			voters: 5,
			choice: func(i int) types.VoteChoice {
				if i == 0 {
					return types.VoteYes
				}
				return types.VoteAbstain
			},
			expApproved: true,
		},
		"three yes one no two abstain": {
			voters: 6,
			choice: func(i int) types.VoteChoice {
				return []types.VoteChoice{types.VoteYes, types.VoteYes, types.VoteYes, types.VoteNo, types.VoteAbstain, types.VoteAbstain}[i]
			},
			expApproved: true,
		},
		"large stake not voting": {
			voters:    6,
			choice:    func(int) types.VoteChoice { return types.VoteYes },
			bystander: 60_000,
		},
		"participation at quorum": {
			voters:      6,
			choice:      func(int) types.VoteChoice { return types.VoteYes },
			bystander:   54_000,
			expApproved: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			f := setupDAO(t, 6)
			if spec.bystander != 0 {
				f.newStaker(t, spec.bystander)
			}
			p, err := f.k.ProposalProperty(f.ctx, f.stakers[0], types.FlagFilmVotePeriod, newPeriod, "longer film votes", "")
			require.NoError(t, err)
			assert.Equal(t, uint64(0), p.Index)
			assert.Equal(t, types.ProposalStatusOpen, p.Status)
			assert.True(t, f.ctx.BlockTime().Add(seconds(types.DefaultPropertyVotePeriod)).Equal(p.VoteDeadline))

			for i := 0; i < spec.voters; i++ {
				require.NoError(t, f.k.VoteToProperty(f.ctx, f.stakers[i], 0, types.FlagFilmVotePeriod, spec.choice(i)))
			}
			f.wait(seconds(types.DefaultPropertyVotePeriod))

			approved, err := f.k.UpdateProperty(f.ctx, 0, types.FlagFilmVotePeriod)
			require.NoError(t, err)
			assert.Equal(t, spec.expApproved, approved)

			got, err := f.k.GetPropertyValue(f.ctx, types.FlagFilmVotePeriod)
			require.NoError(t, err)
			p, err = f.k.GetPropertyProposal(f.ctx, 0, types.FlagFilmVotePeriod)
			require.NoError(t, err)
			if spec.expApproved {
				assert.Equal(t, uint64(newPeriod), got)
				assert.Equal(t, types.ProposalStatusApproved, p.Status)
			} else {
				assert.Equal(t, types.DefaultFilmVotePeriod, got)
				assert.Equal(t, types.ProposalStatusRejected, p.Status)
			}

			// a tally is final
			_, err = f.k.UpdateProperty(f.ctx, 0, types.FlagFilmVotePeriod)
			require.ErrorIs(t, err, types.ErrProposalFinalized)
		})
	}
}

func TestUpdatePropertyBeforeDeadline(t *testing.T) {
	f := setupDAO(t, 5)
	_, err := f.k.ProposalProperty(f.ctx, f.stakers[0], types.FlagMinVoteCount, 3, "fewer voters", "")
	require.NoError(t, err)
	f.voteAll(t, func(voter sdk.AccAddress) error {
		return f.k.VoteToProperty(f.ctx, voter, 0, types.FlagMinVoteCount, types.VoteYes)
	})

	f.wait(seconds(types.DefaultPropertyVotePeriod) - time.Second)
	_, err = f.k.UpdateProperty(f.ctx, 0, types.FlagMinVoteCount)
	require.ErrorIs(t, err, types.ErrPropertyVotePeriod)
	assert.Equal(t, types.KindPeriod, types.KindOf(err))

	f.wait(time.Second)
	approved, err := f.k.UpdateProperty(f.ctx, 0, types.FlagMinVoteCount)
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Equal(t, uint64(3), f.k.QuorumRule(f.ctx).MinVoteCount)
}

func TestProposalProperty(t *testing.T) {
	f := setupDAO(t, 1)
	lowStaker := f.newStaker(t, int64(types.DefaultMinStakeToPropose)-1)
	specs := map[string]struct {
		creator sdk.AccAddress
		flag    types.PropertyFlag
		value   uint64
		title   string
		expErr  error
	}{
		"valid": {
			creator: f.stakers[0],
			flag:    types.FlagRewardRate,
			value:   uint64(types.OnePercent),
			title:   "more rewards",
		},
		"zero lock period": {
			creator: f.stakers[0],
			flag:    types.FlagLockPeriod,
			value:   0,
			title:   "no lock",
		},
		"unknown flag": {
			creator: f.stakers[0],
			flag:    types.FlagMinVoteCount + 1,
			value:   1,
			title:   "unknown",
			expErr:  types.ErrUnknownFlag,
		},
		"percent above 100": {
			creator: f.stakers[0],
			flag:    types.FlagQuorumPercent,
			value:   uint64(types.OneHundredPercent) + 1,
			title:   "quorum",
			expErr:  types.ErrInvalidProperty,
		},
		"zero period": {
			creator: f.stakers[0],
			flag:    types.FlagFilmVotePeriod,
			value:   0,
			title:   "no vote",
			expErr:  types.ErrInvalidProperty,
		},
		"dispute grace period beyond max": {
			creator: f.stakers[0],
			flag:    types.FlagDisputeGracePeriod,
			value:   1 << 34,
			title:   "endless dispute",
			expErr:  types.ErrInvalidProperty,
		},
		"empty title": {
			creator: f.stakers[0],
			flag:    types.FlagMinVoteCount,
			value:   3,
			expErr:  types.ErrInvalidText,
		},
		"not staked": {
			creator: RandomAddress(t),
			flag:    types.FlagMinVoteCount,
			value:   3,
			title:   "fewer voters",
			expErr:  types.ErrNotStaker,
		},
		"below min stake": {
			creator: lowStaker,
			flag:    types.FlagMinVoteCount,
			value:   3,
			title:   "fewer voters",
			expErr:  types.ErrInsufficientStake,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, _ := f.ctx.CacheContext()
			p, gotErr := f.k.ProposalProperty(ctx, spec.creator, spec.flag, spec.value, spec.title, "")
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				assert.Equal(t, uint64(0), f.k.ProposalCount(ctx, types.ProposalKindProperty, uint64(spec.flag)))
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.value, p.Content.Property.Value)
			assert.Equal(t, uint64(1), f.k.ProposalCount(ctx, types.ProposalKindProperty, uint64(spec.flag)))
		})
	}
}

func TestProposalIndexPerFlag(t *testing.T) {
	f := setupDAO(t, 1)
	creator := f.stakers[0]
	p1, err := f.k.ProposalProperty(f.ctx, creator, types.FlagMinVoteCount, 3, "first", "")
	require.NoError(t, err)
	p2, err := f.k.ProposalProperty(f.ctx, creator, types.FlagMinVoteCount, 4, "second", "")
	require.NoError(t, err)
	p3, err := f.k.ProposalProperty(f.ctx, creator, types.FlagLockPeriod, 60, "other flag", "")
	require.NoError(t, err)

	assert.Equal(t, []uint64{0, 1, 0}, []uint64{p1.Index, p2.Index, p3.Index})
	assert.Equal(t, []uint64{1, 2, 3}, []uint64{p1.ID, p2.ID, p3.ID})
	got, err := f.k.GetPropertyProposal(f.ctx, 1, types.FlagMinVoteCount)
	require.NoError(t, err)
	assert.Equal(t, p2.ID, got.ID)

	_, err = f.k.GetPropertyProposal(f.ctx, 1, types.FlagLockPeriod)
	require.ErrorIs(t, err, types.ErrNoProposal)
}

func TestVoteToProperty(t *testing.T) {
	f := setupDAO(t, 2)
	_, err := f.k.ProposalProperty(f.ctx, f.stakers[0], types.FlagMinVoteCount, 3, "fewer voters", "")
	require.NoError(t, err)
	require.NoError(t, f.k.VoteToProperty(f.ctx, f.stakers[0], 0, types.FlagMinVoteCount, types.VoteYes))

	specs := map[string]struct {
		voter  sdk.AccAddress
		index  uint64
		choice types.VoteChoice
		wait   time.Duration
		expErr error
	}{
		"second voter": {
			voter:  f.stakers[1],
			choice: types.VoteNo,
		},
		"voted already": {
			voter:  f.stakers[0],
			choice: types.VoteNo,
			expErr: types.ErrAlreadyVoted,
		},
		"not a staker": {
			voter:  RandomAddress(t),
			choice: types.VoteYes,
			expErr: types.ErrNotStaker,
		},
		"undefined choice": {
			voter:  f.stakers[1],
			choice: types.VoteUndefined,
			expErr: types.ErrInvalidChoice,
		},
		"unknown index": {
			voter:  f.stakers[1],
			index:  1,
			choice: types.VoteYes,
			expErr: types.ErrNoProposal,
		},
		"after deadline": {
			voter:  f.stakers[1],
			choice: types.VoteYes,
			wait:   seconds(types.DefaultPropertyVotePeriod),
			expErr: types.ErrVotePeriodElapsed,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, _ := f.ctx.CacheContext()
			ctx = ctx.WithBlockTime(ctx.BlockTime().Add(spec.wait))
			gotErr := f.k.VoteToProperty(ctx, spec.voter, spec.index, types.FlagMinVoteCount, spec.choice)
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				return
			}
			require.NoError(t, gotErr)
			p, err := f.k.GetPropertyProposal(ctx, 0, types.FlagMinVoteCount)
			require.NoError(t, err)
			assert.Equal(t, uint64(2), p.Tally.Voters)
			assertIntEqual(t, sdk.NewInt(fixtureStake), p.Tally.No)
			v, found := f.k.GetVote(ctx, p.ID, spec.voter)
			require.True(t, found)
			assert.Equal(t, spec.choice, v.Choice)
		})
	}
}

func TestVoteWeightFixedAtCast(t *testing.T) {
	f := setupDAO(t, 1)
	voter := f.stakers[0]
	_, err := f.k.ProposalProperty(f.ctx, voter, types.FlagMinVoteCount, 3, "fewer voters", "")
	require.NoError(t, err)
	require.NoError(t, f.k.VoteToProperty(f.ctx, voter, 0, types.FlagMinVoteCount, types.VoteYes))

	require.NoError(t, f.k.StakeVAB(f.ctx, voter, sdk.NewInt(5_000)))
	p, err := f.k.GetPropertyProposal(f.ctx, 0, types.FlagMinVoteCount)
	require.NoError(t, err)
	assertIntEqual(t, sdk.NewInt(fixtureStake), p.Tally.Yes)
}

func TestUpdatePropertyForTesting(t *testing.T) {
	specs := map[string]struct {
		config types.Config
		caller func(f *daoFixture) sdk.AccAddress
		value  uint64
		expErr error
	}{
		"auditor with overrides": {
			config: types.Config{TestingOverrides: true},
			caller: func(f *daoFixture) sdk.AccAddress { return f.auditor },
			value:  7,
		},
		"overrides disabled": {
			config: types.DefaultConfig(),
			caller: func(f *daoFixture) sdk.AccAddress { return f.auditor },
			value:  7,
			expErr: types.ErrTestingOverrideOff,
		},
		"not the auditor": {
			config: types.Config{TestingOverrides: true},
			caller: func(f *daoFixture) sdk.AccAddress { return f.stakers[0] },
			value:  7,
			expErr: types.ErrNotAuditor,
		},
		"invalid value": {
			config: types.Config{TestingOverrides: true},
			caller: func(f *daoFixture) sdk.AccAddress { return f.auditor },
			value:  0,
			expErr: types.ErrInvalidProperty,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			f := setupDAOWithConfig(t, 1, spec.config)
			gotErr := f.k.UpdatePropertyForTesting(f.ctx, spec.caller(f), spec.value, types.FlagMinVoteCount)
			got, err := f.k.GetPropertyValue(f.ctx, types.FlagMinVoteCount)
			require.NoError(t, err)
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				assert.Equal(t, types.DefaultMinVoteCount, got)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.value, got)
		})
	}
}

func TestReplaceAuditor(t *testing.T) {
	f := setupDAO(t, 5)
	candidate := RandomAddress(t)

	_, err := f.k.ProposalAuditor(f.ctx, f.stakers[0], f.auditor, "same", "")
	require.ErrorIs(t, err, types.ErrSameAuditor)

	p, err := f.k.ProposalAuditor(f.ctx, f.stakers[0], candidate, "new auditor", "")
	require.NoError(t, err)
	assert.Equal(t, types.ProposalKindAuditor, p.Kind())
	f.voteAll(t, func(voter sdk.AccAddress) error {
		return f.k.VoteToAgent(f.ctx, voter, 0, types.VoteYes)
	})

	_, err = f.k.FinalizeAuditorVote(f.ctx, 0)
	require.ErrorIs(t, err, types.ErrAuditorVotePeriod)

	f.wait(seconds(types.DefaultAgentVotePeriod))
	approved, err := f.k.FinalizeAuditorVote(f.ctx, 0)
	require.NoError(t, err)
	assert.True(t, approved)
	p, err = f.k.GetAuditorProposal(f.ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, types.ProposalStatusPendingDispute, p.Status)
	// the auditor is unchanged during the dispute period
	assert.Equal(t, f.auditor, f.k.GetAuditor(f.ctx))

	_, err = f.k.ReplaceAuditor(f.ctx, 0)
	require.ErrorIs(t, err, types.ErrAuditorDisputePeriod)

	f.wait(seconds(types.DefaultDisputeGracePeriod))
	replaced, err := f.k.ReplaceAuditor(f.ctx, 0)
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, candidate, f.k.GetAuditor(f.ctx))
	p, err = f.k.GetAuditorProposal(f.ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, types.ProposalStatusApproved, p.Status)

	_, err = f.k.ReplaceAuditor(f.ctx, 0)
	require.ErrorIs(t, err, types.ErrProposalFinalized)
	_, err = f.k.FinalizeAuditorVote(f.ctx, 0)
	require.ErrorIs(t, err, types.ErrProposalFinalized)
}

func TestReplaceAuditorTalliesOpenProposal(t *testing.T) {
	specs := map[string]struct {
		choice      types.VoteChoice
		wait        time.Duration
		expReplaced bool
		expStatus   types.ProposalStatus
		expErr      error
	}{
		"approved after dispute period": {
			choice:      types.VoteYes,
			wait:        seconds(types.DefaultAgentVotePeriod + types.DefaultDisputeGracePeriod),
			expReplaced: true,
			expStatus:   types.ProposalStatusApproved,
		},
		"approved within dispute period": {
			choice: types.VoteYes,
			wait:   seconds(types.DefaultAgentVotePeriod),
			expErr: types.ErrAuditorDisputePeriod,
		},
		"rejected": {
			choice:    types.VoteNo,
			wait:      seconds(types.DefaultAgentVotePeriod),
			expStatus: types.ProposalStatusRejected,
		},
		"vote still open": {
			choice: types.VoteYes,
			wait:   time.Hour,
			expErr: types.ErrAuditorVotePeriod,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			f := setupDAO(t, 5)
			candidate := RandomAddress(t)
			_, err := f.k.ProposalAuditor(f.ctx, f.stakers[0], candidate, "new auditor", "")
			require.NoError(t, err)
			f.voteAll(t, func(voter sdk.AccAddress) error {
				return f.k.VoteToAgent(f.ctx, voter, 0, spec.choice)
			})
			f.wait(spec.wait)

			replaced, gotErr := f.k.ReplaceAuditor(f.ctx, 0)
			p, err := f.k.GetAuditorProposal(f.ctx, 0)
			require.NoError(t, err)
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				// a failed call keeps the proposal open
				assert.Equal(t, types.ProposalStatusOpen, p.Status)
				assert.Equal(t, f.auditor, f.k.GetAuditor(f.ctx))
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expReplaced, replaced)
			assert.Equal(t, spec.expStatus, p.Status)
			if spec.expReplaced {
				assert.Equal(t, candidate, f.k.GetAuditor(f.ctx))
			} else {
				assert.Equal(t, f.auditor, f.k.GetAuditor(f.ctx))
			}
		})
	}
}

func TestSetRewardFundAddress(t *testing.T) {
	f := setupDAO(t, 5)
	fundAddr := RandomAddress(t)

	_, err := f.k.ProposalRewardFund(f.ctx, f.stakers[0], sdk.AccAddress{}, "empty", "")
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = f.k.ProposalRewardFund(f.ctx, f.stakers[0], fundAddr, "reward fund", "")
	require.NoError(t, err)
	f.voteAll(t, func(voter sdk.AccAddress) error {
		return f.k.VoteToRewardFund(f.ctx, voter, 0, types.VoteYes)
	})

	_, err = f.k.SetRewardFundAddress(f.ctx, 0)
	require.ErrorIs(t, err, types.ErrRewardVotePeriod)

	f.wait(seconds(types.DefaultRewardVotePeriod))
	approved, err := f.k.SetRewardFundAddress(f.ctx, 0)
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Equal(t, fundAddr, f.k.GetRewardPool(f.ctx).RewardFundAddress)

	// withdrawals can only go to the chosen address
	_, err = f.k.WithdrawAllFunds(f.ctx, f.auditor, f.auditor)
	require.ErrorIs(t, err, types.ErrWrongRewardFundAddr)
	withdrawn, err := f.k.WithdrawAllFunds(f.ctx, f.auditor, fundAddr)
	require.NoError(t, err)
	assertIntEqual(t, sdk.NewInt(fixtureReward), withdrawn)
	assertIntEqual(t, sdk.NewInt(fixtureReward), f.balance(fundAddr, sdk.DefaultBondDenom))
}

func TestSetRewardFundAddressRejected(t *testing.T) {
	f := setupDAO(t, 5)
	_, err := f.k.ProposalRewardFund(f.ctx, f.stakers[0], RandomAddress(t), "reward fund", "")
	require.NoError(t, err)
	f.voteAll(t, func(voter sdk.AccAddress) error {
		return f.k.VoteToRewardFund(f.ctx, voter, 0, types.VoteNo)
	})
	f.wait(seconds(types.DefaultRewardVotePeriod))

	approved, err := f.k.SetRewardFundAddress(f.ctx, 0)
	require.NoError(t, err)
	assert.False(t, approved)
	assert.True(t, f.k.GetRewardPool(f.ctx).RewardFundAddress.Empty())
}
