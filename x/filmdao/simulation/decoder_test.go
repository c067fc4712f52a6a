package simulation

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/kv"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/rand"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

func TestDecodeStore(t *testing.T) {
	addr := sdk.AccAddress(rand.Bytes(20))
	staker := types.Staker{
		Address:             addr,
		StakedAmount:        sdk.NewInt(1234),
		VotingDeposit:       sdk.ZeroInt(),
		PendingReward:       sdk.ZeroInt(),
		CommittedDeposit:    sdk.ZeroInt(),
		LastRewardClaimTime: time.Unix(1, 0).UTC(),
		LastStakeTime:       time.Unix(1, 0).UTC(),
		VoteLockedUntil:     time.Unix(1, 0).UTC(),
	}
	stakerBz := types.ModuleCdc.MustMarshal(&staker)

	specs := map[string]struct {
		pair   kv.Pair
		expLog string
	}{
		"auditor": {
			pair:   kv.Pair{Key: types.AuditorKey, Value: addr},
			expLog: addr.String(),
		},
		"staker": {
			pair:   kv.Pair{Key: types.GetStakerKey(addr), Value: stakerBz},
			expLog: "1234",
		},
		"index entry": {
			pair:   kv.Pair{Key: types.GetTierHolderKey(1, addr), Value: []byte{0x1}},
			expLog: "store A",
		},
	}
	dec := NewDecodeStore()
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, dec(spec.pair, spec.pair), spec.expLog)
		})
	}
}
