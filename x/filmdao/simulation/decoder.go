package simulation

// DONTCOVER

import (
	"bytes"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// NewDecodeStore returns a decoder function closure that unmarshals the KVPair's
// Value to the corresponding film dao type. Index entries fall back into the default output.
func NewDecodeStore() func(kvA kv.Pair, kvB kv.Pair) string {
	return func(kvA, kvB kv.Pair) string {
		var newObj func() interface{}
		switch prefix := kvA.Key[:1]; {
		case bytes.Equal(prefix, types.AuditorKey):
			return fmt.Sprintf("auditor A %s\nauditor B %s", sdk.AccAddress(kvA.Value), sdk.AccAddress(kvB.Value))
		case bytes.Equal(prefix, types.RewardPoolKey):
			newObj = func() interface{} { return &types.RewardPool{} }
		case bytes.Equal(prefix, types.StakerPrefix):
			newObj = func() interface{} { return &types.Staker{} }
		case bytes.Equal(prefix, types.ProposalPrefix):
			newObj = func() interface{} { return &types.Proposal{} }
		case bytes.Equal(prefix, types.VotePrefix):
			newObj = func() interface{} { return &types.VoteRecord{} }
		case bytes.Equal(prefix, types.FilmPrefix):
			newObj = func() interface{} { return &types.Film{} }
		case bytes.Equal(prefix, types.DepositPrefix):
			newObj = func() interface{} { return &types.Deposit{} }
		case bytes.Equal(prefix, types.UserDepositPrefix):
			newObj = func() interface{} { return &types.UserDeposit{} }
		case bytes.Equal(prefix, types.TierPrefix):
			newObj = func() interface{} { return &types.Tier{} }
		case bytes.Equal(prefix, types.MintInfoPrefix):
			newObj = func() interface{} { return &types.MintInfo{} }
		case bytes.Equal(prefix, types.CollectionPrefix):
			newObj = func() interface{} { return &types.Collection{} }
		default:
			return fmt.Sprintf("store A %q => %q\nstore B %q => %q\n", kvA.Key, kvA.Value, kvB.Key, kvB.Value)
		}
		a, b := newObj(), newObj()
		types.ModuleCdc.MustUnmarshal(kvA.Value, a)
		types.ModuleCdc.MustUnmarshal(kvB.Value, b)
		return fmt.Sprintf("%v\n%v", a, b)
	}
}
