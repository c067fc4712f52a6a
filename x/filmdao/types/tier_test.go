package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTier(t *testing.T) {
	tiers, err := NewTiers(1,
		[]sdk.Int{sdk.NewInt(100), sdk.NewInt(500), sdk.NewInt(1_000)},
		[]sdk.Int{sdk.NewInt(500), sdk.NewInt(800), sdk.ZeroInt()},
	)
	require.NoError(t, err)

	specs := map[string]struct {
		amount   int64
		expFound bool
		expIndex uint64
	}{
		"below first":         {amount: 99},
		"min is inclusive":    {amount: 100, expFound: true, expIndex: 1},
		"max is exclusive":    {amount: 500, expFound: true, expIndex: 2},
		"gap between tiers":   {amount: 900},
		"upper end of a tier": {amount: 799, expFound: true, expIndex: 2},
		"unbounded top tier":  {amount: 1_000_000, expFound: true, expIndex: 3},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			got, found := FindTier(tiers, sdk.NewInt(spec.amount))
			require.Equal(t, spec.expFound, found)
			assert.Equal(t, spec.expIndex, got.Index)
		})
	}
}

func TestNewTiers(t *testing.T) {
	specs := map[string]struct {
		mins, maxs []sdk.Int
		expErr     error
	}{
		"adjacent": {
			mins: []sdk.Int{sdk.NewInt(1), sdk.NewInt(5)},
			maxs: []sdk.Int{sdk.NewInt(5), sdk.NewInt(9)},
		},
		"negative": {
			mins:   []sdk.Int{sdk.NewInt(-1)},
			maxs:   []sdk.Int{sdk.NewInt(5)},
			expErr: ErrInvalidTierBands,
		},
		"nil amount": {
			mins:   []sdk.Int{{}},
			maxs:   []sdk.Int{sdk.NewInt(5)},
			expErr: ErrInvalidTierBands,
		},
		"max equals min": {
			mins:   []sdk.Int{sdk.NewInt(5)},
			maxs:   []sdk.Int{sdk.NewInt(5)},
			expErr: ErrInvalidTierBands,
		},
		"overlap": {
			mins:   []sdk.Int{sdk.NewInt(1), sdk.NewInt(4)},
			maxs:   []sdk.Int{sdk.NewInt(5), sdk.NewInt(9)},
			expErr: ErrInvalidTierBands,
		},
		"length mismatch": {
			mins:   []sdk.Int{sdk.NewInt(1)},
			maxs:   []sdk.Int{},
			expErr: ErrLengthMismatch,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			got, gotErr := NewTiers(7, spec.mins, spec.maxs)
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				return
			}
			require.NoError(t, gotErr)
			require.Len(t, got, len(spec.mins))
			for i, tier := range got {
				assert.Equal(t, uint64(7), tier.FilmID)
				assert.Equal(t, uint64(i+1), tier.Index)
			}
		})
	}
}
