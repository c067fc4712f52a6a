package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentMulInt(t *testing.T) {
	specs := map[string]struct {
		percent Percent
		x       sdk.Int
		exp     sdk.Int
	}{
		"one hundred percent": {
			percent: OneHundredPercent,
			x:       sdk.NewInt(12_345),
			exp:     sdk.NewInt(12_345),
		},
		"zero": {
			percent: 0,
			x:       sdk.NewInt(12_345),
			exp:     sdk.ZeroInt(),
		},
		"ten percent": {
			percent: NewPercent(10),
			x:       sdk.NewInt(1_000),
			exp:     sdk.NewInt(100),
		},
		"rounded down": {
			percent: 3_333_333_333,
			x:       sdk.NewInt(100),
			exp:     sdk.NewInt(33),
		},
		"fraction of a percent": {
			percent: Percent(DefaultRewardRate),
			x:       sdk.NewInt(80_000),
			exp:     sdk.NewInt(20),
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			got := spec.percent.MulInt(spec.x)
			assert.Equal(t, spec.exp.String(), got.String())
		})
	}
}

func TestPercentMulIntNeverExceedsInput(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 100; i++ {
		var (
			p Percent
			x uint64
		)
		f.Fuzz(&p)
		f.Fuzz(&x)
		p %= OneHundredPercent + 1
		amount := sdk.NewIntFromUint64(x)
		got := p.MulInt(amount)
		require.True(t, got.LTE(amount), "%s of %s", p, amount)
		require.True(t, got.Add(p.Complement().MulInt(amount)).LTE(amount))
	}
}

func TestPercentValidateBasic(t *testing.T) {
	assert.NoError(t, OneHundredPercent.ValidateBasic())
	assert.NoError(t, Percent(0).ValidateBasic())
	assert.Error(t, (OneHundredPercent + 1).ValidateBasic())
}

func TestPercentString(t *testing.T) {
	assert.Equal(t, "10.00000000%", NewPercent(10).String())
	assert.Equal(t, "0.02500000%", Percent(DefaultRewardRate).String())
}

func TestSumPercents(t *testing.T) {
	total, ok := SumPercents([]Percent{3_333_333_333, 6_666_666_667})
	require.True(t, ok)
	assert.Equal(t, OneHundredPercent, total)

	_, ok = SumPercents([]Percent{Percent(^uint64(0)), 1})
	assert.False(t, ok)

	total, ok = SumPercents(nil)
	require.True(t, ok)
	assert.Equal(t, Percent(0), total)
}
