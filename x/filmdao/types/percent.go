package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Percent is a fixed point percentage where 1e8 is one percent and 1e10 is one hundred percent.
type Percent uint64

const (
	OnePercent        Percent = 1e8
	OneHundredPercent Percent = 1e10
)

var percentScale = sdk.NewIntFromUint64(uint64(OneHundredPercent))

// NewPercent returns n whole percent
func NewPercent(n uint64) Percent {
	return Percent(n) * OnePercent
}

// MulInt returns x * p rounded down
func (p Percent) MulInt(x sdk.Int) sdk.Int {
	return x.Mul(sdk.NewIntFromUint64(uint64(p))).Quo(percentScale)
}

// Complement returns 100% - p. It must only be called on valid values.
func (p Percent) Complement() Percent {
	return OneHundredPercent - p
}

func (p Percent) ValidateBasic() error {
	if p > OneHundredPercent {
		return fmt.Errorf("percent %d exceeds %d", p, OneHundredPercent)
	}
	return nil
}

func (p Percent) String() string {
	return fmt.Sprintf("%d.%08d%%", uint64(p/OnePercent), uint64(p%OnePercent))
}

// SumPercents returns the total of all values and false on overflow.
func SumPercents(ps []Percent) (Percent, bool) {
	var total Percent
	for _, p := range ps {
		if total+p < total {
			return 0, false
		}
		total += p
	}
	return total, true
}
