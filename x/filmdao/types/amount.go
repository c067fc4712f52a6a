package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NormalizedDecimals is the internal precision of all film amounts.
const NormalizedDecimals = 18

// DepositAsset is a fungible asset accepted for film funding and revenue minting.
type DepositAsset struct {
	Denom    string `json:"denom" yaml:"denom"`
	Decimals uint32 `json:"decimals" yaml:"decimals"`
}

func (a DepositAsset) ValidateBasic() error {
	if err := sdk.ValidateDenom(a.Denom); err != nil {
		return ErrAssetNotAllowed.Wrap(err.Error())
	}
	if a.Decimals > NormalizedDecimals {
		return ErrInvalidDecimals.Wrapf("max %d", NormalizedDecimals)
	}
	return nil
}

func (a DepositAsset) scale() sdk.Int {
	return sdk.NewIntWithDecimal(1, int(NormalizedDecimals-a.Decimals))
}

// Normalize scales a raw asset amount to 18 decimals.
func (a DepositAsset) Normalize(raw sdk.Int) sdk.Int {
	return raw.Mul(a.scale())
}

// Denormalize converts an 18 decimal amount into raw asset units, rounding up so
// that a payment never falls short of the normalized price.
func (a DepositAsset) Denormalize(normalized sdk.Int) sdk.Int {
	s := a.scale()
	q := normalized.Quo(s)
	if !normalized.Mod(s).IsZero() {
		q = q.AddRaw(1)
	}
	return q
}
