package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

const ModuleName = "globalfee"

// ParamStoreKeyMinGasPrices store key
var ParamStoreKeyMinGasPrices = []byte("MinimumGasPricesParam")

// ModuleCdc encodes the genesis state
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	ModuleCdc.Seal()
}

// Params is the chain wide fee floor. An empty list disables it.
type Params struct {
	MinimumGasPrices sdk.DecCoins `json:"minimum_gas_prices" yaml:"minimum_gas_prices"`
}

// DefaultParams returns default parameters
func DefaultParams() Params {
	return Params{MinimumGasPrices: sdk.DecCoins{}}
}

func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// ValidateBasic performs basic validation.
func (p Params) ValidateBasic() error {
	return validateMinimumGasPrices(p.MinimumGasPrices)
}

// ParamSetPairs returns the parameter set pairs.
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(ParamStoreKeyMinGasPrices, &p.MinimumGasPrices, validateMinimumGasPrices),
	}
}

func validateMinimumGasPrices(i interface{}) error {
	v, ok := i.(sdk.DecCoins)
	if !ok {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidType, "type: %T, expected sdk.DecCoins", i)
	}
	return v.Validate()
}

// GenesisState is the globalfee genesis content
type GenesisState struct {
	Params Params `json:"params" yaml:"params"`
}
