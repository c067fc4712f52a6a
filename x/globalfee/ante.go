package globalfee

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"

	"github.com/cinedao/cinedao/x/globalfee/types"
)

var _ sdk.AnteDecorator = GlobalMinimumChainFeeDecorator{}

// paramSource is a read only subset of paramtypes.Subspace
type paramSource interface {
	Get(ctx sdk.Context, key []byte, ptr interface{})
	Has(ctx sdk.Context, key []byte) bool
}

// GlobalMinimumChainFeeDecorator enforces the minimum fee from the globalfee params for all
// transactions, including those in DeliverTx. The node local minimum gas prices are checked
// by the sdk mempool decorator in CheckTx only.
type GlobalMinimumChainFeeDecorator struct {
	paramSource paramSource
}

// NewGlobalMinimumChainFeeDecorator constructor
func NewGlobalMinimumChainFeeDecorator(paramSpace paramtypes.Subspace) GlobalMinimumChainFeeDecorator {
	if !paramSpace.HasKeyTable() {
		panic("paramspace was not set up via module")
	}
	return GlobalMinimumChainFeeDecorator{paramSource: paramSpace}
}

// AnteHandle fails with ErrInsufficientFee when the fee does not cover any of the minimum
// gas prices times the gas limit
func (g GlobalMinimumChainFeeDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	if simulate || !g.paramSource.Has(ctx, types.ParamStoreKeyMinGasPrices) {
		return next(ctx, tx, simulate)
	}
	feeTx, ok := tx.(sdk.FeeTx)
	if !ok {
		return ctx, sdkerrors.Wrap(sdkerrors.ErrTxDecode, "tx must be a sdk FeeTx")
	}

	var minGasPrices sdk.DecCoins
	g.paramSource.Get(ctx, types.ParamStoreKeyMinGasPrices, &minGasPrices)
	if minGasPrices.IsZero() {
		return next(ctx, tx, simulate)
	}
	requiredFees := RequiredFees(minGasPrices, feeTx.GetGas())
	if !feeTx.GetFee().IsAnyGTE(requiredFees) {
		return ctx, sdkerrors.Wrapf(sdkerrors.ErrInsufficientFee, "got: %s required: %s", feeTx.GetFee(), requiredFees)
	}
	return next(ctx, tx, simulate)
}

// RequiredFees is ceil(minGasPrice * gasLimit) per denom
func RequiredFees(minGasPrices sdk.DecCoins, gas uint64) sdk.Coins {
	requiredFees := make(sdk.Coins, len(minGasPrices))
	glDec := sdk.NewDec(int64(gas))
	for i, gp := range minGasPrices {
		fee := gp.Amount.Mul(glDec)
		requiredFees[i] = sdk.NewCoin(gp.Denom, fee.Ceil().RoundInt())
	}
	return requiredFees
}
