package app

import sdk "github.com/cosmos/cosmos-sdk/types"

// LimitSimulationGasDecorator caps the gas a simulated tx can consume. Simulations
// otherwise run on an infinite gas meter.
type LimitSimulationGasDecorator struct {
	nodeLimit *sdk.Gas
}

// NewLimitSimulationGasDecorator constructor. A nil node limit falls back to the block gas limit.
func NewLimitSimulationGasDecorator(nodeLimit *sdk.Gas) *LimitSimulationGasDecorator {
	return &LimitSimulationGasDecorator{nodeLimit: nodeLimit}
}

func (d LimitSimulationGasDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	if simulate {
		if limit, ok := d.simulationLimit(ctx); ok {
			ctx = ctx.WithGasMeter(sdk.NewGasMeter(limit))
		}
	}
	// check and deliver tx keep the gas meter of the tx gas limit
	return next(ctx, tx, simulate)
}

func (d LimitSimulationGasDecorator) simulationLimit(ctx sdk.Context) (sdk.Gas, bool) {
	if d.nodeLimit != nil {
		return *d.nodeLimit, true
	}
	maxBlockGas := ctx.ConsensusParams().GetBlock().GetMaxGas()
	return sdk.Gas(maxBlockGas), maxBlockGas > 0
}
