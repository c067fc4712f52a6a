package filmdao

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/keeper"
	"github.com/cinedao/cinedao/x/filmdao/types"
)

// InitGenesis restores the module state and checks the ledger invariants. It panics on
// an inconsistent state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := keeper.InitGenesis(ctx, k, data); err != nil {
		panic(err)
	}
	for _, inv := range []sdk.Invariant{keeper.StakingTotalsInvariant(k), keeper.FilmDepositsInvariant(k)} {
		if msg, broken := inv(ctx); broken {
			keeper.ModuleLogger(ctx).Error("genesis invariant broken", "details", msg)
			panic(msg)
		}
	}
}

// ExportGenesis returns the module state for a new genesis file
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	return keeper.ExportGenesis(ctx, k)
}
