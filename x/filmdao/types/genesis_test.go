package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/rand"
)

func TestValidateDefaultGenesis(t *testing.T) {
	gs := DefaultGenesisState()
	require.ErrorIs(t, ValidateGenesis(gs), ErrInvalidGenesis)

	gs.Auditor = rand.Bytes(20)
	require.NoError(t, ValidateGenesis(gs))

	gs.DepositAssets = []DepositAsset{{Denom: "uusdc", Decimals: 6}, {Denom: "uusdc", Decimals: 6}}
	require.ErrorIs(t, ValidateGenesis(gs), ErrInvalidGenesis)

	gs.DepositAssets = nil
	gs.RewardPool.TotalReward = sdk.Int{}
	require.ErrorIs(t, ValidateGenesis(gs), ErrInvalidGenesis)
}
