package app

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/libs/rand"
	db "github.com/tendermint/tm-db"

	filmdaotypes "github.com/cinedao/cinedao/x/filmdao/types"
)

func newTestApp(t *testing.T, ldb db.DB) *CinedaoApp {
	t.Helper()
	return NewCinedaoApp(log.NewTMLogger(log.NewSyncWriter(os.Stdout)), ldb, nil, true, t.TempDir(), 0, MakeEncodingConfig(), EmptyBaseAppOptions{})
}

func TestCinedaoExport(t *testing.T) {
	db := db.NewMemDB()
	gapp := newTestApp(t, db)
	genesisState := NewDefaultGenesisState()
	setupWithAuditor(t, genesisState, sdk.AccAddress(rand.Bytes(20)))

	stateBytes, err := json.MarshalIndent(genesisState, "", "  ")
	require.NoError(t, err)

	// Initialize the chain
	gapp.InitChain(
		abci.RequestInitChain{
			Time:          time.Now().UTC(),
			Validators:    []abci.ValidatorUpdate{},
			AppStateBytes: stateBytes,
		},
	)
	gapp.Commit()

	// Making a new app object with the db, so that initchain hasn't been called
	newGapp := newTestApp(t, db)
	_, err = newGapp.ExportAppStateAndValidators(false, []string{})
	require.NoError(t, err, "ExportAppStateAndValidators should not have an error")
}

func TestDefaultGenesisRequiresAuditor(t *testing.T) {
	encCfg := MakeEncodingConfig()
	genesisState := NewDefaultGenesisState()
	require.Error(t, ModuleBasics.ValidateGenesis(encCfg.Marshaler, encCfg.TxConfig, genesisState))

	setupWithAuditor(t, genesisState, sdk.AccAddress(rand.Bytes(20)))
	require.NoError(t, ModuleBasics.ValidateGenesis(encCfg.Marshaler, encCfg.TxConfig, genesisState))
}

// setupWithAuditor sets the film dao administrator and funds it with staking tokens
func setupWithAuditor(t *testing.T, genesisState GenesisState, auditor sdk.AccAddress, balances ...banktypes.Balance) {
	t.Helper()
	marshaler := MakeEncodingConfig().Marshaler

	var bankGenState banktypes.GenesisState
	marshaler.MustUnmarshalJSON(genesisState[banktypes.ModuleName], &bankGenState)
	coins := sdk.NewCoins(sdk.NewCoin(sdk.DefaultBondDenom, sdk.NewInt(1_000_000)))
	bankGenState.Balances = append(bankGenState.Balances, banktypes.Balance{Address: auditor.String(), Coins: coins})
	bankGenState.Balances = append(bankGenState.Balances, balances...)
	genesisState[banktypes.ModuleName] = marshaler.MustMarshalJSON(&bankGenState)

	var filmDAOGenState filmdaotypes.GenesisState
	require.NoError(t, filmdaotypes.ModuleCdc.UnmarshalJSON(genesisState[filmdaotypes.ModuleName], &filmDAOGenState))
	filmDAOGenState.Auditor = auditor
	filmDAOGenState.DepositAssets = []filmdaotypes.DepositAsset{{Denom: "uusdc", Decimals: 6}}
	genesisState[filmdaotypes.ModuleName] = filmdaotypes.ModuleCdc.MustMarshalJSON(filmDAOGenState)
}

// ensure that blocked addresses are properly set in bank keeper
func TestBlockedAddrs(t *testing.T) {
	gapp := newTestApp(t, db.NewMemDB())

	for acc := range maccPerms {
		t.Run(acc, func(t *testing.T) {
			require.True(t, gapp.bankKeeper.BlockedAddr(gapp.accountKeeper.GetModuleAddress(acc)),
				"ensure that blocked addresses are properly set in bank keeper",
			)
		})
	}
}

func TestGetMaccPerms(t *testing.T) {
	dup := GetMaccPerms()
	require.Equal(t, maccPerms, dup, "duplicated module account permissions differed from actual module account permissions")
}

func TestReadSimulationGasLimit(t *testing.T) {
	specs := map[string]struct {
		src    interface{}
		exp    *sdk.Gas
		expErr bool
	}{
		"not set": {},
		"zero":    {src: "0"},
		"set":     {src: "1000", exp: func() *sdk.Gas { g := sdk.Gas(1000); return &g }()},
		"invalid": {src: "many", expErr: true},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			got, gotErr := readSimulationGasLimit(appOptions{FlagSimulationGasLimit: spec.src})
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			require.Equal(t, spec.exp, got)
		})
	}
}

type appOptions map[string]interface{}

func (o appOptions) Get(key string) interface{} {
	return o[key]
}
