package keeper

import (
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	paramskeeper "github.com/cosmos/cosmos-sdk/x/params/keeper"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/stretchr/testify/require"
	tmcrypto "github.com/tendermint/tendermint/crypto"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/libs/rand"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// test denoms. The asset denom has 6 decimals, the staking denom is the default bond denom.
const (
	testAssetDenom    = "uusdc"
	testAssetDecimals = 6
)

type TestKeepers struct {
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.Keeper
	FilmDAOKeeper Keeper
	Faucet        *TestFaucet
}

// CreateDefaultTestInput common settings for CreateTestInput
func CreateDefaultTestInput(t testing.TB) (sdk.Context, TestKeepers) {
	return CreateTestInput(t, types.DefaultConfig())
}

// CreateTestInput sets up a film dao keeper with real bank and params keepers on an in-memory store
func CreateTestInput(t testing.TB, config types.Config) (sdk.Context, TestKeepers) {
	return createTestInput(t, config, dbm.NewMemDB())
}

func createTestInput(t testing.TB, config types.Config, db dbm.DB) (sdk.Context, TestKeepers) {
	keyFilmDAO := sdk.NewKVStoreKey(types.StoreKey)
	keyAcc := sdk.NewKVStoreKey(authtypes.StoreKey)
	keyBank := sdk.NewKVStoreKey(banktypes.StoreKey)
	keyParams := sdk.NewKVStoreKey(paramstypes.StoreKey)
	tkeyParams := sdk.NewTransientStoreKey(paramstypes.TStoreKey)

	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(keyFilmDAO, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyAcc, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyBank, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyParams, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(tkeyParams, sdk.StoreTypeTransient, db)
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())

	interfaceRegistry := cdctypes.NewInterfaceRegistry()
	std.RegisterInterfaces(interfaceRegistry)
	authtypes.RegisterInterfaces(interfaceRegistry)
	banktypes.RegisterInterfaces(interfaceRegistry)
	appCodec := codec.NewProtoCodec(interfaceRegistry)
	legacyAmino := codec.NewLegacyAmino()

	paramsKeeper := paramskeeper.NewKeeper(appCodec, legacyAmino, keyParams, tkeyParams)
	paramsKeeper.Subspace(authtypes.ModuleName)
	paramsKeeper.Subspace(banktypes.ModuleName)
	paramsKeeper.Subspace(types.ModuleName)

	maccPerms := map[string][]string{ // module account permissions
		minttypes.ModuleName: {authtypes.Minter},
		types.ModuleName:     nil,
	}
	authSubsp, _ := paramsKeeper.GetSubspace(authtypes.ModuleName)
	authKeeper := authkeeper.NewAccountKeeper(
		appCodec,
		keyAcc, // target store
		authSubsp,
		authtypes.ProtoBaseAccount, // prototype
		maccPerms,
	)
	authKeeper.SetParams(ctx, authtypes.DefaultParams())

	bankSubsp, _ := paramsKeeper.GetSubspace(banktypes.ModuleName)
	bankKeeper := bankkeeper.NewBaseKeeper(
		appCodec,
		keyBank,
		authKeeper,
		bankSubsp,
		map[string]bool{authtypes.NewModuleAddress(minttypes.ModuleName).String(): true},
	)
	bankKeeper.SetParams(ctx, banktypes.DefaultParams())

	filmDAOSubsp, _ := paramsKeeper.GetSubspace(types.ModuleName)
	keeper := NewKeeper(keyFilmDAO, filmDAOSubsp, bankKeeper, config)
	keeper.setParams(ctx, types.DefaultParams())
	keeper.setRewardPool(ctx, types.NewRewardPool())

	return ctx, TestKeepers{
		AccountKeeper: authKeeper,
		BankKeeper:    bankKeeper,
		FilmDAOKeeper: keeper,
		Faucet:        &TestFaucet{t: t, bankKeeper: bankKeeper},
	}
}

// TestFaucet mints tokens to test accounts
type TestFaucet struct {
	t          testing.TB
	bankKeeper bankkeeper.Keeper
}

func (f TestFaucet) Fund(ctx sdk.Context, receiver sdk.AccAddress, coins ...sdk.Coin) {
	amount := sdk.NewCoins(coins...)
	require.NoError(f.t, f.bankKeeper.MintCoins(ctx, minttypes.ModuleName, amount))
	require.NoError(f.t, f.bankKeeper.SendCoinsFromModuleToAccount(ctx, minttypes.ModuleName, receiver, amount))
}

// NewFundedAccount returns a random address holding the coins
func (f TestFaucet) NewFundedAccount(ctx sdk.Context, coins ...sdk.Coin) sdk.AccAddress {
	addr := RandomAddress(f.t)
	f.Fund(ctx, addr, coins...)
	return addr
}

// RandomAddress returns a random account address
func RandomAddress(_ testing.TB) sdk.AccAddress {
	return rand.Bytes(tmcrypto.AddressSize)
}
