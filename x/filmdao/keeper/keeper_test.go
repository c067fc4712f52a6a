package keeper

import (
	"sync"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

const (
	// stake of each fixture staker, above the proposal minimum
	fixtureStake = 1_000
	// staking tokens each fixture account starts with
	fixtureBalance = 100_000
	// reward pool seed of the auditor
	fixtureReward = 50_000
)

func stakeCoin(amount int64) sdk.Coin {
	return sdk.NewInt64Coin(sdk.DefaultBondDenom, amount)
}

func assetCoin(amount int64) sdk.Coin {
	return sdk.NewInt64Coin(testAssetDenom, amount)
}

// daoFixture is a dao with an initialized pool, one deposit asset and stakers
// holding fixtureStake each
type daoFixture struct {
	ctx     sdk.Context
	keepers TestKeepers
	k       Keeper
	auditor sdk.AccAddress
	stakers []sdk.AccAddress
}

func setupDAO(t *testing.T, numStakers int) *daoFixture {
	return setupDAOWithConfig(t, numStakers, types.DefaultConfig())
}

func setupDAOWithConfig(t *testing.T, numStakers int, config types.Config) *daoFixture {
	ctx, keepers := CreateTestInput(t, config)
	k := keepers.FilmDAOKeeper
	auditor := keepers.Faucet.NewFundedAccount(ctx, stakeCoin(fixtureBalance))
	k.setAuditor(ctx, auditor)
	require.NoError(t, k.InitializePool(ctx, auditor, sdk.NewInt(fixtureReward)))
	require.NoError(t, k.AddDepositAsset(ctx, auditor, testAssetDenom, testAssetDecimals))

	f := &daoFixture{ctx: ctx, keepers: keepers, k: k, auditor: auditor}
	for i := 0; i < numStakers; i++ {
		f.stakers = append(f.stakers, f.newStaker(t, fixtureStake))
	}
	return f
}

// newStaker returns a funded account that staked the amount
func (f *daoFixture) newStaker(t *testing.T, stake int64) sdk.AccAddress {
	addr := f.keepers.Faucet.NewFundedAccount(f.ctx, stakeCoin(fixtureBalance), assetCoin(1_000_000_000))
	require.NoError(t, f.k.StakeVAB(f.ctx, addr, sdk.NewInt(stake)))
	return addr
}

// wait moves the block time forward
func (f *daoFixture) wait(d time.Duration) {
	f.ctx = f.ctx.WithBlockTime(f.ctx.BlockTime().Add(d)).WithBlockHeight(f.ctx.BlockHeight() + 1)
}

// voteAll casts the same choice for all fixture stakers
func (f *daoFixture) voteAll(t *testing.T, vote func(voter sdk.AccAddress) error) {
	for _, s := range f.stakers {
		require.NoError(t, vote(s))
	}
}

func (f *daoFixture) balance(addr sdk.AccAddress, denom string) sdk.Int {
	return f.keepers.BankKeeper.GetBalance(f.ctx, addr, denom).Amount
}

// assertIntEqual compares amounts by value
func assertIntEqual(t *testing.T, exp, got sdk.Int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, exp.String(), got.String(), msgAndArgs...)
}

// requireInvariants checks the ledger invariants hold
func (f *daoFixture) requireInvariants(t *testing.T) {
	for _, inv := range []sdk.Invariant{StakingTotalsInvariant(f.k), FilmDepositsInvariant(f.k)} {
		msg, broken := inv(f.ctx)
		require.False(t, broken, msg)
	}
}

func TestAtomicRollback(t *testing.T) {
	f := setupDAO(t, 0)
	em := sdk.NewEventManager()
	ctx := f.ctx.WithEventManager(em)

	gotErr := f.k.atomic(ctx, "test", func(ctx sdk.Context) error {
		f.k.setAuditor(ctx, RandomAddress(t))
		emitAdminUpdate(ctx, "test", "value")
		return types.ErrNotAuditor
	})
	require.ErrorIs(t, gotErr, types.ErrNotAuditor)
	assert.Equal(t, f.auditor, f.k.GetAuditor(ctx))
	assert.Empty(t, em.Events())

	newAuditor := RandomAddress(t)
	gotErr = f.k.atomic(ctx, "test", func(ctx sdk.Context) error {
		f.k.setAuditor(ctx, newAuditor)
		emitAdminUpdate(ctx, "test", "value")
		return nil
	})
	require.NoError(t, gotErr)
	assert.Equal(t, newAuditor, f.k.GetAuditor(ctx))
	require.Len(t, em.Events(), 1)
	assert.Equal(t, types.EventTypeAdminUpdate, em.Events()[0].Type)
}

func TestConcurrentOperationsAreSerialized(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	const workers = 20
	f := setupDAO(t, 0)
	accounts := make([]sdk.AccAddress, workers)
	for i := range accounts {
		accounts[i] = f.keepers.Faucet.NewFundedAccount(f.ctx, stakeCoin(fixtureBalance))
	}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for _, a := range accounts {
		wg.Add(1)
		go func(staker sdk.AccAddress) {
			defer wg.Done()
			errs <- f.k.StakeVAB(f.ctx, staker, sdk.NewInt(fixtureStake))
		}(a)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assertIntEqual(t, sdk.NewInt(workers*fixtureStake), f.k.GetRewardPool(f.ctx).TotalStaked)
	f.requireInvariants(t)
}

func TestAutoIncrementID(t *testing.T) {
	ctx, keepers := CreateDefaultTestInput(t)
	k := keepers.FilmDAOKeeper
	name := []byte("my-seq")

	assert.Equal(t, uint64(1), k.peekAutoIncrementID(ctx, name))
	assert.Equal(t, uint64(1), k.autoIncrementID(ctx, name))
	assert.Equal(t, uint64(2), k.autoIncrementID(ctx, name))
	assert.Equal(t, uint64(3), k.peekAutoIncrementID(ctx, name))
	// other counters are independent
	assert.Equal(t, uint64(1), k.autoIncrementID(ctx, []byte("other")))

	var seqs []types.Sequence
	k.iterateSequences(ctx, func(seq types.Sequence) bool {
		seqs = append(seqs, seq)
		return false
	})
	assert.Equal(t, []types.Sequence{
		{Key: []byte("my-seq"), Value: 3},
		{Key: []byte("other"), Value: 2},
	}, seqs)
}

func TestAdminOperationsRequireAuditor(t *testing.T) {
	f := setupDAO(t, 0)
	other := f.keepers.Faucet.NewFundedAccount(f.ctx, stakeCoin(fixtureBalance))
	specs := map[string]func(caller sdk.AccAddress) error{
		"set base uri": func(caller sdk.AccAddress) error {
			return f.k.SetBaseURI(f.ctx, caller, "ipfs://base/", "ipfs://collection/")
		},
		"add deposit asset": func(caller sdk.AccAddress) error {
			return f.k.AddDepositAsset(f.ctx, caller, "uatom", 6)
		},
		"withdraw all funds": func(caller sdk.AccAddress) error {
			_, err := f.k.WithdrawAllFunds(f.ctx, caller, caller)
			return err
		},
	}
	for name, op := range specs {
		t.Run(name, func(t *testing.T) {
			err := op(other)
			require.ErrorIs(t, err, types.ErrNotAuditor)
			assert.Equal(t, types.KindAuthorization, types.KindOf(err))
		})
	}
}

func TestInitializePool(t *testing.T) {
	ctx, keepers := CreateDefaultTestInput(t)
	k := keepers.FilmDAOKeeper
	auditor := keepers.Faucet.NewFundedAccount(ctx, stakeCoin(fixtureBalance))
	k.setAuditor(ctx, auditor)

	// staking is closed before the pool is initialized
	err := k.StakeVAB(ctx, auditor, sdk.NewInt(1))
	require.ErrorIs(t, err, types.ErrPoolNotInitialized)

	require.NoError(t, k.InitializePool(ctx, auditor, sdk.NewInt(1_000)))
	pool := k.GetRewardPool(ctx)
	assert.True(t, pool.Initialized)
	assertIntEqual(t, sdk.NewInt(1_000), pool.TotalReward)
	assertIntEqual(t, sdk.NewInt(fixtureBalance-1_000), keepers.BankKeeper.GetBalance(ctx, auditor, sdk.DefaultBondDenom).Amount)

	err = k.InitializePool(ctx, auditor, sdk.ZeroInt())
	require.ErrorIs(t, err, types.ErrPoolInitialized)
}

func TestAddDepositAsset(t *testing.T) {
	f := setupDAO(t, 0)
	specs := map[string]struct {
		denom    string
		decimals uint32
		expErr   error
	}{
		"new asset": {
			denom:    "uatom",
			decimals: 6,
		},
		"18 decimals": {
			denom:    "aevmos",
			decimals: 18,
		},
		"duplicate": {
			denom:    testAssetDenom,
			decimals: 6,
			expErr:   types.ErrAssetExists,
		},
		"too many decimals": {
			denom:    "foo",
			decimals: 19,
			expErr:   types.ErrInvalidDecimals,
		},
		"invalid denom": {
			denom:    "1",
			decimals: 6,
			expErr:   types.ErrAssetNotAllowed,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, _ := f.ctx.CacheContext()
			gotErr := f.k.AddDepositAsset(ctx, f.auditor, spec.denom, spec.decimals)
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				return
			}
			require.NoError(t, gotErr)
			a, found := f.k.GetDepositAsset(ctx, spec.denom)
			require.True(t, found)
			assert.Equal(t, spec.decimals, a.Decimals)
		})
	}
}

func TestSetBaseURI(t *testing.T) {
	f := setupDAO(t, 0)
	assert.Equal(t, types.BaseURI{}, f.k.GetBaseURI(f.ctx))
	require.NoError(t, f.k.SetBaseURI(f.ctx, f.auditor, "ipfs://base/", "ipfs://collection/"))
	assert.Equal(t, types.BaseURI{Base: "ipfs://base/", Collection: "ipfs://collection/"}, f.k.GetBaseURI(f.ctx))
}
