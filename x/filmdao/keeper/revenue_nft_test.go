package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// revenueFilm returns a funding film with a deployed revenue collection that sells up
// to maxMint tokens at 100 units with a 10% fee
func (f *daoFixture) revenueFilm(t *testing.T, raise sdk.Int, maxMint uint64) uint64 {
	studio := f.stakers[0]
	filmID := f.fundingFilm(t, raise)
	_, err := f.k.DeployFilmNFTContract(f.ctx, studio, filmID, "Revenue", "REV")
	require.NoError(t, err)
	require.NoError(t, f.k.SetMintInfo(f.ctx, studio, filmID, 1, maxMint, usd(100), types.NewPercent(10), types.NewPercent(5)))
	return filmID
}

func TestSetMintInfo(t *testing.T) {
	f := setupDAO(t, 2)
	studio := f.stakers[0]
	filmID := f.fundingFilm(t, usd(1_000))
	specs := map[string]struct {
		caller  sdk.AccAddress
		maxMint uint64
		price   sdk.Int
		fee     types.Percent
		expErr  error
	}{
		"valid": {
			caller:  studio,
			maxMint: 10,
			price:   usd(100),
			fee:     types.NewPercent(10),
		},
		"no fee": {
			caller:  studio,
			maxMint: 10,
			price:   usd(100),
		},
		"zero max mint": {
			caller: studio,
			price:  usd(100),
			fee:    types.NewPercent(10),
			expErr: types.ErrInvalidMintInfo,
		},
		"zero price": {
			caller:  studio,
			maxMint: 10,
			price:   sdk.ZeroInt(),
			expErr:  types.ErrInvalidMintInfo,
		},
		"fee above 100%": {
			caller:  studio,
			maxMint: 10,
			price:   usd(100),
			fee:     types.OneHundredPercent + 1,
			expErr:  types.ErrInvalidMintInfo,
		},
		"not the studio": {
			caller:  f.stakers[1],
			maxMint: 10,
			price:   usd(100),
			expErr:  types.ErrNotStudio,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, _ := f.ctx.CacheContext()
			gotErr := f.k.SetMintInfo(ctx, spec.caller, filmID, 1, spec.maxMint, spec.price, spec.fee, types.NewPercent(5))
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				_, err := f.k.GetMintInfo(ctx, filmID)
				require.ErrorIs(t, err, types.ErrNoMintInfo)
				return
			}
			require.NoError(t, gotErr)
			m, err := f.k.GetMintInfo(ctx, filmID)
			require.NoError(t, err)
			assert.Equal(t, spec.maxMint, m.MaxMintAmount)
			assert.Equal(t, spec.fee, m.FeePercent)
			assert.Equal(t, uint64(0), m.Minted)

			err = f.k.SetMintInfo(ctx, studio, filmID, 1, spec.maxMint, spec.price, spec.fee, 0)
			require.ErrorIs(t, err, types.ErrMintInfoExists)
		})
	}
}

func TestMint(t *testing.T) {
	f := setupDAO(t, 1)
	studio := f.stakers[0]
	filmID := f.revenueFilm(t, usd(1_000), 3)
	buyer := f.keepers.Faucet.NewFundedAccount(f.ctx, assetCoin(1_000_000_000))
	receiver := RandomAddress(t)
	studioBefore := f.balance(studio, testAssetDenom)

	tokenID, err := f.k.Mint(f.ctx, buyer, filmID, receiver, testAssetDenom)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tokenID)

	// buyer pays the price, the studio receives it net of the fee that goes to the auditor
	assertIntEqual(t, rawUSD(900), f.balance(buyer, testAssetDenom))
	assertIntEqual(t, studioBefore.Add(rawUSD(90)), f.balance(studio, testAssetDenom))
	assertIntEqual(t, rawUSD(10), f.balance(f.auditor, testAssetDenom))
	assertIntEqual(t, sdk.ZeroInt(), f.balance(receiver, testAssetDenom))

	assert.Equal(t, []uint64{1}, f.k.GetUserTokenIDList(f.ctx, filmID, receiver))
	assert.Empty(t, f.k.GetUserTokenIDList(f.ctx, filmID, buyer))
	m, err := f.k.GetMintInfo(f.ctx, filmID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), m.Minted)
	film, err := f.k.GetFilm(f.ctx, filmID)
	require.NoError(t, err)
	assertIntEqual(t, usd(90), film.MintedValue)
	c, err := f.k.GetFilmCollection(f.ctx, filmID, 0)
	require.NoError(t, err)
	owner, err := f.k.OwnerOf(f.ctx, c.ID, tokenID)
	require.NoError(t, err)
	assert.Equal(t, receiver, owner)
}

func TestMintFeeToRewardFund(t *testing.T) {
	f := setupDAO(t, 1)
	filmID := f.revenueFilm(t, usd(1_000), 3)
	fundAddr := RandomAddress(t)
	pool := f.k.GetRewardPool(f.ctx)
	pool.RewardFundAddress = fundAddr
	f.k.setRewardPool(f.ctx, pool)
	buyer := f.keepers.Faucet.NewFundedAccount(f.ctx, assetCoin(1_000_000_000))

	_, err := f.k.Mint(f.ctx, buyer, filmID, buyer, testAssetDenom)
	require.NoError(t, err)
	assertIntEqual(t, rawUSD(10), f.balance(fundAddr, testAssetDenom))
	assertIntEqual(t, sdk.ZeroInt(), f.balance(f.auditor, testAssetDenom))
}

func TestMintLimits(t *testing.T) {
	specs := map[string]struct {
		raise   sdk.Int
		maxMint uint64
		minted  int
		expErr  error
	}{
		"max mint amount": {
			raise:   usd(1_000),
			maxMint: 2,
			minted:  2,
			expErr:  types.ErrMintAmountExceeded,
		},
		"raise amount cap": {
			raise:   usd(150),
			maxMint: 10,
			minted:  1,
			expErr:  types.ErrRaiseCapExceeded,
		},
		"raise amount reached exactly": {
			raise:   usd(180),
			maxMint: 10,
			minted:  2,
			expErr:  types.ErrRaiseCapExceeded,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			f := setupDAO(t, 1)
			filmID := f.revenueFilm(t, spec.raise, spec.maxMint)
			buyer := f.keepers.Faucet.NewFundedAccount(f.ctx, assetCoin(1_000_000_000))
			for i := 0; i < spec.minted; i++ {
				_, err := f.k.Mint(f.ctx, buyer, filmID, buyer, testAssetDenom)
				require.NoError(t, err)
			}
			before := f.balance(buyer, testAssetDenom)

			_, gotErr := f.k.Mint(f.ctx, buyer, filmID, buyer, testAssetDenom)
			require.ErrorIs(t, gotErr, spec.expErr)
			assertIntEqual(t, before, f.balance(buyer, testAssetDenom))
			assert.Len(t, f.k.GetUserTokenIDList(f.ctx, filmID, buyer), spec.minted)
		})
	}
}

func TestMintRequiresSetup(t *testing.T) {
	f := setupDAO(t, 1)
	studio := f.stakers[0]
	buyer := f.keepers.Faucet.NewFundedAccount(f.ctx, assetCoin(1_000_000_000), sdk.NewInt64Coin("uatom", 1_000_000_000))
	noMintInfo := f.fundingFilm(t, usd(1_000))
	notDeployed := f.fundingFilm(t, usd(1_000))
	require.NoError(t, f.k.SetMintInfo(f.ctx, studio, notDeployed, 1, 10, usd(100), 0, 0))
	ready := f.revenueFilm(t, usd(1_000), 10)

	specs := map[string]struct {
		filmID uint64
		payTo  sdk.AccAddress
		denom  string
		expErr error
	}{
		"no mint info": {
			filmID: noMintInfo,
			payTo:  buyer,
			denom:  testAssetDenom,
			expErr: types.ErrNoMintInfo,
		},
		"collection not deployed": {
			filmID: notDeployed,
			payTo:  buyer,
			denom:  testAssetDenom,
			expErr: types.ErrNotDeployed,
		},
		"asset not allowed": {
			filmID: ready,
			payTo:  buyer,
			denom:  "uatom",
			expErr: types.ErrAssetNotAllowed,
		},
		"empty receiver": {
			filmID: ready,
			payTo:  sdk.AccAddress{},
			denom:  testAssetDenom,
			expErr: types.ErrInvalidAddress,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			_, gotErr := f.k.Mint(f.ctx, buyer, spec.filmID, spec.payTo, spec.denom)
			require.ErrorIs(t, gotErr, spec.expErr)
		})
	}
}

func TestMintToBatch(t *testing.T) {
	f := setupDAO(t, 1)
	film1 := f.revenueFilm(t, usd(1_000), 10)
	film2 := f.revenueFilm(t, usd(1_000), 1)
	buyer := f.keepers.Faucet.NewFundedAccount(f.ctx, assetCoin(1_000_000_000))
	alice, bob := RandomAddress(t), RandomAddress(t)

	ids, err := f.k.MintToBatch(f.ctx, buyer, []uint64{film1, film1, film2}, []sdk.AccAddress{alice, bob, alice}, testAssetDenom)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 1}, ids)
	assertIntEqual(t, rawUSD(700), f.balance(buyer, testAssetDenom))
	assert.Equal(t, []uint64{1}, f.k.GetUserTokenIDList(f.ctx, film1, alice))
	assert.Equal(t, []uint64{2}, f.k.GetUserTokenIDList(f.ctx, film1, bob))
	assert.Equal(t, []uint64{1}, f.k.GetUserTokenIDList(f.ctx, film2, alice))

	specs := map[string]struct {
		filmIDs []uint64
		payees  []sdk.AccAddress
		expErr  error
	}{
		"one position exceeds max mint": {
			filmIDs: []uint64{film1, film2},
			payees:  []sdk.AccAddress{bob, bob},
			expErr:  types.ErrMintAmountExceeded,
		},
		"unknown film": {
			filmIDs: []uint64{film1, 99},
			payees:  []sdk.AccAddress{bob, bob},
			expErr:  types.ErrNoMintInfo,
		},
		"length mismatch": {
			filmIDs: []uint64{film1},
			payees:  []sdk.AccAddress{bob, bob},
			expErr:  types.ErrLengthMismatch,
		},
		"empty": {
			expErr: types.ErrEmptyBatch,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			_, gotErr := f.k.MintToBatch(f.ctx, buyer, spec.filmIDs, spec.payees, testAssetDenom)
			require.ErrorIs(t, gotErr, spec.expErr)
			assertIntEqual(t, rawUSD(700), f.balance(buyer, testAssetDenom))
			assert.Equal(t, []uint64{2}, f.k.GetUserTokenIDList(f.ctx, film1, bob))
			m, err := f.k.GetMintInfo(f.ctx, film1)
			require.NoError(t, err)
			assert.Equal(t, uint64(2), m.Minted)
		})
	}
}
