package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

func TestSetTierInfo(t *testing.T) {
	f := setupDAO(t, 2)
	studio := f.stakers[0]
	filmID := f.fundingFilm(t, usd(1_000))
	listingID := f.createFilm(t, types.FundTypeListing, true, validTerms(sdk.ZeroInt(), RandomAddress(t)))

	specs := map[string]struct {
		caller sdk.AccAddress
		filmID uint64
		mins   []sdk.Int
		maxs   []sdk.Int
		expErr error
	}{
		"bounded and open top tier": {
			caller: studio,
			filmID: filmID,
			mins:   []sdk.Int{usd(100), usd(500)},
			maxs:   []sdk.Int{usd(500), sdk.ZeroInt()},
		},
		"single tier": {
			caller: studio,
			filmID: filmID,
			mins:   []sdk.Int{usd(1)},
			maxs:   []sdk.Int{usd(10)},
		},
		"overlapping": {
			caller: studio,
			filmID: filmID,
			mins:   []sdk.Int{usd(100), usd(400)},
			maxs:   []sdk.Int{usd(500), sdk.ZeroInt()},
			expErr: types.ErrInvalidTierBands,
		},
		"open tier not last": {
			caller: studio,
			filmID: filmID,
			mins:   []sdk.Int{usd(100), usd(500)},
			maxs:   []sdk.Int{sdk.ZeroInt(), usd(600)},
			expErr: types.ErrInvalidTierBands,
		},
		"max below min": {
			caller: studio,
			filmID: filmID,
			mins:   []sdk.Int{usd(100)},
			maxs:   []sdk.Int{usd(50)},
			expErr: types.ErrInvalidTierBands,
		},
		"empty": {
			caller: studio,
			filmID: filmID,
			expErr: types.ErrInvalidTierBands,
		},
		"length mismatch": {
			caller: studio,
			filmID: filmID,
			mins:   []sdk.Int{usd(100)},
			maxs:   []sdk.Int{usd(500), sdk.ZeroInt()},
			expErr: types.ErrLengthMismatch,
		},
		"not the studio": {
			caller: f.stakers[1],
			filmID: filmID,
			mins:   []sdk.Int{usd(100)},
			maxs:   []sdk.Int{usd(500)},
			expErr: types.ErrNotStudio,
		},
		"listing film": {
			caller: studio,
			filmID: listingID,
			mins:   []sdk.Int{usd(100)},
			maxs:   []sdk.Int{usd(500)},
			expErr: types.ErrInvalidFilmStatus,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, _ := f.ctx.CacheContext()
			gotErr := f.k.SetTierInfo(ctx, spec.caller, spec.filmID, spec.mins, spec.maxs)
			if spec.expErr != nil {
				require.ErrorIs(t, gotErr, spec.expErr)
				assert.Empty(t, f.k.GetTiers(ctx, spec.filmID))
				return
			}
			require.NoError(t, gotErr)
			tiers := f.k.GetTiers(ctx, spec.filmID)
			require.Len(t, tiers, len(spec.mins))
			for i, tier := range tiers {
				assert.Equal(t, uint64(i+1), tier.Index)
				assertIntEqual(t, spec.mins[i], tier.MinAmount)
				assertIntEqual(t, spec.maxs[i], tier.MaxAmount)
			}

			// bands are set once
			err := f.k.SetTierInfo(ctx, studio, spec.filmID, spec.mins, spec.maxs)
			require.ErrorIs(t, err, types.ErrTierInfoExists)
		})
	}
}

func TestDeployTierNFTContract(t *testing.T) {
	f := setupDAO(t, 1)
	studio := f.stakers[0]
	filmID := f.fundingFilm(t, usd(1_000))
	require.NoError(t, f.k.SetTierInfo(f.ctx, studio, filmID, []sdk.Int{usd(100), usd(500)}, []sdk.Int{usd(500), sdk.ZeroInt()}))

	id1, err := f.k.DeployTierNFTContract(f.ctx, studio, filmID, 1, "Bronze", "BRZ")
	require.NoError(t, err)
	id2, err := f.k.DeployTierNFTContract(f.ctx, studio, filmID, 2, "Gold", "GLD")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, []uint64{id1, id2})

	c, err := f.k.GetFilmCollection(f.ctx, filmID, 2)
	require.NoError(t, err)
	assert.Equal(t, id2, c.ID)
	assert.Equal(t, types.CollectionKindTierNFT, c.Kind)
	assert.Equal(t, "GLD", c.Symbol)
	tier, err := f.k.TierInfo(f.ctx, filmID, 2)
	require.NoError(t, err)
	assert.Equal(t, id2, tier.CollectionID)

	_, err = f.k.DeployTierNFTContract(f.ctx, studio, filmID, 1, "Bronze", "BRZ")
	require.ErrorIs(t, err, types.ErrAlreadyDeployed)
	_, err = f.k.DeployTierNFTContract(f.ctx, studio, filmID, 3, "Platinum", "PLT")
	require.ErrorIs(t, err, types.ErrTierNotFound)
	_, err = f.k.DeployTierNFTContract(f.ctx, studio, filmID, 0, "Revenue", "REV")
	require.ErrorIs(t, err, types.ErrTierNotFound)
}

func TestMintTierNft(t *testing.T) {
	f := setupDAO(t, 1)
	studio := f.stakers[0]
	filmID := f.fundingFilm(t, usd(1_000))
	require.NoError(t, f.k.SetTierInfo(f.ctx, studio, filmID, []sdk.Int{usd(100), usd(500)}, []sdk.Int{usd(500), sdk.ZeroInt()}))
	bronze, err := f.k.DeployTierNFTContract(f.ctx, studio, filmID, 1, "Bronze", "BRZ")
	require.NoError(t, err)
	gold, err := f.k.DeployTierNFTContract(f.ctx, studio, filmID, 2, "Gold", "GLD")
	require.NoError(t, err)

	deposit := func(amount int64) sdk.AccAddress {
		addr := f.keepers.Faucet.NewFundedAccount(f.ctx, assetCoin(1_000_000_000))
		_, err := f.k.DepositToFilm(f.ctx, addr, filmID, rawUSD(amount), testAssetDenom)
		require.NoError(t, err)
		return addr
	}
	whale, fan, boundary, small := deposit(600), deposit(200), deposit(500), deposit(50)

	_, err = f.k.MintTierNft(f.ctx, whale, filmID)
	require.ErrorIs(t, err, types.ErrFundPeriodYet)
	f.wait(seconds(filmFundPeriod))

	specs := []struct {
		holder        sdk.AccAddress
		expCollection uint64
		expTier       uint64
		expTokenID    uint64
		expErr        error
	}{
		{holder: whale, expCollection: gold, expTier: 2, expTokenID: 1},
		{holder: fan, expCollection: bronze, expTier: 1, expTokenID: 1},
		{holder: boundary, expCollection: gold, expTier: 2, expTokenID: 2},
		{holder: small, expErr: types.ErrNoTierForDeposit},
		{holder: RandomAddress(t), expErr: types.ErrNoTierForDeposit},
		{holder: whale, expErr: types.ErrTierNftMinted},
	}
	for i, spec := range specs {
		token, gotErr := f.k.MintTierNft(f.ctx, spec.holder, filmID)
		if spec.expErr != nil {
			require.ErrorIs(t, gotErr, spec.expErr, "position %d", i)
			continue
		}
		require.NoError(t, gotErr, "position %d", i)
		assert.Equal(t, spec.expCollection, token.CollectionID)
		assert.Equal(t, spec.expTokenID, token.TokenID)
		tier, found := f.k.GetTierOfHolder(f.ctx, filmID, spec.holder)
		require.True(t, found)
		assert.Equal(t, spec.expTier, tier)
		owner, err := f.k.GetNFTOwner(f.ctx, filmID, spec.expTokenID, spec.expTier)
		require.NoError(t, err)
		assert.Equal(t, spec.holder, owner)
	}

	supply, err := f.k.GetTotalSupply(f.ctx, filmID, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), supply)
	ids, err := f.k.GetTierTokenIDList(f.ctx, filmID, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, ids)
	c, err := f.k.GetCollection(f.ctx, gold)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), c.Supply)

	_, found := f.k.GetTierOfHolder(f.ctx, filmID, small)
	assert.False(t, found)
	_, err = f.k.GetNFTOwner(f.ctx, filmID, 3, 2)
	require.ErrorIs(t, err, types.ErrTokenNotFound)
	_, err = f.k.GetTotalSupply(f.ctx, filmID, 3)
	require.ErrorIs(t, err, types.ErrTierNotFound)
}

func TestMintTierNftRequiresSetup(t *testing.T) {
	specs := map[string]struct {
		setTiers bool
		expErr   error
	}{
		"no tiers": {
			expErr: types.ErrTierNotFound,
		},
		"tier not deployed": {
			setTiers: true,
			expErr:   types.ErrNotDeployed,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			f := setupDAO(t, 1)
			studio := f.stakers[0]
			filmID := f.fundingFilm(t, usd(1_000))
			if spec.setTiers {
				require.NoError(t, f.k.SetTierInfo(f.ctx, studio, filmID, []sdk.Int{usd(1)}, []sdk.Int{sdk.ZeroInt()}))
			}
			holder := f.keepers.Faucet.NewFundedAccount(f.ctx, assetCoin(1_000_000_000))
			_, err := f.k.DepositToFilm(f.ctx, holder, filmID, rawUSD(10), testAssetDenom)
			require.NoError(t, err)
			f.wait(seconds(filmFundPeriod))

			_, gotErr := f.k.MintTierNft(f.ctx, holder, filmID)
			require.ErrorIs(t, gotErr, spec.expErr)
			_, found := f.k.GetTierOfHolder(f.ctx, filmID, holder)
			assert.False(t, found)
		})
	}
}

func TestMintTierNftAfterRefund(t *testing.T) {
	f := setupDAO(t, 1)
	studio := f.stakers[0]
	filmID := f.fundingFilm(t, usd(1_000))
	require.NoError(t, f.k.SetTierInfo(f.ctx, studio, filmID, []sdk.Int{usd(100)}, []sdk.Int{sdk.ZeroInt()}))
	_, err := f.k.DeployTierNFTContract(f.ctx, studio, filmID, 1, "Bronze", "BRZ")
	require.NoError(t, err)

	deposit := func(amount int64) sdk.AccAddress {
		addr := f.keepers.Faucet.NewFundedAccount(f.ctx, assetCoin(1_000_000_000))
		_, err := f.k.DepositToFilm(f.ctx, addr, filmID, rawUSD(amount), testAssetDenom)
		require.NoError(t, err)
		return addr
	}
	refunded, kept := deposit(400), deposit(300)
	f.wait(seconds(filmFundPeriod))

	_, err = f.k.WithdrawFunding(f.ctx, refunded, filmID)
	require.NoError(t, err)

	_, err = f.k.MintTierNft(f.ctx, refunded, filmID)
	require.ErrorIs(t, err, types.ErrFundingRefunded)
	_, found := f.k.GetTierOfHolder(f.ctx, filmID, refunded)
	assert.False(t, found)

	// backers that keep their deposit still get their tier
	token, err := f.k.MintTierNft(f.ctx, kept, filmID)
	require.NoError(t, err)
	assert.Equal(t, kept, token.Owner)
	f.requireInvariants(t)
}
