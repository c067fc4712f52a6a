package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// revenueCollectionTier is the film collection slot of the revenue nft
const revenueCollectionTier = 0

// DeployFilmNFTContract binds the revenue collection of a film
func (k Keeper) DeployFilmNFTContract(ctx sdk.Context, studio sdk.AccAddress, filmID uint64, name, symbol string) (uint64, error) {
	var collectionID uint64
	err := k.atomic(ctx, "deploy_film_nft", func(ctx sdk.Context) error {
		f, err := k.requireStudioFunding(ctx, studio, filmID)
		if err != nil {
			return err
		}
		c, err := k.deployCollection(ctx, studio, f.ID, revenueCollectionTier, types.CollectionKindFilmNFT, name, symbol)
		if err != nil {
			return err
		}
		collectionID = c.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return collectionID, nil
}

// GetMintInfo returns the revenue nft configuration of a film
func (k Keeper) GetMintInfo(ctx sdk.Context, filmID uint64) (types.MintInfo, error) {
	var m types.MintInfo
	if !k.load(ctx, types.GetMintInfoKey(filmID), &m) {
		return m, types.ErrNoMintInfo.Wrapf("film %d", filmID)
	}
	return m, nil
}

func (k Keeper) setMintInfo(ctx sdk.Context, m types.MintInfo) {
	k.save(ctx, types.GetMintInfoKey(m.FilmID), &m)
}

// IterateMintInfos calls cb for all mint infos until cb returns true
func (k Keeper) IterateMintInfos(ctx sdk.Context, cb func(types.MintInfo) bool) {
	iterate(ctx, k.storeKey, types.MintInfoPrefix, func(_, value []byte) bool {
		var m types.MintInfo
		k.cdc.MustUnmarshal(value, &m)
		return cb(m)
	})
}

// SetMintInfo configures revenue nft minting of a film. It can only be set once.
func (k Keeper) SetMintInfo(
	ctx sdk.Context,
	studio sdk.AccAddress,
	filmID, tier, maxMintAmount uint64,
	mintPrice sdk.Int,
	feePercent, revenuePercent types.Percent,
) error {
	return k.atomic(ctx, "set_mint_info", func(ctx sdk.Context) error {
		f, err := k.requireStudioFunding(ctx, studio, filmID)
		if err != nil {
			return err
		}
		if _, err := k.GetMintInfo(ctx, f.ID); err == nil {
			return types.ErrMintInfoExists
		}
		m := types.MintInfo{
			FilmID:         f.ID,
			Tier:           tier,
			MaxMintAmount:  maxMintAmount,
			MintPrice:      mintPrice,
			FeePercent:     feePercent,
			RevenuePercent: revenuePercent,
		}
		if err := m.ValidateBasic(); err != nil {
			return err
		}
		k.setMintInfo(ctx, m)
		return nil
	})
}

// Mint issues one revenue nft of the film to payTo, paid by the caller in the denom.
func (k Keeper) Mint(ctx sdk.Context, caller sdk.AccAddress, filmID uint64, payTo sdk.AccAddress, denom string) (uint64, error) {
	var tokenID uint64
	err := k.atomic(ctx, "mint_revenue_nft", func(ctx sdk.Context) error {
		var err error
		tokenID, err = k.mint(ctx, caller, filmID, payTo, denom)
		return err
	})
	if err != nil {
		return 0, err
	}
	return tokenID, nil
}

// MintToBatch issues one revenue nft per film and payee. Either all tokens are issued or none.
func (k Keeper) MintToBatch(ctx sdk.Context, caller sdk.AccAddress, filmIDs []uint64, payees []sdk.AccAddress, denom string) ([]uint64, error) {
	tokenIDs := make([]uint64, len(filmIDs))
	err := k.atomic(ctx, "mint_revenue_nft_batch", func(ctx sdk.Context) error {
		if len(filmIDs) == 0 {
			return types.ErrEmptyBatch
		}
		if len(filmIDs) != len(payees) {
			return types.ErrLengthMismatch.Wrap("film ids and payees")
		}
		for i := range filmIDs {
			id, err := k.mint(ctx, caller, filmIDs[i], payees[i], denom)
			if err != nil {
				return sdkerrors.Wrapf(err, "position %d", i)
			}
			tokenIDs[i] = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tokenIDs, nil
}

// mint checks the budget of the film, issues the token and then moves the payment:
// the price net of fee to the studio and the fee to the dao treasury.
func (k Keeper) mint(ctx sdk.Context, caller sdk.AccAddress, filmID uint64, payTo sdk.AccAddress, denom string) (uint64, error) {
	if err := sdk.VerifyAddressFormat(payTo); err != nil {
		return 0, types.ErrInvalidAddress.Wrap("pay to")
	}
	m, err := k.GetMintInfo(ctx, filmID)
	if err != nil {
		return 0, err
	}
	asset, err := k.requireDepositAsset(ctx, denom)
	if err != nil {
		return 0, err
	}
	f, err := k.GetFilm(ctx, filmID)
	if err != nil {
		return 0, err
	}
	if f.Status != types.FilmStatusApprovedFunding {
		return 0, types.ErrInvalidFilmStatus.Wrapf("film %d is %s", f.ID, f.Status)
	}
	if m.Minted >= m.MaxMintAmount {
		return 0, types.ErrMintAmountExceeded.Wrapf("max %d", m.MaxMintAmount)
	}
	payment := m.Payment()
	if minted := f.MintedValue.Add(payment); minted.GT(f.Terms.RaiseAmount) {
		return 0, types.ErrRaiseCapExceeded.Wrapf("minted %s, raise amount %s", minted, f.Terms.RaiseAmount)
	}
	c, err := k.GetFilmCollection(ctx, f.ID, revenueCollectionTier)
	if err != nil {
		return 0, err
	}

	tokenID := k.mintToken(ctx, c, payTo)
	ctx.KVStore(k.storeKey).Set(types.GetUserTokenKey(f.ID, payTo, tokenID), []byte{1})
	m.Minted++
	k.setMintInfo(ctx, m)
	f.MintedValue = f.MintedValue.Add(payment)
	k.setFilm(ctx, f)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRevenueNftMinted,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyFilmID, strconv.FormatUint(f.ID, 10)),
		sdk.NewAttribute(types.AttributeKeyTier, strconv.FormatUint(m.Tier, 10)),
		sdk.NewAttribute(types.AttributeKeyTokenID, strconv.FormatUint(tokenID, 10)),
		sdk.NewAttribute(types.AttributeKeyOwner, payTo.String()),
	))

	price := sdk.NewCoin(denom, asset.Denormalize(m.MintPrice))
	net := sdk.NewCoin(denom, asset.Denormalize(payment))
	if err := k.collect(ctx, caller, price); err != nil {
		return 0, err
	}
	if err := k.payout(ctx, f.Studio, sdk.NewCoins(net)); err != nil {
		return 0, err
	}
	if fee := price.Sub(net); fee.IsPositive() {
		return tokenID, k.payout(ctx, k.treasury(ctx), sdk.NewCoins(fee))
	}
	return tokenID, nil
}

// treasury receives protocol fees: the governed reward fund address or the auditor
func (k Keeper) treasury(ctx sdk.Context) sdk.AccAddress {
	if addr := k.GetRewardPool(ctx).RewardFundAddress; !addr.Empty() {
		return addr
	}
	return k.GetAuditor(ctx)
}

// GetUserTokenIDList returns the revenue nft ids of the owner for a film
func (k Keeper) GetUserTokenIDList(ctx sdk.Context, filmID uint64, owner sdk.AccAddress) []uint64 {
	var r []uint64
	iterate(ctx, k.storeKey, types.GetUserTokenPrefix(filmID, owner), func(key, _ []byte) bool {
		r = append(r, sdk.BigEndianToUint64(key))
		return false
	})
	return r
}
