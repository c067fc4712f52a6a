package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// TierInfo returns the band of a film tier
func (k Keeper) TierInfo(ctx sdk.Context, filmID, tier uint64) (types.Tier, error) {
	var t types.Tier
	if !k.load(ctx, types.GetTierKey(filmID, tier), &t) {
		return t, types.ErrTierNotFound.Wrapf("film %d tier %d", filmID, tier)
	}
	return t, nil
}

// GetTiers returns all bands of a film ordered by tier
func (k Keeper) GetTiers(ctx sdk.Context, filmID uint64) []types.Tier {
	var r []types.Tier
	iterate(ctx, k.storeKey, types.GetTierPrefix(filmID), func(_, value []byte) bool {
		var t types.Tier
		k.cdc.MustUnmarshal(value, &t)
		r = append(r, t)
		return false
	})
	return r
}

func (k Keeper) setTier(ctx sdk.Context, t types.Tier) {
	k.save(ctx, types.GetTierKey(t.FilmID, t.Index), &t)
}

// requireStudioFunding returns the film when the caller is its studio and the film was
// approved for funding
func (k Keeper) requireStudioFunding(ctx sdk.Context, studio sdk.AccAddress, filmID uint64) (types.Film, error) {
	f, err := k.GetFilm(ctx, filmID)
	if err != nil {
		return f, err
	}
	if !f.Studio.Equals(studio) {
		return f, types.ErrNotStudio
	}
	if f.Status != types.FilmStatusApprovedFunding {
		return f, types.ErrInvalidFilmStatus.Wrapf("film %d is %s", f.ID, f.Status)
	}
	return f, nil
}

// SetTierInfo defines the deposit bands of a film. Amounts are normalized to 18 decimals.
// The bands can only be set once.
func (k Keeper) SetTierInfo(ctx sdk.Context, studio sdk.AccAddress, filmID uint64, minAmounts, maxAmounts []sdk.Int) error {
	return k.atomic(ctx, "set_tier_info", func(ctx sdk.Context) error {
		f, err := k.requireStudioFunding(ctx, studio, filmID)
		if err != nil {
			return err
		}
		if len(k.GetTiers(ctx, f.ID)) != 0 {
			return types.ErrTierInfoExists
		}
		tiers, err := types.NewTiers(f.ID, minAmounts, maxAmounts)
		if err != nil {
			return err
		}
		for _, t := range tiers {
			k.setTier(ctx, t)
		}
		return nil
	})
}

// DeployTierNFTContract binds a new collection to a film tier
func (k Keeper) DeployTierNFTContract(ctx sdk.Context, studio sdk.AccAddress, filmID, tier uint64, name, symbol string) (uint64, error) {
	var collectionID uint64
	err := k.atomic(ctx, "deploy_tier_nft", func(ctx sdk.Context) error {
		f, err := k.requireStudioFunding(ctx, studio, filmID)
		if err != nil {
			return err
		}
		t, err := k.TierInfo(ctx, f.ID, tier)
		if err != nil {
			return err
		}
		c, err := k.deployCollection(ctx, studio, f.ID, t.Index, types.CollectionKindTierNFT, name, symbol)
		if err != nil {
			return err
		}
		t.CollectionID = c.ID
		k.setTier(ctx, t)
		collectionID = c.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return collectionID, nil
}

// MintTierNft issues the caller one token of the tier their cumulative deposit falls in.
// It is available after the fund period to backers that did not withdraw their deposit.
func (k Keeper) MintTierNft(ctx sdk.Context, caller sdk.AccAddress, filmID uint64) (types.TokenOwner, error) {
	var token types.TokenOwner
	err := k.atomic(ctx, "mint_tier_nft", func(ctx sdk.Context) error {
		f, err := k.requireFundingClosed(ctx, filmID)
		if err != nil {
			return err
		}
		store := ctx.KVStore(k.storeKey)
		holderKey := types.GetTierHolderKey(f.ID, caller)
		if store.Has(holderKey) {
			return types.ErrTierNftMinted
		}
		tiers := k.GetTiers(ctx, f.ID)
		if len(tiers) == 0 {
			return types.ErrTierNotFound.Wrapf("film %d has no tiers", f.ID)
		}
		ud := k.GetUserDeposit(ctx, f.ID, caller)
		if ud.Refunded {
			return types.ErrFundingRefunded.Wrapf("film %d", f.ID)
		}
		deposited := ud.Total
		t, ok := types.FindTier(tiers, deposited)
		if !ok {
			return types.ErrNoTierForDeposit.Wrapf("deposit %s", deposited)
		}
		if t.CollectionID == 0 {
			return types.ErrNotDeployed.Wrapf("film %d tier %d", f.ID, t.Index)
		}
		c, err := k.GetCollection(ctx, t.CollectionID)
		if err != nil {
			return err
		}
		tokenID := k.mintToken(ctx, c, caller)
		t.IssuedTokenIDs = append(t.IssuedTokenIDs, tokenID)
		k.setTier(ctx, t)
		store.Set(holderKey, sdk.Uint64ToBigEndian(t.Index))
		token = types.TokenOwner{CollectionID: c.ID, TokenID: tokenID, Owner: caller}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeTierNftMinted,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyFilmID, strconv.FormatUint(f.ID, 10)),
			sdk.NewAttribute(types.AttributeKeyTier, strconv.FormatUint(t.Index, 10)),
			sdk.NewAttribute(types.AttributeKeyTokenID, strconv.FormatUint(tokenID, 10)),
			sdk.NewAttribute(types.AttributeKeyOwner, caller.String()),
		))
		return nil
	})
	if err != nil {
		return types.TokenOwner{}, err
	}
	return token, nil
}

// GetTotalSupply returns the number of tokens issued in a film tier
func (k Keeper) GetTotalSupply(ctx sdk.Context, filmID, tier uint64) (uint64, error) {
	t, err := k.TierInfo(ctx, filmID, tier)
	if err != nil {
		return 0, err
	}
	return uint64(len(t.IssuedTokenIDs)), nil
}

// GetTierTokenIDList returns the issued token ids of a film tier in mint order
func (k Keeper) GetTierTokenIDList(ctx sdk.Context, filmID, tier uint64) ([]uint64, error) {
	t, err := k.TierInfo(ctx, filmID, tier)
	if err != nil {
		return nil, err
	}
	return t.IssuedTokenIDs, nil
}

// GetNFTOwner returns the owner of a tier token
func (k Keeper) GetNFTOwner(ctx sdk.Context, filmID, tokenID, tier uint64) (sdk.AccAddress, error) {
	c, err := k.GetFilmCollection(ctx, filmID, tier)
	if err != nil {
		return nil, err
	}
	return k.OwnerOf(ctx, c.ID, tokenID)
}

// GetTierOfHolder returns the tier the holder was issued a token in
func (k Keeper) GetTierOfHolder(ctx sdk.Context, filmID uint64, holder sdk.AccAddress) (uint64, bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.GetTierHolderKey(filmID, holder))
	if bz == nil {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}
