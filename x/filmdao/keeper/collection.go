package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// GetCollection returns the nft collection by id
func (k Keeper) GetCollection(ctx sdk.Context, id uint64) (types.Collection, error) {
	var c types.Collection
	if !k.load(ctx, types.GetCollectionKey(id), &c) {
		return c, types.ErrNotDeployed.Wrapf("collection %d", id)
	}
	return c, nil
}

func (k Keeper) setCollection(ctx sdk.Context, c types.Collection) {
	k.save(ctx, types.GetCollectionKey(c.ID), &c)
	ctx.KVStore(k.storeKey).Set(types.GetFilmCollectionKey(c.FilmID, c.Tier), sdk.Uint64ToBigEndian(c.ID))
}

// GetFilmCollection returns the collection bound to a film tier. Tier 0 is the revenue collection.
func (k Keeper) GetFilmCollection(ctx sdk.Context, filmID, tier uint64) (types.Collection, error) {
	bz := ctx.KVStore(k.storeKey).Get(types.GetFilmCollectionKey(filmID, tier))
	if bz == nil {
		return types.Collection{}, types.ErrNotDeployed.Wrapf("film %d tier %d", filmID, tier)
	}
	return k.GetCollection(ctx, sdk.BigEndianToUint64(bz))
}

// IterateCollections calls cb for all collections ordered by id until cb returns true
func (k Keeper) IterateCollections(ctx sdk.Context, cb func(types.Collection) bool) {
	iterate(ctx, k.storeKey, types.CollectionPrefix, func(_, value []byte) bool {
		var c types.Collection
		k.cdc.MustUnmarshal(value, &c)
		return cb(c)
	})
}

// deployCollection binds a new collection to a film tier
func (k Keeper) deployCollection(ctx sdk.Context, creator sdk.AccAddress, filmID, tier uint64, kind types.CollectionKind, name, symbol string) (types.Collection, error) {
	if err := types.ValidateCollectionName(name, symbol); err != nil {
		return types.Collection{}, err
	}
	if _, err := k.GetFilmCollection(ctx, filmID, tier); err == nil {
		return types.Collection{}, types.ErrAlreadyDeployed.Wrapf("film %d tier %d", filmID, tier)
	}
	c := types.Collection{
		ID:      k.autoIncrementID(ctx, types.SequenceCollectionID),
		FilmID:  filmID,
		Tier:    tier,
		Kind:    kind,
		Name:    name,
		Symbol:  symbol,
		Creator: creator,
	}
	k.setCollection(ctx, c)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCollectionDeployed,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyCollection, strconv.FormatUint(c.ID, 10)),
		sdk.NewAttribute(types.AttributeKeyFilmID, strconv.FormatUint(filmID, 10)),
		sdk.NewAttribute(types.AttributeKeyTier, strconv.FormatUint(tier, 10)),
		sdk.NewAttribute(types.AttributeKeyKind, kind.String()),
	))
	return c, nil
}

// mintToken issues the next token id of the collection to the owner
func (k Keeper) mintToken(ctx sdk.Context, c types.Collection, owner sdk.AccAddress) uint64 {
	tokenID := k.autoIncrementID(ctx, types.GetTokenSequenceName(c.ID))
	k.setTokenOwner(ctx, types.TokenOwner{CollectionID: c.ID, TokenID: tokenID, Owner: owner})
	c.Supply++
	k.setCollection(ctx, c)
	return tokenID
}

func (k Keeper) setTokenOwner(ctx sdk.Context, t types.TokenOwner) {
	ctx.KVStore(k.storeKey).Set(types.GetTokenOwnerKey(t.CollectionID, t.TokenID), t.Owner.Bytes())
}

// OwnerOf returns the owner of a token
func (k Keeper) OwnerOf(ctx sdk.Context, collectionID, tokenID uint64) (sdk.AccAddress, error) {
	bz := ctx.KVStore(k.storeKey).Get(types.GetTokenOwnerKey(collectionID, tokenID))
	if bz == nil {
		return nil, types.ErrTokenNotFound.Wrapf("collection %d token %d", collectionID, tokenID)
	}
	return bz, nil
}

// IterateTokens calls cb for all tokens of a collection until cb returns true
func (k Keeper) IterateTokens(ctx sdk.Context, collectionID uint64, cb func(types.TokenOwner) bool) {
	iterate(ctx, k.storeKey, types.GetTokenOwnerPrefix(collectionID), func(key, value []byte) bool {
		return cb(types.TokenOwner{CollectionID: collectionID, TokenID: sdk.BigEndianToUint64(key), Owner: value})
	})
}
