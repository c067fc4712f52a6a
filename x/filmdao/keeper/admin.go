package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// SetBaseURI stores the metadata locations of the film collections
func (k Keeper) SetBaseURI(ctx sdk.Context, caller sdk.AccAddress, base, collection string) error {
	return k.atomic(ctx, "set_base_uri", func(ctx sdk.Context) error {
		if err := k.requireAuditor(ctx, caller); err != nil {
			return err
		}
		uri := types.BaseURI{Base: base, Collection: collection}
		k.save(ctx, types.BaseURIKey, &uri)
		emitAdminUpdate(ctx, "set_base_uri", base)
		return nil
	})
}

// GetBaseURI returns the metadata locations of the film collections
func (k Keeper) GetBaseURI(ctx sdk.Context) types.BaseURI {
	var uri types.BaseURI
	k.load(ctx, types.BaseURIKey, &uri)
	return uri
}

// InitializePool opens staking and seeds the reward pool from the auditor. It can only
// be called once.
func (k Keeper) InitializePool(ctx sdk.Context, caller sdk.AccAddress, rewardAmount sdk.Int) error {
	return k.atomic(ctx, "initialize_pool", func(ctx sdk.Context) error {
		if err := k.requireAuditor(ctx, caller); err != nil {
			return err
		}
		pool := k.GetRewardPool(ctx)
		if pool.Initialized {
			return types.ErrPoolInitialized
		}
		pool.Initialized = true
		k.setRewardPool(ctx, pool)
		emitAdminUpdate(ctx, "initialize_pool", rewardAmount.String())
		if rewardAmount.IsNil() || rewardAmount.IsZero() {
			return nil
		}
		return k.addReward(ctx, caller, rewardAmount)
	})
}

// AddDepositAsset allows an asset for film deposits and revenue nft payments
func (k Keeper) AddDepositAsset(ctx sdk.Context, caller sdk.AccAddress, denom string, decimals uint32) error {
	return k.atomic(ctx, "add_deposit_asset", func(ctx sdk.Context) error {
		if err := k.requireAuditor(ctx, caller); err != nil {
			return err
		}
		a := types.DepositAsset{Denom: denom, Decimals: decimals}
		if err := a.ValidateBasic(); err != nil {
			return err
		}
		if _, found := k.GetDepositAsset(ctx, denom); found {
			return types.ErrAssetExists.Wrap(denom)
		}
		k.setDepositAsset(ctx, a)
		emitAdminUpdate(ctx, "add_deposit_asset", denom+":"+strconv.FormatUint(uint64(decimals), 10))
		return nil
	})
}

func emitAdminUpdate(ctx sdk.Context, action, value string) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAdminUpdate,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyAction, action),
		sdk.NewAttribute(types.AttributeKeyValue, value),
	))
}
