package keeper

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cinedao/cinedao/x/filmdao/tracing"
	"github.com/cinedao/cinedao/x/filmdao/types"
)

// Keeper holds the state of one film dao. Exported operations that modify state are
// serialized and atomic: they either commit all their writes and events or none.
type Keeper struct {
	cdc        *codec.LegacyAmino
	storeKey   sdk.StoreKey
	paramStore paramtypes.Subspace
	bankKeeper types.BankKeeper
	config     types.Config
	mu         *sync.Mutex
}

func NewKeeper(
	key sdk.StoreKey,
	paramSpace paramtypes.Subspace,
	bankKeeper types.BankKeeper,
	config types.Config,
) Keeper {
	// set KeyTable if it has not already been set
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}
	return Keeper{
		cdc:        types.ModuleCdc,
		storeKey:   key,
		paramStore: paramSpace,
		bankKeeper: bankKeeper,
		config:     config,
		mu:         &sync.Mutex{},
	}
}

func ModuleLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Config returns the node local module config
func (k Keeper) Config() types.Config {
	return k.config
}

// atomic runs fn on a cached context with its own event manager. Writes and events
// reach the parent context only when fn returns no error.
func (k Keeper) atomic(parent sdk.Context, operation string, fn func(ctx sdk.Context) error) error {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), operation)
	k.mu.Lock()
	defer k.mu.Unlock()

	cacheCtx, commit := parent.CacheContext()
	em := sdk.NewEventManager()
	if err := tracing.TraceOperation(cacheCtx.WithEventManager(em), operation, fn); err != nil {
		telemetry.IncrCounter(1, types.ModuleName, operation, "failed")
		return err
	}
	commit()
	parent.EventManager().EmitEvents(em.Events())
	return nil
}

// autoIncrementID returns the next value of the named counter, starting at 1
func (k Keeper) autoIncrementID(ctx sdk.Context, name []byte) uint64 {
	store := ctx.KVStore(k.storeKey)
	key := types.GetSequenceKey(name)
	id := k.peekAutoIncrementID(ctx, name)
	store.Set(key, sdk.Uint64ToBigEndian(id+1))
	return id
}

// peekAutoIncrementID reads the next value of the named counter without incrementing it
func (k Keeper) peekAutoIncrementID(ctx sdk.Context, name []byte) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetSequenceKey(name))
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setSequence(ctx sdk.Context, seq types.Sequence) {
	ctx.KVStore(k.storeKey).Set(types.GetSequenceKey(seq.Key), sdk.Uint64ToBigEndian(seq.Value))
}

func (k Keeper) iterateSequences(ctx sdk.Context, cb func(types.Sequence) bool) {
	iterate(ctx, k.storeKey, types.SequencePrefix, func(key, value []byte) bool {
		return cb(types.Sequence{Key: key, Value: binary.BigEndian.Uint64(value)})
	})
}

func (k Keeper) load(ctx sdk.Context, key []byte, ptr interface{}) bool {
	bz := ctx.KVStore(k.storeKey).Get(key)
	if bz == nil {
		return false
	}
	k.cdc.MustUnmarshal(bz, ptr)
	return true
}

func (k Keeper) save(ctx sdk.Context, key []byte, obj interface{}) {
	ctx.KVStore(k.storeKey).Set(key, k.cdc.MustMarshal(obj))
}

// iterate calls cb for each entry under the prefix with the prefix stripped from the key
func iterate(ctx sdk.Context, storeKey sdk.StoreKey, keyPrefix []byte, cb func(key, value []byte) bool) {
	iter := prefix.NewStore(ctx.KVStore(storeKey), keyPrefix).Iterator(nil, nil)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		if cb(iter.Key(), iter.Value()) {
			return
		}
	}
}

// GetAuditor returns the current administrator address
func (k Keeper) GetAuditor(ctx sdk.Context) sdk.AccAddress {
	return ctx.KVStore(k.storeKey).Get(types.AuditorKey)
}

func (k Keeper) setAuditor(ctx sdk.Context, auditor sdk.AccAddress) {
	ctx.KVStore(k.storeKey).Set(types.AuditorKey, auditor.Bytes())
}

func (k Keeper) requireAuditor(ctx sdk.Context, caller sdk.AccAddress) error {
	if !k.GetAuditor(ctx).Equals(caller) || caller.Empty() {
		return types.ErrNotAuditor
	}
	return nil
}

// collect moves funds from an account into the module account. Callers update their
// ledgers before collecting.
func (k Keeper) collect(ctx sdk.Context, from sdk.AccAddress, amount sdk.Coin) error {
	if balance := k.bankKeeper.GetBalance(ctx, from, amount.Denom); balance.Amount.LT(amount.Amount) {
		return types.ErrInsufficientFunds.Wrapf("balance %s, required %s", balance, amount)
	}
	return k.bankKeeper.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, sdk.NewCoins(amount))
}

// payout sends funds held by the module to an account
func (k Keeper) payout(ctx sdk.Context, to sdk.AccAddress, amount sdk.Coins) error {
	if amount.IsZero() {
		return nil
	}
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, amount)
}
