package tracing

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/store/tracekv"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/log"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

const (
	tagModule      = "module"
	tagOperation   = "operation"
	tagSDKMsgType  = "sdk_message_type"
	tagBlockHeight = "height"
	tagFilmID      = "film_id"
	tagProposalID  = "proposal_id"

	logRawStoreIO = "raw_store_io"
	logRawEvents  = "raw_events"
	logValsetDiff = "valset_diff"
)

// TraceOperation runs a film dao operation in its own span. The span records the raw
// store io and the events of the operation. Check tx and a disabled tracer run fn as is.
func TraceOperation(ctx sdk.Context, operation string, fn func(ctx sdk.Context) error) error {
	if !tracerEnabled || ctx.IsCheckTx() {
		return fn(ctx)
	}
	span, goCtx := opentracing.StartSpanFromContext(ctx.Context(), types.ModuleName+"."+operation)
	defer span.Finish()
	span.SetTag(tagModule, types.ModuleName).
		SetTag(tagOperation, operation).
		SetTag(tagBlockHeight, ctx.BlockHeight())

	ms := NewTracingMultiStore(ctx.MultiStore())
	em := sdk.NewEventManager()
	err := fn(ctx.WithContext(goCtx).WithMultiStore(ms).WithEventManager(em))
	if err != nil {
		span.LogFields(log.Error(err))
	} else {
		addTagsFromEvents(span, em.Events())
		span.LogFields(log.String(logRawStoreIO, ms.buf.String()))
		span.LogFields(log.String(logRawEvents, serializeEvents(em.Events())))
	}
	ctx.EventManager().EmitEvents(em.Events())
	return err
}

// BeginBlockTracer is a decorator to the begin block callback that adds tracing functionality
func BeginBlockTracer(other sdk.BeginBlocker) sdk.BeginBlocker {
	if !tracerEnabled {
		return other
	}
	return func(ctx sdk.Context, req abci.RequestBeginBlock) abci.ResponseBeginBlock {
		span, goCtx := opentracing.StartSpanFromContext(ctx.Context(), "begin_block")
		span.SetTag(tagBlockHeight, req.Header.Height)
		defer span.Finish()
		ms := NewTracingMultiStore(ctx.MultiStore())
		em := sdk.NewEventManager()
		result := other(ctx.WithContext(goCtx).WithMultiStore(ms).WithEventManager(em), req)
		span.LogFields(log.String(logRawStoreIO, ms.buf.String()))
		span.LogFields(log.String(logRawEvents, serializeEvents(em.Events())))
		ctx.EventManager().EmitEvents(em.Events())
		return result
	}
}

// EndBlockTracer is a decorator to the end block callback that adds tracing functionality
func EndBlockTracer(other sdk.EndBlocker) sdk.EndBlocker {
	if !tracerEnabled {
		return other
	}
	return func(ctx sdk.Context, req abci.RequestEndBlock) abci.ResponseEndBlock {
		span, goCtx := opentracing.StartSpanFromContext(ctx.Context(), "end_block")
		span.SetTag(tagBlockHeight, req.Height)
		defer span.Finish()
		ms := NewTracingMultiStore(ctx.MultiStore())
		em := sdk.NewEventManager()
		result := other(ctx.WithContext(goCtx).WithMultiStore(ms).WithEventManager(em), req)
		span.LogFields(log.Object(logValsetDiff, result.ValidatorUpdates))
		span.LogFields(log.String(logRawStoreIO, ms.buf.String()))
		span.LogFields(log.String(logRawEvents, serializeEvents(em.Events())))
		ctx.EventManager().EmitEvents(em.Events())
		return result
	}
}

// NewTraceAnteHandler decorates the ante handler with tracing functionality
func NewTraceAnteHandler(other sdk.AnteHandler) sdk.AnteHandler {
	if !tracerEnabled {
		return other
	}
	return func(ctx sdk.Context, tx sdk.Tx, simulate bool) (sdk.Context, error) {
		if simulate || ctx.IsCheckTx() {
			return other(ctx, tx, simulate)
		}
		span, goCtx := opentracing.StartSpanFromContext(ctx.Context(), "ante_handler")
		defer span.Finish()

		for _, msg := range tx.GetMsgs() {
			span.SetTag(tagSDKMsgType, fmt.Sprintf("%T", msg))
		}
		ms := NewTracingMultiStore(ctx.MultiStore())
		em := sdk.NewEventManager()
		newCtx, err := other(ctx.WithContext(goCtx).WithMultiStore(ms).WithEventManager(em), tx, simulate)
		if err != nil {
			span.LogFields(log.Error(err))
		} else {
			span.LogFields(log.String(logRawStoreIO, ms.buf.String()))
			span.LogFields(log.String(logRawEvents, serializeEvents(em.Events())))
		}
		ctx.EventManager().EmitEvents(em.Events())
		return newCtx, err
	}
}

// tracingMultiStore Multistore that traces all operations
type tracingMultiStore struct {
	sdk.MultiStore
	buf bytes.Buffer
}

// NewTracingMultiStore constructor
func NewTracingMultiStore(store sdk.MultiStore) *tracingMultiStore {
	return &tracingMultiStore{MultiStore: store}
}

func (t *tracingMultiStore) GetStore(k sdk.StoreKey) sdk.Store {
	return tracekv.NewStore(t.MultiStore.GetKVStore(k), &t.buf, nil)
}

func (t *tracingMultiStore) GetKVStore(k sdk.StoreKey) sdk.KVStore {
	return tracekv.NewStore(t.MultiStore.GetKVStore(k), &t.buf, nil)
}

func addTagsFromEvents(span opentracing.Span, events sdk.Events) {
	for _, e := range events {
		for _, a := range e.Attributes {
			switch string(a.Key) {
			case types.AttributeKeyFilmID:
				span.SetTag(tagFilmID, string(a.Value))
			case types.AttributeKeyProposalID:
				span.SetTag(tagProposalID, string(a.Value))
			}
		}
	}
}

func serializeEvents(events sdk.Events) string {
	bz, _ := json.Marshal(events)
	return string(bz)
}
