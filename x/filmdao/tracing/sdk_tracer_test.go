package tracing

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/opentracing/opentracing-go"
	opentracinglog "github.com/opentracing/opentracing-go/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

func TestTraceOperation(t *testing.T) {
	var (
		myKey = []byte(`foo`)
		myVal = []byte(`bar`)
	)
	specs := map[string]struct {
		enabled     bool
		opErr       error
		expCaptured []string
		expEvents   int
	}{
		"store io and events logged": {
			enabled:     true,
			expCaptured: []string{logRawStoreIO, logRawEvents},
			expEvents:   1,
		},
		"error logged": {
			enabled:     true,
			opErr:       errors.New("testing"),
			expCaptured: []string{"error"},
			expEvents:   1,
		},
		"disabled": {
			expEvents: 1,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			tracerEnabled = spec.enabled
			t.Cleanup(func() { tracerEnabled = false })
			tracer := &MockCaptureLogsTracer{}
			opentracing.SetGlobalTracer(tracer)
			t.Cleanup(func() { opentracing.SetGlobalTracer(opentracing.NoopTracer{}) })

			ctx, storeKey := createMinTestInput(t)
			em := sdk.NewEventManager()

			// when
			gotErr := TraceOperation(ctx.WithEventManager(em), "stake", func(ctx sdk.Context) error {
				ctx.KVStore(storeKey).Set(myKey, myVal)
				ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeStaked, sdk.NewAttribute(types.AttributeKeyFilmID, "1")))
				return spec.opErr
			})

			// then
			require.Equal(t, spec.opErr, gotErr)
			assert.Len(t, em.Events(), spec.expEvents)
			assert.Equal(t, myVal, ctx.KVStore(storeKey).Get(myKey))
			var gotKeys []string
			for _, f := range tracer.captured {
				gotKeys = append(gotKeys, f.Key())
			}
			assert.Equal(t, spec.expCaptured, gotKeys)
			if len(spec.expCaptured) == 0 || spec.opErr != nil {
				return
			}
			encoding := base64.StdEncoding
			exp := fmt.Sprintf(`{"operation":"write","key":"%s","value":"%s","metadata":null}`, encoding.EncodeToString(myKey), encoding.EncodeToString(myVal))
			line := tracer.captured[0].Value().(string)
			assert.Equal(t, exp, line[:len(line)-1])
			assert.Equal(t, "1", tracer.tags[tagFilmID])
			assert.Equal(t, "stake", tracer.tags[tagOperation])
		})
	}
}

func TestDecoratorsPassThroughWhenDisabled(t *testing.T) {
	tracerEnabled = false
	var called bool
	ante := func(ctx sdk.Context, tx sdk.Tx, simulate bool) (sdk.Context, error) {
		called = true
		return ctx, nil
	}
	ctx, _ := createMinTestInput(t)
	_, err := NewTraceAnteHandler(ante)(ctx, nil, false)
	require.NoError(t, err)
	assert.True(t, called)
}

func createMinTestInput(t *testing.T) (sdk.Context, *sdk.KVStoreKey) {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(storeKey, sdk.StoreTypeIAVL, db)
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())
	return ctx, storeKey
}

var _ opentracing.Tracer = &MockCaptureLogsTracer{}

type MockCaptureLogsTracer struct {
	opentracing.NoopTracer

	captured []opentracinglog.Field
	tags     map[string]interface{}
}

func (m *MockCaptureLogsTracer) StartSpan(operationName string, opts ...opentracing.StartSpanOption) opentracing.Span {
	m.tags = make(map[string]interface{})
	return &Spanner{tracer: m}
}

type Spanner struct {
	opentracing.Span
	tracer *MockCaptureLogsTracer
}

func (s *Spanner) LogFields(fields ...opentracinglog.Field) {
	s.tracer.captured = append(s.tracer.captured, fields...)
}

func (s *Spanner) SetTag(key string, value interface{}) opentracing.Span {
	s.tracer.tags[key] = value
	return s
}

func (s *Spanner) Tracer() opentracing.Tracer {
	return s.tracer
}

func (s *Spanner) Context() opentracing.SpanContext {
	return opentracing.NoopTracer{}.StartSpan("").Context()
}

func (s *Spanner) Finish() {}
