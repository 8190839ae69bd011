package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/logreflector/v1/logger"
	"github.com/Aleph-Alpha/logreflector/v1/logreflector"
)

func newRecordingTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewWithProvider(tp, logger.NewWithZap(zap.NewNop(), false)), sr
}

func nopMethodLogger() *logreflector.MethodLogger {
	return logreflector.NewMethodLogger(logger.NewWithZap(zap.NewNop(), false), nil, logreflector.Config{})
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

var divSig = logreflector.Signature{Target: "Math", Method: "Div", Params: []string{"a", "b"}}

func div(_ context.Context, a, b int) (int, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

func TestSpanHooksSuccess(t *testing.T) {
	tr, sr := newRecordingTracer(t)
	ic, err := logreflector.NewInterceptor(nopMethodLogger(), logreflector.PropagateOnException, NewSpanHooks(tr))
	require.NoError(t, err)

	fn := logreflector.Method2(ic, divSig, div)
	ctx := logreflector.WithTrackingID(context.Background(), "track-1")

	got, err := fn(ctx, 6, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Math.Div", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)

	v, ok := attrValue(spans[0].Attributes(), "logreflector.tracking_id")
	require.True(t, ok)
	assert.Equal(t, "track-1", v.AsString())
	v, ok = attrValue(spans[0].Attributes(), "logreflector.params")
	require.True(t, ok)
	assert.Equal(t, int64(2), v.AsInt64())
}

func TestSpanHooksRecordsError(t *testing.T) {
	tr, sr := newRecordingTracer(t)
	ic, err := logreflector.NewInterceptor(nopMethodLogger(), logreflector.PropagateOnException, NewSpanHooks(tr))
	require.NoError(t, err)

	_, err = logreflector.Method2(ic, divSig, div)(context.Background(), 1, 0)
	require.EqualError(t, err, "division by zero")

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "division by zero", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestSpanHooksChildOfCallerSpan(t *testing.T) {
	tr, sr := newRecordingTracer(t)
	ic, err := logreflector.NewInterceptor(nopMethodLogger(), logreflector.ReinvokeOnException, NewSpanHooks(tr))
	require.NoError(t, err)

	ctx, parent := tr.StartSpan(context.Background(), "handler")
	_, err = logreflector.Method2(ic, divSig, div)(ctx, 4, 2)
	require.NoError(t, err)
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, parent.SpanContext().SpanID(), spans[0].Parent().SpanID())
	assert.Equal(t, parent.SpanContext().TraceID(), spans[0].SpanContext().TraceID())
}

func TestCarrierRoundTrip(t *testing.T) {
	tr, _ := newRecordingTracer(t)

	ctx, span := tr.StartSpan(context.Background(), "outgoing")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")

	remote := tr.SetCarrierOnContext(context.Background(), carrier)
	_, child := tr.StartSpan(remote, "incoming")
	defer child.End()
	assert.Equal(t, span.SpanContext().TraceID(), child.SpanContext().TraceID())
}

func TestHooksModuleJoinsHooksGroup(t *testing.T) {
	tr, sr := newRecordingTracer(t)

	var ic *logreflector.Interceptor
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(tr),
		HooksModule,
		logreflector.ForRoot(logreflector.Config{Logger: nopMethodLogger()}),
		fx.Populate(&ic),
	)
	app.RequireStart()
	defer app.RequireStop()

	_, err := logreflector.Method2(ic, divSig, div)(context.Background(), 9, 3)
	require.NoError(t, err)
	assert.Len(t, sr.Ended(), 1)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TRACER_SERVICE_NAME", "billing")
	t.Setenv("TRACER_ENABLE_EXPORT", "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{ServiceName: "billing", AppEnv: "development", EnableExport: true}, cfg)
}
