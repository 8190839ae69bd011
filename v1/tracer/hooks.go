package tracer

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/logreflector/v1/logreflector"
)

// SpanHooks opens one span per intercepted call. The span starts on entry as
// a child of the span in the caller's context, records the error on
// exception and ends on exit.
//
// Hooks cannot replace the context handed to the wrapped function, so spans
// started inside the call are siblings of the call span, not children.
type SpanHooks struct {
	tracer *Tracer
	spans  sync.Map // *logreflector.CallMetadata -> traceSpan.Span
}

var _ logreflector.Hooks = (*SpanHooks)(nil)

// NewSpanHooks returns hooks creating spans through t.
func NewSpanHooks(t *Tracer) *SpanHooks {
	return &SpanHooks{tracer: t}
}

// OnEntry implements logreflector.Hooks.
func (h *SpanHooks) OnEntry(ctx context.Context, md *logreflector.CallMetadata, params []logreflector.Parameter) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := h.tracer.StartSpan(ctx, md.Method.Key(),
		traceSpan.WithTimestamp(md.StartedAt),
		traceSpan.WithAttributes(
			attribute.String("code.namespace", md.Method.Target),
			attribute.String("code.function", md.Method.Method),
			attribute.Int("logreflector.params", len(params)),
		),
	)
	h.tracer.SetAttributes(span, map[string]interface{}{
		"logreflector.tracking_id": md.TrackingID,
		"logreflector.request_id":  md.RequestID,
		"logreflector.call_id":     md.CallID,
	})
	h.spans.Store(md, span)
}

// OnCall implements logreflector.Hooks.
func (h *SpanHooks) OnCall(_ context.Context, md *logreflector.CallMetadata, _ logreflector.Result) {
	if span, ok := h.span(md); ok {
		span.SetStatus(codes.Ok, "")
	}
}

// OnException implements logreflector.Hooks.
func (h *SpanHooks) OnException(_ context.Context, md *logreflector.CallMetadata, err error) {
	if span, ok := h.span(md); ok {
		h.tracer.RecordErrorOnSpan(span, err)
	}
}

// OnExit implements logreflector.Hooks.
func (h *SpanHooks) OnExit(_ context.Context, md *logreflector.CallMetadata) {
	if v, ok := h.spans.LoadAndDelete(md); ok {
		v.(traceSpan.Span).End()
	}
}

func (h *SpanHooks) span(md *logreflector.CallMetadata) (traceSpan.Span, bool) {
	v, ok := h.spans.Load(md)
	if !ok {
		return nil, false
	}
	return v.(traceSpan.Span), true
}
