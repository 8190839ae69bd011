package logreflector

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/logreflector/v1/logger"
)

const redactedValue = "[REDACTED]"

// MethodLogger is the default Logger. It writes one structured zap entry per
// lifecycle event through a logger.LoggerClient.
//
// Correlation ids are read from the context (WithTrackingID, WithRequestID).
// With tracing enabled, a missing tracking id falls back to the trace id of
// the active span and a missing request id to its span id.
type MethodLogger struct {
	log        *logger.LoggerClient
	serializer Serializer
	redact     map[string]struct{}
	tracing    bool
}

var _ Logger = (*MethodLogger)(nil)

// NewMethodLogger builds the default logger writing to log.
func NewMethodLogger(log *logger.LoggerClient, serializer Serializer, cfg Config) *MethodLogger {
	if serializer == nil {
		serializer = NewJSONSerializer(cfg)
	}
	redact := make(map[string]struct{}, len(cfg.Redact))
	for _, name := range cfg.Redact {
		redact[name] = struct{}{}
	}
	return &MethodLogger{
		log:        log,
		serializer: serializer,
		redact:     redact,
		tracing:    cfg.EnableTracing,
	}
}

// Client returns the underlying zap client.
func (l *MethodLogger) Client() *logger.LoggerClient {
	return l.log
}

// TrackingID implements Logger.
func (l *MethodLogger) TrackingID(ctx context.Context) string {
	if id := TrackingIDFromContext(ctx); id != "" {
		return id
	}
	if l.tracing && ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}
	return ""
}

// RequestID implements Logger.
func (l *MethodLogger) RequestID(ctx context.Context) string {
	if id := RequestIDFromContext(ctx); id != "" {
		return id
	}
	if l.tracing && ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.HasSpanID() {
			return sc.SpanID().String()
		}
	}
	return ""
}

// OnEntry implements Hooks.
func (l *MethodLogger) OnEntry(ctx context.Context, md *CallMetadata, params []Parameter) {
	rendered := make(map[string]interface{}, len(params))
	for _, p := range params {
		if _, ok := l.redact[p.Name]; ok {
			rendered[p.Name] = redactedValue
			continue
		}
		rendered[p.Name] = l.render(p.Value)
	}
	l.log.InfoWithContext(ctx, "method entry", nil, l.fields(md), map[string]interface{}{
		"params": rendered,
	})
}

// OnCall implements Hooks.
func (l *MethodLogger) OnCall(ctx context.Context, md *CallMetadata, result Result) {
	l.log.InfoWithContext(ctx, "method call", nil, l.fields(md), map[string]interface{}{
		"result": l.render(result.Value),
	})
}

// OnException implements Hooks.
func (l *MethodLogger) OnException(ctx context.Context, md *CallMetadata, err error) {
	l.log.ErrorWithContext(ctx, "method exception", err, l.fields(md))
}

// OnExit implements Hooks.
func (l *MethodLogger) OnExit(ctx context.Context, md *CallMetadata) {
	l.log.InfoWithContext(ctx, "method exit", nil, l.fields(md), map[string]interface{}{
		"duration": time.Since(md.StartedAt),
	})
}

func (l *MethodLogger) fields(md *CallMetadata) map[string]interface{} {
	return map[string]interface{}{
		"target":      md.Method.Target,
		"method":      md.Method.Method,
		"signature":   md.Method.String(),
		"tracking_id": md.TrackingID,
		"request_id":  md.RequestID,
		"call_id":     md.CallID,
	}
}

// render serializes v; values the serializer rejects (channels, funcs) are
// shown by type.
func (l *MethodLogger) render(v any) string {
	out, err := l.serializer.Serialize(v)
	if err != nil {
		return fmt.Sprintf("<unserializable %T>", v)
	}
	return out
}

// Sync flushes the underlying zap client.
func (l *MethodLogger) Sync() error {
	return l.log.Sync()
}
