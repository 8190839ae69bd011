package logreflector

import (
	"context"

	"github.com/google/uuid"
)

type contextKey int

const (
	trackingIDKey contextKey = iota
	requestIDKey
)

// WithTrackingID returns a copy of ctx carrying the tracking id.
func WithTrackingID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, trackingIDKey, id)
}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// TrackingIDFromContext returns the tracking id stored in ctx, or "".
func TrackingIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(trackingIDKey).(string)
	return id
}

// RequestIDFromContext returns the request id stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// NewTrackingContext seeds ctx with fresh random ids for whichever of the
// tracking and request ids is missing. Existing ids are kept.
func NewTrackingContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if TrackingIDFromContext(ctx) == "" {
		ctx = WithTrackingID(ctx, uuid.NewString())
	}
	if RequestIDFromContext(ctx) == "" {
		ctx = WithRequestID(ctx, uuid.NewString())
	}
	return ctx
}
