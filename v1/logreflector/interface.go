package logreflector

import "context"

// Hooks receives the lifecycle events of an intercepted call.
//
// For a call that returns normally the order is OnEntry, OnCall, OnExit.
// For a call that fails the order is OnEntry, OnException, OnExit.
// OnExit fires on every path.
//
//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=logreflector
type Hooks interface {
	// OnEntry fires before the wrapped function runs.
	OnEntry(ctx context.Context, md *CallMetadata, params []Parameter)

	// OnCall fires after the wrapped function returned without error.
	OnCall(ctx context.Context, md *CallMetadata, result Result)

	// OnException fires when the wrapped function returned an error or panicked.
	OnException(ctx context.Context, md *CallMetadata, err error)

	// OnExit fires last, whatever the outcome.
	OnExit(ctx context.Context, md *CallMetadata)
}

// Logger is the hook receiver the Interceptor talks to. Besides the hooks it
// is the source of the correlation identifiers stamped on every CallMetadata.
type Logger interface {
	Hooks

	// TrackingID returns the identifier of the logical operation ctx belongs to.
	TrackingID(ctx context.Context) string

	// RequestID returns the identifier of the current request.
	RequestID(ctx context.Context) string
}

// Serializer renders parameter and result values for log output.
type Serializer interface {
	Serialize(v any) (string, error)
}

// OptionsFactory produces a Config at container resolution time. It backs the
// FromExisting and FromClass variants of AsyncOptions.
type OptionsFactory interface {
	CreateOptions(ctx context.Context) (Config, error)
}
