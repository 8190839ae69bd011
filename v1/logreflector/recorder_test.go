package logreflector

import (
	"context"
	"sync"
)

const (
	eventEntry     = "ENTRY"
	eventCall      = "CALL"
	eventException = "EXCEPTION"
	eventExit      = "EXIT"
)

type recordedEvent struct {
	Kind   string
	MD     *CallMetadata
	Params []Parameter
	Result Result
	Err    error
}

// recordingLogger captures hook invocations for assertions. Ids come from the
// context when present, otherwise from the settable fields.
type recordingLogger struct {
	mu         sync.Mutex
	trackingID string
	requestID  string
	events     []recordedEvent
}

func (r *recordingLogger) setIDs(tracking, request string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trackingID = tracking
	r.requestID = request
}

func (r *recordingLogger) TrackingID(ctx context.Context) string {
	if id := TrackingIDFromContext(ctx); id != "" {
		return id
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trackingID
}

func (r *recordingLogger) RequestID(ctx context.Context) string {
	if id := RequestIDFromContext(ctx); id != "" {
		return id
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requestID
}

func (r *recordingLogger) record(e recordedEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingLogger) OnEntry(_ context.Context, md *CallMetadata, params []Parameter) {
	r.record(recordedEvent{Kind: eventEntry, MD: md, Params: params})
}

func (r *recordingLogger) OnCall(_ context.Context, md *CallMetadata, result Result) {
	r.record(recordedEvent{Kind: eventCall, MD: md, Result: result})
}

func (r *recordingLogger) OnException(_ context.Context, md *CallMetadata, err error) {
	r.record(recordedEvent{Kind: eventException, MD: md, Err: err})
}

func (r *recordingLogger) OnExit(_ context.Context, md *CallMetadata) {
	r.record(recordedEvent{Kind: eventExit, MD: md})
}

func (r *recordingLogger) Events() []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]recordedEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingLogger) Kinds() []string {
	events := r.Events()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func (r *recordingLogger) find(kind string) (recordedEvent, bool) {
	for _, e := range r.Events() {
		if e.Kind == kind {
			return e, true
		}
	}
	return recordedEvent{}, false
}
