package metrics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Aleph-Alpha/logreflector/v1/logreflector"
)

// CallHooks records every intercepted call in method_calls_total and
// method_call_duration_seconds once the call exits.
type CallHooks struct {
	collector MetricsCollector
	outcomes  sync.Map // *logreflector.CallMetadata -> string
}

var _ logreflector.Hooks = (*CallHooks)(nil)

// NewCallHooks returns hooks recording into collector.
func NewCallHooks(collector MetricsCollector) *CallHooks {
	return &CallHooks{collector: collector}
}

// OnEntry implements logreflector.Hooks.
func (h *CallHooks) OnEntry(context.Context, *logreflector.CallMetadata, []logreflector.Parameter) {}

// OnCall implements logreflector.Hooks.
func (h *CallHooks) OnCall(_ context.Context, md *logreflector.CallMetadata, _ logreflector.Result) {
	h.outcomes.Store(md, OutcomeSuccess)
}

// OnException implements logreflector.Hooks.
func (h *CallHooks) OnException(_ context.Context, md *logreflector.CallMetadata, err error) {
	var panicErr *logreflector.PanicError
	if errors.As(err, &panicErr) {
		h.outcomes.Store(md, OutcomePanic)
		return
	}
	h.outcomes.Store(md, OutcomeError)
}

// OnExit implements logreflector.Hooks.
func (h *CallHooks) OnExit(_ context.Context, md *logreflector.CallMetadata) {
	outcome := OutcomeSuccess
	if v, ok := h.outcomes.LoadAndDelete(md); ok {
		outcome = v.(string)
	}
	h.collector.RecordCall(md.Method.Target, md.Method.Method, outcome, time.Since(md.StartedAt))
}
