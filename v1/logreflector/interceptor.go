package logreflector

import (
	"context"
	"reflect"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Interceptor wraps functions so that each call is reported to a Logger.
// It is safe for concurrent use; per-call state lives in the CallMetadata.
type Interceptor struct {
	logger   Logger
	policy   ExceptionPolicy
	registry *MethodRegistry
}

// NewInterceptor returns an Interceptor reporting to logger. Extra hooks are
// fanned out after the logger, see Compose.
func NewInterceptor(logger Logger, policy ExceptionPolicy, hooks ...Hooks) (*Interceptor, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if len(hooks) > 0 {
		logger = Compose(logger, hooks...)
	}
	if policy != PropagateOnException {
		policy = ReinvokeOnException
	}
	return &Interceptor{
		logger:   logger,
		policy:   policy,
		registry: NewMethodRegistry(),
	}, nil
}

// Logger returns the hook receiver, including composed hooks.
func (i *Interceptor) Logger() Logger {
	return i.logger
}

// Policy returns the exception policy in effect.
func (i *Interceptor) Policy() ExceptionPolicy {
	return i.policy
}

// Registry returns the descriptors of every method wrapped so far.
func (i *Interceptor) Registry() *MethodRegistry {
	return i.registry
}

// describe registers the wrapped method. It runs while the object graph is
// built and panics on a conflicting signature.
func (i *Interceptor) describe(sig Signature, params []reflect.Type, results []reflect.Type) *MethodInfo {
	info, err := i.registry.Register(sig, params, results)
	if err != nil {
		panic(err)
	}
	return info
}

func (i *Interceptor) newMetadata(ctx context.Context, info *MethodInfo) *CallMetadata {
	return &CallMetadata{
		Method:     info,
		TrackingID: i.logger.TrackingID(ctx),
		RequestID:  i.logger.RequestID(ctx),
		CallID:     uuid.NewString(),
		StartedAt:  time.Now(),
	}
}

// invoke runs call between the lifecycle hooks.
//
// On error the hooks see the first error. Under ReinvokeOnException call runs
// once more and its outcome, error or panic included, goes straight to the
// caller. A panic is reported as *PanicError and re-raised after OnExit; it is
// never re-invoked.
//
// The result is forwarded as is: if R is a channel or another handle on work
// that finishes later, OnExit fires before that work settles.
func invoke[R any](ctx context.Context, i *Interceptor, info *MethodInfo, args []any, call func() (R, error)) (R, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	md := i.newMetadata(ctx, info)
	l := i.logger

	defer l.OnExit(ctx, md)

	returned := false
	defer func() {
		if returned {
			return
		}
		if r := recover(); r != nil {
			l.OnException(ctx, md, &PanicError{Value: r, Stack: debug.Stack()})
			panic(r)
		}
	}()

	l.OnEntry(ctx, md, parameters(info, args))

	result, err := call()
	returned = true
	if err == nil {
		l.OnCall(ctx, md, Result{Method: info, Value: result})
		return result, nil
	}

	l.OnException(ctx, md, err)
	if i.policy == PropagateOnException {
		return result, err
	}
	return call()
}
