// Package logreflector logs method calls without touching their bodies.
//
// An Interceptor wraps a function and reports four lifecycle events to a
// Logger: ENTRY before the call, CALL with the result on success, EXCEPTION
// when the call fails and EXIT once it is over, whatever the outcome. Every
// event of one call shares a CallMetadata carrying the method descriptor, a
// tracking id, a request id and a call id.
//
// # Wrapping methods
//
// Go has no runtime decorators, so a method is wrapped when its owner is
// built. The wrapper keeps the original function type:
//
//	type Calculator struct {
//		Add func(ctx context.Context, a, b int) (int, error)
//	}
//
//	func NewCalculator(ic *logreflector.Interceptor) *Calculator {
//		return &Calculator{
//			Add: logreflector.Method2(ic,
//				logreflector.Signature{Target: "Calculator", Method: "Add", Params: []string{"a", "b"}},
//				func(ctx context.Context, a, b int) (int, error) { return a + b, nil },
//			),
//		}
//	}
//
// When a wrapped call returns an error the default policy,
// ReinvokeOnException, calls the original once more with the same arguments
// and returns whatever that second call returns, without reporting it.
// PropagateOnException returns the first error instead. Panics are reported
// as *PanicError and re-raised; they are never retried.
//
// # Registering with fx
//
// ForRoot binds a Logger, a Serializer and the *Interceptor from a resolved
// Config:
//
//	app := fx.New(
//		logreflector.ForRoot(logreflector.Config{ServiceName: "billing"}),
//		fx.Provide(NewCalculator),
//	)
//
// ForRootAsync resolves the Config inside the container from a factory, an
// existing OptionsFactory, a value or an OptionsFactory constructor:
//
//	logreflector.ForRootAsync(logreflector.FromFactory(
//		func(cfg AppConfig) logreflector.Config {
//			return logreflector.Config{ServiceName: cfg.Name}
//		},
//	))
//
// Extra Hooks can be added to every call by providing them into HooksGroup;
// the tracer and metrics packages ship such modules.
//
// # Configuration
//
// ConfigFromEnv reads:
//
//	LOG_REFLECTOR_LEVEL=info
//	LOG_REFLECTOR_SERVICE_NAME=billing
//	LOG_REFLECTOR_EXCEPTION_POLICY=reinvoke
//	LOG_REFLECTOR_MAX_VALUE_SIZE=2048
//	LOG_REFLECTOR_REDACT=password,token
//	LOG_REFLECTOR_ENABLE_TRACING=false
package logreflector
