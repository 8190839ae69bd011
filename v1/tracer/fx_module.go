package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/logreflector/v1/logger"
	"github.com/Aleph-Alpha/logreflector/v1/logreflector"
)

// FXModule provides the *Tracer and shuts its provider down when the
// application stops. A tracer.Config and a logger.Logger must be available in
// the container.
//
// Usage:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Supply(logger.Config{Level: "info"}, tracer.Config{ServiceName: "billing"}),
//		tracer.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// HooksModule adds SpanHooks to every intercepted call by contributing them to
// logreflector.HooksGroup. It needs a *Tracer, usually from FXModule.
var HooksModule = fx.Module("tracer_hooks",
	fx.Provide(
		fx.Annotate(
			NewSpanHooks,
			fx.As(new(logreflector.Hooks)),
			fx.ResultTags(logreflector.HooksGroup.Tag()),
		),
	),
)

// RegisterTracerLifecycle flushes and shuts down the tracer provider on stop.
// It is invoked by FXModule.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer", nil)
			return tracer.Shutdown(ctx)
		},
	})
}
