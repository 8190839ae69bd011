package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/logreflector/v1/logger"
	"github.com/Aleph-Alpha/logreflector/v1/logreflector"
)

// FXModule provides *Metrics and MetricsCollector and runs the /metrics
// server for the lifetime of the application. A metrics.Config and a
// logger.Logger must be available in the container.
//
// Usage:
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Supply(logger.Config{}, metrics.Config{
//			Address:     ":9090",
//			ServiceName: "search-store",
//		}),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) MetricsCollector { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// HooksModule contributes CallHooks to logreflector.HooksGroup so that every
// intercepted call is counted. It needs a MetricsCollector, usually from
// FXModule.
var HooksModule = fx.Module("metrics_hooks",
	fx.Provide(
		fx.Annotate(
			NewCallHooks,
			fx.As(new(logreflector.Hooks)),
			fx.ResultTags(logreflector.HooksGroup.Tag()),
		),
	),
)

// RegisterMetricsLifecycle starts the metrics server in the background on
// start and shuts it down gracefully on stop. It is invoked by FXModule.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("prometheus metrics server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down prometheus metrics server", nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
