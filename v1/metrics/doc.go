// Package metrics exposes Prometheus metrics for intercepted method calls.
//
// The package follows the "accept interfaces, return structs" pattern:
//   - MetricsCollector interface: the recording contract
//   - Metrics struct: a private registry plus the /metrics HTTP server
//   - CallHooks: logreflector hooks recording every call through a MetricsCollector
//   - FXModule and HooksModule: fx wiring
//
// Two metrics are registered by NewMetrics:
//
//	method_calls_total{target, method, outcome}      outcome is success, error or panic
//	method_call_duration_seconds{target, method}
//
// Both carry a constant service label and an optional namespace prefix.
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "search-store",
//	})
//	go m.Server.ListenAndServe()
//
//	ic, err := logreflector.NewInterceptor(log, logreflector.ReinvokeOnException, metrics.NewCallHooks(m))
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		metrics.HooksModule,
//		logreflector.ForRoot(logreflector.Config{ServiceName: "search-store"}),
//		fx.Supply(logger.Config{}, metrics.Config{ServiceName: "search-store"}),
//	)
//
// # Configuration
//
//	METRICS_ADDRESS=:9090
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_NAMESPACE=pharia_data
//	METRICS_SERVICE_NAME=search-store
//	METRICS_DURATION_BUCKETS=0.005,0.05,0.5,5
//
// # Custom Metrics
//
// CreateCounter, CreateHistogram and CreateGauge register further vectors
// under the same namespace and service label. Keep label values bounded.
package metrics
