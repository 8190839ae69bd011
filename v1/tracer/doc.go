// Package tracer provides OpenTelemetry tracing for the log reflector.
//
// Tracer wraps an SDK TracerProvider with span helpers (StartSpan,
// RecordErrorOnSpan, SetAttributes) and W3C context propagation (GetCarrier,
// SetCarrierOnContext). SpanHooks turn every intercepted method call into a
// span named Target.Method.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		tracer.HooksModule,
//		logreflector.ForRoot(logreflector.Config{EnableTracing: true}),
//		fx.Supply(logger.Config{}, tracer.Config{ServiceName: "billing"}),
//	)
//
// With EnableTracing set on the log reflector, entries of the default method
// logger fall back to the trace id and span id of the caller's span.
//
// # Configuration
//
//	TRACER_SERVICE_NAME=billing
//	TRACER_APP_ENV=production
//	TRACER_ENABLE_EXPORT=true
//
// The exporter endpoint comes from OTEL_EXPORTER_OTLP_ENDPOINT or
// OTEL_EXPORTER_OTLP_TRACES_ENDPOINT.
package tracer
