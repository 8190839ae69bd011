// Package logger provides the zap-backed structured logger used by the log
// reflector and by the tracer and metrics packages.
//
// The package follows the "accept interfaces, return structs" pattern:
//   - Logger interface: the logging contract
//   - LoggerClient struct: the zap implementation
//   - NewLoggerClient constructor: returns *LoggerClient
//   - FXModule: provides *LoggerClient and Logger and flushes on stop
//
// # Direct Usage (Without FX)
//
//	import "github.com/Aleph-Alpha/logreflector/v1/logger"
//
//	log, err := logger.NewLoggerClient(logger.Config{
//		Level:         "info",
//		EnableTracing: true,
//	})
//	if err != nil {
//		return err
//	}
//
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//	})
//
//	// trace_id and span_id are added when ctx carries a valid span
//	log.InfoWithContext(ctx, "Processing request", nil, map[string]interface{}{
//		"request_id": "abc-123",
//	})
//
// An existing *zap.Logger (for example one built on zaptest/observer) can be
// wrapped with NewWithZap.
//
// # FX Module Integration
//
//	app := fx.New(
//		fx.Supply(logger.Config{Level: "debug"}),
//		logger.FXModule,
//		fx.Invoke(func(log logger.Logger) {
//			log.Info("started", nil)
//		}),
//	)
//
// # Configuration
//
// Config can be filled from the environment with ConfigFromEnv:
//
//	ZAP_LOGGER_LEVEL=debug
//	LOGGER_ENABLE_TRACING=true
//	LOGGER_SERVICE_NAME=billing
//	LOGGER_ENCODING=json
//	LOGGER_OUTPUT_PATHS=stderr
//
// Levels are "debug", "info", "warning" and "error"; anything else falls back
// to info.
package logger
