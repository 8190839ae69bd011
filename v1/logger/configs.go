package logger

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the zap logger settings.
type Config struct {
	// Level is the minimum enabled level.
	// 1. production -> INFO
	// 2. development -> DEBUG
	// else -> INFO
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL" envDefault:"info"`

	// EnableTracing adds trace_id and span_id to entries logged through the
	// *WithContext methods when the context carries an OpenTelemetry span.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME"`

	// Encoding is either "json" or "console".
	Encoding string `yaml:"encoding" env:"LOGGER_ENCODING" envDefault:"json"`

	// OutputPaths lists zap sinks, "stderr" by default.
	OutputPaths []string `yaml:"output_paths" env:"LOGGER_OUTPUT_PATHS" envSeparator:"," envDefault:"stderr"`
}

// ConfigFromEnv reads a Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse logger config: %w", err)
	}
	return cfg, nil
}
