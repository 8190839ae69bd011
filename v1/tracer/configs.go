package tracer

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config configures the tracer provider.
type Config struct {
	// ServiceName is recorded as the service.name resource attribute.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// AppEnv is recorded as deployment.environment and as "environment".
	AppEnv string `yaml:"app_env" env:"TRACER_APP_ENV" envDefault:"development"`

	// EnableExport sends spans through an OTLP/HTTP exporter. The exporter
	// reads its endpoint from the standard OTEL_EXPORTER_OTLP_* variables.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`
}

// ConfigFromEnv reads a Config from TRACER_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse tracer config: %w", err)
	}
	return cfg, nil
}
