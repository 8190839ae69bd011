package metrics

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultMetricsAddress is used when no address is configured.
const DefaultMetricsAddress = ":9090"

// Config configures the Prometheus registry and the /metrics server.
type Config struct {
	// Address the metrics HTTP server listens on, e.g. ":9090" or
	// "127.0.0.1:9100".
	Address string `yaml:"address" env:"METRICS_ADDRESS" envDefault:":9090"`

	// EnableDefaultCollectors registers the Go runtime, process and build info
	// collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS" envDefault:"true"`

	// Namespace prefixes every metric name, e.g. "billing" turns
	// method_calls_total into billing_method_calls_total.
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE"`

	// ServiceName is added as a constant service label to every metric.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`

	// DurationBuckets overrides prometheus.DefBuckets for
	// method_call_duration_seconds.
	DurationBuckets []float64 `yaml:"duration_buckets" env:"METRICS_DURATION_BUCKETS" envSeparator:","`
}

// ConfigFromEnv reads a Config from METRICS_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse metrics config: %w", err)
	}
	return cfg, nil
}
