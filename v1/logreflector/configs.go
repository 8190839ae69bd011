package logreflector

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Aleph-Alpha/logreflector/v1/logger"
)

// ExceptionPolicy decides what the Interceptor returns after OnException.
type ExceptionPolicy string

const (
	// ReinvokeOnException calls the wrapped function a second time and returns
	// whatever that second call produces. The second call is not hooked.
	ReinvokeOnException ExceptionPolicy = "reinvoke"

	// PropagateOnException returns the original error unchanged.
	PropagateOnException ExceptionPolicy = "propagate"
)

// DefaultMaxValueSize bounds a single serialized value in log output.
const DefaultMaxValueSize = 2048

// Config configures the logger/serializer pair and the interceptor.
//
// Logger, Serializer and Output let the caller replace the defaults; they are
// not read from the environment.
type Config struct {
	// Level of the default zap-backed method logger.
	Level string `yaml:"level" env:"LOG_REFLECTOR_LEVEL" envDefault:"info"`

	// ServiceName is attached to every entry of the default logger.
	ServiceName string `yaml:"service_name" env:"LOG_REFLECTOR_SERVICE_NAME"`

	// Encoding of the default logger, "json" or "console".
	Encoding string `yaml:"encoding" env:"LOG_REFLECTOR_ENCODING" envDefault:"json"`

	// ExceptionPolicy defaults to ReinvokeOnException.
	ExceptionPolicy ExceptionPolicy `yaml:"exception_policy" env:"LOG_REFLECTOR_EXCEPTION_POLICY" envDefault:"reinvoke"`

	// MaxValueSize truncates serialized values; zero or less disables truncation.
	MaxValueSize int `yaml:"max_value_size" env:"LOG_REFLECTOR_MAX_VALUE_SIZE" envDefault:"2048"`

	// Redact lists parameter names whose values are masked in log output.
	Redact []string `yaml:"redact" env:"LOG_REFLECTOR_REDACT" envSeparator:","`

	// EnableTracing makes the default logger fall back to the active
	// OpenTelemetry span for tracking (trace id) and request (span id) ids.
	EnableTracing bool `yaml:"enable_tracing" env:"LOG_REFLECTOR_ENABLE_TRACING"`

	// Logger replaces the default zap-backed MethodLogger.
	Logger Logger `yaml:"-"`

	// Serializer replaces the default JSONSerializer.
	Serializer Serializer `yaml:"-"`

	// Output is the zap client the default MethodLogger writes to. When nil a
	// new client is built from Level, ServiceName and Encoding.
	Output *logger.LoggerClient `yaml:"-"`
}

// ConfigFromEnv reads a Config from LOG_REFLECTOR_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse log reflector config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects an ExceptionPolicy other than ReinvokeOnException,
// PropagateOnException or empty (which means ReinvokeOnException).
func (c Config) Validate() error {
	switch c.ExceptionPolicy {
	case "", ReinvokeOnException, PropagateOnException:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, string(c.ExceptionPolicy))
	}
}

func (c Config) exceptionPolicy() ExceptionPolicy {
	if c.ExceptionPolicy == PropagateOnException {
		return PropagateOnException
	}
	return ReinvokeOnException
}

func (c Config) loggerConfig() logger.Config {
	return logger.Config{
		Level:         c.Level,
		ServiceName:   c.ServiceName,
		Encoding:      c.Encoding,
		EnableTracing: c.EnableTracing,
	}
}
