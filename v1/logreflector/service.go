package logreflector

import (
	"fmt"
	"sync"

	"github.com/Aleph-Alpha/logreflector/v1/logger"
)

// Service turns a Config into the logger/serializer pair the facade binds.
// Both are built on first use and cached.
type Service struct {
	cfg Config

	loggerOnce sync.Once
	logger     Logger
	loggerErr  error

	serializerOnce sync.Once
	serializer     Serializer
}

// NewService returns a Service for cfg.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Config returns the configuration the service was built with.
func (s *Service) Config() Config {
	return s.cfg
}

// Logger returns cfg.Logger when set, otherwise a MethodLogger writing to
// cfg.Output or to a zap client built from cfg.
func (s *Service) Logger() (Logger, error) {
	s.loggerOnce.Do(func() {
		if s.cfg.Logger != nil {
			s.logger = s.cfg.Logger
			return
		}
		out := s.cfg.Output
		if out == nil {
			client, err := logger.NewLoggerClient(s.cfg.loggerConfig())
			if err != nil {
				s.loggerErr = fmt.Errorf("create method logger: %w", err)
				return
			}
			out = client
		}
		s.logger = NewMethodLogger(out.Named("logreflector"), s.Serializer(), s.cfg)
	})
	return s.logger, s.loggerErr
}

// Serializer returns cfg.Serializer when set, otherwise a JSONSerializer.
func (s *Service) Serializer() Serializer {
	s.serializerOnce.Do(func() {
		if s.cfg.Serializer != nil {
			s.serializer = s.cfg.Serializer
			return
		}
		s.serializer = NewJSONSerializer(s.cfg)
	})
	return s.serializer
}
