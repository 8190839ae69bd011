package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Call outcomes used as the outcome label of method_calls_total.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomePanic   = "panic"
)

// Metrics holds the Prometheus registry, the method call metrics and the
// HTTP server exposing them.
type Metrics struct {
	// Server serves the registry on /metrics.
	Server *http.Server

	// Registry is private to this Metrics so that several instances can live
	// in one process.
	Registry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer

	callsTotal   *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
}

// NewMetrics builds a dedicated registry, registers the method call metrics
// (and the default collectors when enabled) under a constant service label and
// prepares an HTTP server for /metrics. The server is started by FXModule.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "document-index",
//	})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// every metric carries service="<cfg.ServiceName>"
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	buckets := cfg.DurationBuckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.Namespace,
		registerer: wrapped,
	}

	m.callsTotal = createCounterVec(cfg.Namespace, "method_calls_total",
		"Total number of intercepted method calls", []string{"target", "method", "outcome"})
	m.callDuration = createHistogramVec(cfg.Namespace, "method_call_duration_seconds",
		"Duration of intercepted method calls in seconds", []string{"target", "method"}, buckets)

	wrapped.MustRegister(m.callsTotal, m.callDuration)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	m.Server = &http.Server{
		Addr:    address,
		Handler: mux,
	}
	return m
}
