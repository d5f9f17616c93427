package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/passage-dev/passage/pkg/nav"
)

// MetricsConfig configures the Prometheus navigation listener.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "passage").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for navigation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus navigation listener.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "passage",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// MetricsListener records navigation metrics to Prometheus.
//
// Metrics collected:
//   - passage_navigations_total: counter of navigations by outcome
//   - passage_navigation_duration_seconds: histogram of resolve+mount time
//   - passage_navigations_in_flight: gauge of concurrently resolving navigations
type MetricsListener struct {
	navigationsTotal   *prometheus.CounterVec
	navigationDuration prometheus.Histogram
	inFlight           prometheus.Gauge
}

// Metrics creates a Prometheus navigation listener.
//
// Example:
//
//	engine, _ := nav.New(container, surface,
//	    nav.WithListener(observe.Metrics()),
//	)
func Metrics(opts ...MetricsOption) *MetricsListener {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &MetricsListener{
		navigationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of navigations by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		navigationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_duration_seconds",
			Help:        "Time spent resolving and mounting a navigation",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_in_flight",
			Help:        "Number of navigations currently resolving",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// NavigationStarted implements nav.Listener.
func (m *MetricsListener) NavigationStarted(path string) {
	m.inFlight.Inc()
}

// NavigationFinished implements nav.Listener.
func (m *MetricsListener) NavigationFinished(path string, outcome nav.Outcome, elapsed time.Duration) {
	m.inFlight.Dec()
	m.navigationsTotal.WithLabelValues(string(outcome)).Inc()
	m.navigationDuration.Observe(elapsed.Seconds())
}
