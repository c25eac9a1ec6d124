// Package metrics exposes document registry events as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cyb3rnet/xhtml/pkg/document"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "xhtml").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for document size in bytes.
	// Default: 256 bytes to 4 MiB in powers of four.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the document size histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "xhtml",
		Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records registry events. It implements document.Observer and is
// safe for use by many documents at once.
type Collector struct {
	nodesCreated       *prometheus.CounterVec
	nodesMerged        *prometheus.CounterVec
	documentsGenerated prometheus.Counter
	documentBytes      prometheus.Histogram
	errors             *prometheus.CounterVec
}

var _ document.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		nodesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_created_total",
			Help:        "Total number of element nodes created",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		nodesMerged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_merged_total",
			Help:        "Total number of constructor calls merged into an existing node",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		documentsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "documents_generated_total",
			Help:        "Total number of documents generated",
			ConstLabels: config.ConstLabels,
		}),

		documentBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "document_bytes",
			Help:        "Size of generated documents in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "errors_total",
			Help:        "Total number of failed operations by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),
	}
}

// NodeCreated implements document.Observer.
func (c *Collector) NodeCreated(tag string) {
	c.nodesCreated.WithLabelValues(tag).Inc()
}

// NodeMerged implements document.Observer.
func (c *Collector) NodeMerged(tag string) {
	c.nodesMerged.WithLabelValues(tag).Inc()
}

// DocumentGenerated implements document.Observer.
func (c *Collector) DocumentGenerated(bytes int) {
	c.documentsGenerated.Inc()
	c.documentBytes.Observe(float64(bytes))
}

// Failed implements document.Observer.
func (c *Collector) Failed(code string) {
	if code == "" {
		code = "unknown"
	}
	c.errors.WithLabelValues(code).Inc()
}
