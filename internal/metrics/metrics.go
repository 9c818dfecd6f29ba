// Package metrics counts store operations by outcome and times them.
// Nothing is served over the network; the registry can be dumped to a
// Prometheus textfile for a node exporter to pick up.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thenoetrevino/roster/internal/models"
)

// Recorder tracks store operations. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// New creates a Recorder with its own registry
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roster",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by entity, operation and outcome.",
		}, []string{"entity", "op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "roster",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Store operation latency by entity and operation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"entity", "op"}),
	}
	r.registry.MustRegister(r.operations, r.duration)
	return r
}

// Observe records one operation that started at start and ended with err.
// The outcome label is the error kind, "ok" on success.
func (r *Recorder) Observe(entity, op string, start time.Time, err error) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(entity, op, models.ErrorKind(err)).Inc()
	r.duration.WithLabelValues(entity, op).Observe(time.Since(start).Seconds())
}

// Registry exposes the underlying registry, e.g. for tests
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Count returns the operations counter for the given labels
func (r *Recorder) Count(entity, op, outcome string) prometheus.Counter {
	return r.operations.WithLabelValues(entity, op, outcome)
}

// WriteTextfile writes the current metrics to path in the Prometheus text format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
