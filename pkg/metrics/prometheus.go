package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fluent"

// PrometheusRecorder implements Recorder with Prometheus
// collectors registered on a private registry, so several
// recorders can coexist in one process.
type PrometheusRecorder struct {
	registry   *prometheus.Registry
	assertions *prometheus.CounterVec
	suites     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	active     prometheus.Gauge
}

// NewPrometheusRecorder creates a recorder with its collectors
// registered.
func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		assertions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assertions_total",
			Help:      "Evaluated checks by kind, operation and result.",
		}, []string{"kind", "operation", "result"}),
		suites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suite_checks_total",
			Help:      "Checks per suite by result.",
		}, []string{"suite", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "suite_duration_seconds",
			Help:      "Wall time of suite runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"suite"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_suites",
			Help:      "Suites currently being run.",
		}),
	}
	r.registry.MustRegister(r.assertions, r.suites, r.duration, r.active)
	return r
}

func (r *PrometheusRecorder) RecordAssertion(kind, operation string, passed bool) {
	r.assertions.WithLabelValues(kind, operation, Result(passed)).Inc()
}

func (r *PrometheusRecorder) RecordSuite(name string, passed, failed int, duration time.Duration) {
	r.suites.WithLabelValues(name, Result(true)).Add(float64(passed))
	r.suites.WithLabelValues(name, Result(false)).Add(float64(failed))
	r.duration.WithLabelValues(name).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) SetActiveSuites(count int) {
	r.active.Set(float64(count))
}

// Registry exposes the registry for HTTP handlers or custom
// gatherers.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current metrics in the text
// exposition format, suitable for the node exporter textfile
// collector.
func (r *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}
	return nil
}
