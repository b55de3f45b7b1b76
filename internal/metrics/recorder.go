package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "arraykit"

// Search outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// Recorder owns a private Prometheus registry so that several recorders
// (one per test, one per REPL session) never collide.
type Recorder struct {
	registry     *prometheus.Registry
	sortRuns     *prometheus.CounterVec
	sortDuration *prometheus.HistogramVec
	seqLength    prometheus.Gauge
	searches     *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all arraykit collectors registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		sortRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sort_runs_total",
			Help:      "Number of completed sorter runs.",
		}, []string{"algorithm"}),
		sortDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sort_duration_seconds",
			Help:      "Duration of sorter runs.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"algorithm"}),
		seqLength: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sequence_length",
			Help:      "Length of the most recently sorted sequence.",
		}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_total",
			Help:      "Number of searches by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
}

// ObserveSort records one completed sorter run.
func (r *Recorder) ObserveSort(algorithm string, length int, d time.Duration) {
	r.sortRuns.WithLabelValues(algorithm).Inc()
	r.sortDuration.WithLabelValues(algorithm).Observe(d.Seconds())
	r.seqLength.Set(float64(length))
}

// ObserveSearch records one search; a negative index counts as not found.
func (r *Recorder) ObserveSearch(kind string, index int) {
	outcome := OutcomeFound
	if index < 0 {
		outcome = OutcomeNotFound
	}
	r.searches.WithLabelValues(kind, outcome).Inc()
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
