package metrics

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/tryfib/internal/fibonacci"
)

const namespace = "tryfib"

// Resolution outcome label values.
const (
	OutcomeSuccess     = "success"
	OutcomeUnsupported = "unsupported"
	OutcomeOutOfRange  = "out_of_range"
	OutcomeOther       = "other"
)

// Recorder owns the application's collectors. Each Recorder has its own
// registry, so several can coexist in one process (tests, embedded use).
type Recorder struct {
	registry     *prometheus.Registry
	resolutions  *prometheus.CounterVec
	calcDuration *prometheus.HistogramVec
	calcErrors   *prometheus.CounterVec
}

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered alongside the application metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Number of input resolutions by outcome.",
		}, []string{"outcome"}),
		calcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Duration of Fibonacci pair calculations.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
		}, []string{"algorithm"}),
		calcErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculation_errors_total",
			Help:      "Number of failed calculations by algorithm.",
		}, []string{"algorithm"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.resolutions,
		r.calcDuration,
		r.calcErrors,
	)
	return r
}

// Outcome classifies a resolution error into a label value.
func Outcome(err error) string {
	var idxErr *fibonacci.IndexError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, fibonacci.ErrUnsupportedInput):
		return OutcomeUnsupported
	case errors.As(err, &idxErr):
		return OutcomeOutOfRange
	default:
		return OutcomeOther
	}
}

// ObserveResolution counts one resolution attempt.
func (r *Recorder) ObserveResolution(err error) {
	r.resolutions.WithLabelValues(Outcome(err)).Inc()
}

// ObserveCalculation records the duration of one calculation and counts it
// as failed when err is non-nil.
func (r *Recorder) ObserveCalculation(algorithm string, d time.Duration, err error) {
	r.calcDuration.WithLabelValues(algorithm).Observe(d.Seconds())
	if err != nil {
		r.calcErrors.WithLabelValues(algorithm).Inc()
	}
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// WriteText gathers every metric and writes it to w in the text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
