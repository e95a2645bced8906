package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "recbench"

// Recorder accumulates per-run benchmark measurements in its own registry.
type Recorder struct {
	registry  *prometheus.Registry
	durations *prometheus.HistogramVec
	runs      *prometheus.CounterVec
	allocated *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with a fresh registry that also exports the
// Go runtime collector and the process peak RSS.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a single benchmark run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
		}, []string{"family", "algorithm"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Benchmark runs by outcome.",
		}, []string{"family", "algorithm", "status"}),
		allocated: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "allocated_bytes",
			Help:      "Heap bytes allocated during the most recent run.",
		}, []string{"family", "algorithm"}),
	}

	peakRSS := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "peak_rss_bytes",
		Help:      "Maximum resident set size of the process.",
	}, func() float64 { return float64(PeakRSS()) })

	r.registry.MustRegister(
		r.durations, r.runs, r.allocated, peakRSS,
		collectors.NewGoCollector(),
	)
	return r
}

// Observe records one finished run. A non-nil err counts the run as failed
// and skips the duration and allocation series.
func (r *Recorder) Observe(family, algorithm string, d time.Duration, allocated uint64, err error) {
	if err != nil {
		r.runs.WithLabelValues(family, algorithm, "error").Inc()
		return
	}
	r.runs.WithLabelValues(family, algorithm, "ok").Inc()
	r.durations.WithLabelValues(family, algorithm).Observe(d.Seconds())
	r.allocated.WithLabelValues(family, algorithm).Set(float64(allocated))
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to path in the prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
