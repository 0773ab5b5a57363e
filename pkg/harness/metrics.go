package harness

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "sorteval"
	harnessSubsystem = "harness"
)

// PromMetrics records raw trial measurements. Averages leave the harness
// through Series; the individual samples are only visible here.
type PromMetrics struct {
	trialsTotal    *prometheus.CounterVec
	runTimeSeconds *prometheus.HistogramVec
	heapDeltaKB    *prometheus.HistogramVec
	inputSize      *prometheus.HistogramVec
}

// NewPromMetrics creates the harness collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewPromMetrics(reg prometheus.Registerer) *PromMetrics {
	m := &PromMetrics{
		trialsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: harnessSubsystem,
			Name:      "trials_total",
			Help:      "Total sort trials by algorithm and metric",
		}, []string{"algorithm", "metric"}),

		runTimeSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: harnessSubsystem,
			Name:      "sort_duration_seconds",
			Help:      "Wall-clock duration of one sort call",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"algorithm"}),

		heapDeltaKB: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: harnessSubsystem,
			Name:      "heap_delta_kilobytes",
			Help:      "Heap in-use change across one sort call in kilobytes",
			Buckets:   []float64{-1024, -64, 0, 16, 64, 256, 1024, 4096, 16384},
		}, []string{"algorithm"}),

		inputSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: harnessSubsystem,
			Name:      "input_length",
			Help:      "Length of sequences handed to the harness",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 6),
		}, []string{"metric"}),
	}

	if reg != nil {
		reg.MustRegister(m.trialsTotal, m.runTimeSeconds, m.heapDeltaKB, m.inputSize)
	}
	return m
}

func (m *PromMetrics) observeInput(metric Metric, n int) {
	if m == nil {
		return
	}
	m.inputSize.WithLabelValues(metric.String()).Observe(float64(n))
}

func (m *PromMetrics) observeTrial(algorithm string, metric Metric, t trial) {
	if m == nil {
		return
	}
	m.trialsTotal.WithLabelValues(algorithm, metric.String()).Inc()
	switch metric {
	case RunTime:
		m.runTimeSeconds.WithLabelValues(algorithm).Observe(t.elapsed.Seconds())
	case Memory:
		m.heapDeltaKB.WithLabelValues(algorithm).Observe(float64(t.value))
	}
}
