package progress

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// ─────────────────────────────────────────────────────────────────────────────
// Channel Observer
// ─────────────────────────────────────────────────────────────────────────────

// ChannelObserver forwards progress to a channel consumed by the UI.
type ChannelObserver struct {
	channel chan<- ProgressUpdate
}

// NewChannelObserver creates an observer that sends updates to ch. A nil
// channel discards updates.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{channel: ch}
}

// Update sends without blocking. When the channel is full the update is
// dropped; the UI catches up on the next one.
func (o *ChannelObserver) Update(calcIndex int, progress float64) {
	if o.channel == nil {
		return
	}
	if progress > 1.0 {
		progress = 1.0
	}
	select {
	case o.channel <- ProgressUpdate{CalculatorIndex: calcIndex, Value: progress}:
	default:
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver logs progress at debug level, throttled by threshold.
type LoggingObserver struct {
	logger    zerolog.Logger
	threshold float64
	lastLog   map[int]float64
	mu        sync.Mutex
}

// NewLoggingObserver creates an observer that only logs when progress moves
// by at least threshold. A non-positive threshold defaults to 10%.
func NewLoggingObserver(logger zerolog.Logger, threshold float64) *LoggingObserver {
	if threshold <= 0 {
		threshold = 0.1
	}
	return &LoggingObserver{
		logger:    logger,
		threshold: threshold,
		lastLog:   make(map[int]float64),
	}
}

// Update logs boundaries and significant changes.
func (o *LoggingObserver) Update(calcIndex int, progress float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	last := o.lastLog[calcIndex]
	shouldLog := progress >= 1.0 ||
		last == 0 && progress > 0 ||
		progress-last >= o.threshold

	if shouldLog {
		o.logger.Debug().
			Int("calculator", calcIndex).
			Float64("progress", progress).
			Str("percent", fmt.Sprintf("%.1f%%", progress*100)).
			Msg("multiplication progress")
		o.lastLog[calcIndex] = progress
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Metrics Observer (Prometheus)
// ─────────────────────────────────────────────────────────────────────────────

var progressGauge = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "fftmul_multiplication_progress",
		Help: "Current progress of multiplications (0.0 to 1.0)",
	},
	[]string{"calculator_index"},
)

// MetricsObserver exports progress to a Prometheus gauge.
type MetricsObserver struct {
	gauge *prometheus.GaugeVec
}

// NewMetricsObserver creates an observer that updates Prometheus metrics.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{gauge: progressGauge}
}

// Update sets the gauge for calcIndex.
func (o *MetricsObserver) Update(calcIndex int, progress float64) {
	o.gauge.WithLabelValues(strconv.Itoa(calcIndex)).Set(progress)
}

// ResetMetrics clears the gauge for every calculator.
func (o *MetricsObserver) ResetMetrics() {
	o.gauge.Reset()
}

// ─────────────────────────────────────────────────────────────────────────────
// No-Op Observer
// ─────────────────────────────────────────────────────────────────────────────

// NoOpObserver discards all progress updates.
type NoOpObserver struct{}

// NewNoOpObserver creates a no-op observer.
func NewNoOpObserver() *NoOpObserver {
	return &NoOpObserver{}
}

// Update does nothing.
func (o *NoOpObserver) Update(int, float64) {}
