package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ProgressionMetrics records outcomes of task-completion point awards.
type ProgressionMetrics struct {
	duration *prometheus.HistogramVec
	applied  *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

// NewProgressionMetrics registers the progression metrics on the provided registerer.
func NewProgressionMetrics(reg prometheus.Registerer) *ProgressionMetrics {
	if reg == nil {
		return &ProgressionMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "progression_update_duration_seconds",
		Help:    "Duration of progression updates in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"event"})
	applied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "progression_updates_applied",
		Help: "Progression updates applied successfully.",
	}, []string{"event"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "progression_updates_failed",
		Help: "Progression updates that could not be applied.",
	}, []string{"event"})
	reg.MustRegister(duration, applied, failed)
	return &ProgressionMetrics{
		duration: duration,
		applied:  applied,
		failed:   failed,
	}
}

// ObserveDuration records the duration for the named event type.
func (p *ProgressionMetrics) ObserveDuration(event string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(event)).Observe(duration.Seconds())
}

// IncApplied increments the applied counter for the named event type.
func (p *ProgressionMetrics) IncApplied(event string) {
	if p == nil || p.applied == nil {
		return
	}
	p.applied.WithLabelValues(normalizeLabel(event)).Inc()
}

// IncFailed increments the failed counter for the named event type.
func (p *ProgressionMetrics) IncFailed(event string) {
	if p == nil || p.failed == nil {
		return
	}
	p.failed.WithLabelValues(normalizeLabel(event)).Inc()
}

func normalizeLabel(event string) string {
	if event == "" {
		return "unknown"
	}
	return event
}
