package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain/service.Metrics using Prometheus.
type Recorder struct {
	requestsTotal       *prometheus.CounterVec
	fallbacksTotal      *prometheus.CounterVec
	stageLatency        *prometheus.HistogramVec
	resultConfidence    prometheus.Histogram
	cacheLookups        *prometheus.CounterVec
	activeConversations prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratparse_requests_total",
				Help: "Total number of processed requests by outcome",
			},
			[]string{"outcome"},
		),
		fallbacksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratparse_fallbacks_total",
				Help: "Total number of fallback results by reason",
			},
			[]string{"reason"},
		),
		stageLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stratparse_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		resultConfidence: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stratparse_result_confidence",
				Help:    "Confidence of successful results",
				Buckets: prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratparse_cache_lookups_total",
				Help: "Cache lookups by cache name and result",
			},
			[]string{"cache", "result"},
		),
		activeConversations: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "stratparse_active_conversations",
				Help: "Number of live conversation contexts",
			},
		),
	}
}

// RecordRequest records one processed request by outcome.
func (r *Recorder) RecordRequest(outcome string) {
	r.requestsTotal.WithLabelValues(outcome).Inc()
}

// RecordFallback records a fallback result by reason.
func (r *Recorder) RecordFallback(reason string) {
	r.fallbacksTotal.WithLabelValues(reason).Inc()
}

// RecordStageLatency records pipeline stage latency in seconds.
func (r *Recorder) RecordStageLatency(stage string, seconds float64) {
	r.stageLatency.WithLabelValues(stage).Observe(seconds)
}

// RecordConfidence records the confidence of a successful result.
func (r *Recorder) RecordConfidence(v float64) {
	r.resultConfidence.Observe(v)
}

// RecordCache records a cache hit or miss.
func (r *Recorder) RecordCache(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(cache, result).Inc()
}

// SetActiveConversations updates the live conversation gauge.
func (r *Recorder) SetActiveConversations(n int) {
	r.activeConversations.Set(float64(n))
}
