// Package metrics provides the centralized Prometheus metrics registry for
// the forecast service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "no_hitter",
		Name:      "predictions_total",
		Help:      "Total number of completed prediction runs",
	})
	PredictionFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "no_hitter",
		Name:      "prediction_failures_total",
		Help:      "Total number of prediction runs that failed fatally",
	})
	GenericFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "no_hitter",
		Name:      "generic_fallbacks_total",
		Help:      "Total number of predictions produced without a candidate slate",
	})
	SourceFallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "no_hitter",
		Name:      "source_fallbacks_total",
		Help:      "Total number of candidate source failures by source",
	}, []string{"source"})
	AnalyzerDegradationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "no_hitter",
		Name:      "analyzer_degradations_total",
		Help:      "Total number of analyzer failures that fell back to a neutral factor",
	}, []string{"analyzer"})
	ScheduledRunsSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "no_hitter",
		Name:      "scheduled_runs_skipped_total",
		Help:      "Total number of scheduled runs skipped outside the season window",
	})
	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "no_hitter",
		Name:      "cache_hits_total",
		Help:      "Total cache hits by cache name",
	}, []string{"cache"})
	CacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "no_hitter",
		Name:      "cache_misses_total",
		Help:      "Total cache misses by cache name",
	}, []string{"cache"})
)

// Gauge metrics
var (
	LastProbabilityPercent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "no_hitter",
		Name:      "last_probability_percent",
		Help:      "Probability from the most recent prediction, in percent",
	})
	LastCandidatesEvaluated = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "no_hitter",
		Name:      "last_candidates_evaluated",
		Help:      "Number of candidates scored in the most recent prediction",
	})
	FactorValue = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "no_hitter",
		Name:      "factor_value",
		Help:      "Multiplicative factor values from the most recent prediction",
	}, []string{"factor"})
)

// Histogram metrics
var (
	PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "no_hitter",
		Name:      "prediction_duration_seconds",
		Help:      "Duration of full prediction runs in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(PredictionFailuresTotal)
		registry.MustRegister(GenericFallbacksTotal)
		registry.MustRegister(SourceFallbacksTotal)
		registry.MustRegister(AnalyzerDegradationsTotal)
		registry.MustRegister(ScheduledRunsSkippedTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)

		registry.MustRegister(LastProbabilityPercent)
		registry.MustRegister(LastCandidatesEvaluated)
		registry.MustRegister(FactorValue)

		registry.MustRegister(PredictionDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordPrediction records a completed prediction run.
func RecordPrediction(probabilityPercent float64, candidatesEvaluated int, durationSeconds float64) {
	PredictionsTotal.Inc()
	LastProbabilityPercent.Set(probabilityPercent)
	LastCandidatesEvaluated.Set(float64(candidatesEvaluated))
	PredictionDuration.Observe(durationSeconds)
}

// RecordPredictionFailure records a fatally failed prediction run.
func RecordPredictionFailure() {
	PredictionFailuresTotal.Inc()
}

// RecordGenericFallback records a prediction produced without candidates.
func RecordGenericFallback() {
	GenericFallbacksTotal.Inc()
}

// RecordSourceFallback records a candidate source handing off to the next tier.
func RecordSourceFallback(source string) {
	SourceFallbacksTotal.WithLabelValues(source).Inc()
}

// RecordAnalyzerDegradation records an analyzer falling back to neutral.
func RecordAnalyzerDegradation(analyzer string) {
	AnalyzerDegradationsTotal.WithLabelValues(analyzer).Inc()
}

// RecordScheduledRunSkipped records an off-season scheduler skip.
func RecordScheduledRunSkipped() {
	ScheduledRunsSkippedTotal.Inc()
}

// RecordCacheHit records a hit on the named cache.
func RecordCacheHit(cache string) {
	CacheHitsTotal.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a miss on the named cache.
func RecordCacheMiss(cache string) {
	CacheMissesTotal.WithLabelValues(cache).Inc()
}

// UpdateFactors publishes the factor breakdown of the latest prediction.
func UpdateFactors(factors map[string]float64) {
	for name, value := range factors {
		FactorValue.WithLabelValues(name).Set(value)
	}
}
