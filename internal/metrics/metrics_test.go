package metrics

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRecordPrediction(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordPrediction(1.2, 16, 0.5)
	})
}

func TestRecordFallbacks(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordGenericFallback()
		RecordSourceFallback("mlb_stats_api")
		RecordAnalyzerDegradation("weather")
		RecordScheduledRunSkipped()
		RecordPredictionFailure()
	})
}

func TestUpdateFactors(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		UpdateFactors(map[string]float64{
			"base_rate":      0.0043,
			"monthly_factor": 1.3,
			"weather_factor": 0.9,
		})
	})
}

func TestMetricsHandler(t *testing.T) {
	InitRegistry()

	handler := Handler()
	assert.NotNil(t, handler)
	assert.Implements(t, (*http.Handler)(nil), handler)
}

func BenchmarkRecordPrediction(b *testing.B) {
	InitRegistry()

	for i := 0; i < b.N; i++ {
		RecordPrediction(1.2, 16, 0.5)
	}
}
