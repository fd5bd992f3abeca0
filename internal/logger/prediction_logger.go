// Package logger provides prediction-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// PredictionLogger provides dedicated logging for prediction runs.
type PredictionLogger struct {
	*logrus.Entry
}

// NewPredictionLogger creates a new prediction logger.
func NewPredictionLogger(baseLogger *logrus.Logger) *PredictionLogger {
	return &PredictionLogger{
		Entry: baseLogger.WithField("component", "prediction"),
	}
}

// LogPrediction logs a completed prediction run.
func (pl *PredictionLogger) LogPrediction(date string, probabilityPercent float64, selectedPitcher string, candidatesEvaluated int, durationMs float64) {
	pl.WithFields(logrus.Fields{
		"date":                 date,
		"probability_percent":  probabilityPercent,
		"selected_pitcher":     selectedPitcher,
		"candidates_evaluated": candidatesEvaluated,
		"duration_ms":          durationMs,
	}).Info("Prediction completed")
}

// LogFactorBreakdown logs the multiplicative factor set behind a prediction.
func (pl *PredictionLogger) LogFactorBreakdown(date string, factors map[string]float64) {
	fields := logrus.Fields{"date": date}
	for name, value := range factors {
		fields[name] = value
	}
	pl.WithFields(fields).Debug("Factor breakdown")
}

// LogAnalyzerDegraded logs an analyzer falling back to a neutral factor.
func (pl *PredictionLogger) LogAnalyzerDegraded(analyzer string, err error) {
	pl.WithFields(logrus.Fields{
		"analyzer": analyzer,
		"error":    err.Error(),
	}).Warn("Analyzer degraded, using neutral factor")
}

// LogSourceFallback logs a candidate source handing off to the next tier.
// A nil err means the source succeeded but returned nothing.
func (pl *PredictionLogger) LogSourceFallback(source string, next string, err error) {
	reason := "empty candidate list"
	if err != nil {
		reason = err.Error()
	}
	pl.WithFields(logrus.Fields{
		"source": source,
		"next":   next,
		"error":  reason,
	}).Warn("Candidate source failed, falling back")
}
