package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConfidenceInterval holds the Monte Carlo 95% interval bounds, already
// scaled to percent for display.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// PredictionResult is the full output of one prediction run. Persisted
// externally keyed by date with a 30-date retention window.
type PredictionResult struct {
	ID                 uuid.UUID           `json:"id"`
	Date               string              `json:"date"`
	Probability        float64             `json:"probability"`
	ProbabilityPercent float64             `json:"probability_percent"`
	ConfidenceInterval ConfidenceInterval  `json:"confidence_interval"`
	SelectedAgent      *CandidateAgent     `json:"selected_agent,omitempty"`
	Factors            map[string]float64  `json:"factors"`
	CurrentConditions  CurrentConditions   `json:"current_conditions"`
	Explanation        string              `json:"explanation"`
	Timestamp          time.Time           `json:"timestamp"`
}

// ImpliedOdds returns the fair decimal odds implied by the probability,
// rounded to two places. Zero probability yields zero odds.
func (p *PredictionResult) ImpliedOdds() decimal.Decimal {
	if p.Probability <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(1.0 / p.Probability).Round(2)
}

// RiskLevel buckets the probability for display: High above 3%, Medium above
// 1.5%, Low otherwise.
func (p *PredictionResult) RiskLevel() string {
	switch {
	case p.ProbabilityPercent > 3.0:
		return "High"
	case p.ProbabilityPercent > 1.5:
		return "Medium"
	default:
		return "Low"
	}
}
