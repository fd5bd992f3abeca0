package engine

import (
	"math"
	"time"

	"github.com/jleboube/no-hitter-analysis/internal/history"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// The historical table spans roughly 150 seasons of about 180 in-season days
// each, seven months per season. These constants anchor the rate and
// frequency factors to that window.
const (
	trackedSeasons    = 150
	daysPerSeason     = 180
	monthsPerSeason   = 7
	calendarDays      = 365
	decayYearsPerUnit = 50
)

// notableDates are the calendar days with a documented clustering of events.
// Only these receive a date factor; every other day stays neutral.
var notableDates = map[string]bool{
	"04-27": true,
	"05-15": true,
	"09-20": true,
	"09-28": true,
}

// HistoricalFactors is the multiplicative decomposition of the historical
// component of a prediction. Each field defaults to neutral 1.0 except the
// base rate, which is the per-game event probability itself.
type HistoricalFactors struct {
	BaseRate          float64
	MonthlyFactor     float64
	DateFactor        float64
	DecadalFactor     float64
	RecencyAdjustment float64
}

// Product multiplies the base rate through the historical adjustments.
func (f HistoricalFactors) Product() float64 {
	return f.BaseRate * f.MonthlyFactor * f.DateFactor * f.DecadalFactor * f.RecencyAdjustment
}

// ComputeHistoricalFactors derives the historical factor set for a target
// date from the full event table. The table is treated as-is: duplicate
// records contribute to every count, matching the source dataset.
func ComputeHistoricalFactors(events []models.HistoricalEvent, date time.Time) HistoricalFactors {
	return HistoricalFactors{
		BaseRate:          baseRate(events),
		MonthlyFactor:     monthlyFactor(events, date.Month()),
		DateFactor:        dateFactor(events, date),
		DecadalFactor:     decadalFactor(events, date),
		RecencyAdjustment: recencyAdjustment(events, date),
	}
}

// baseRate is the per-game probability implied by the observed event count
// over the tracked window, via the Poisson complement 1-e^(-lambda).
func baseRate(events []models.HistoricalEvent) float64 {
	lambda := float64(len(events)) / float64(trackedSeasons*daysPerSeason)
	return 1 - math.Exp(-lambda)
}

// monthlyFactor compares the target month's event count against a uniform
// spread across the seven season months. Months with no recorded events stay
// neutral rather than zeroing the probability.
func monthlyFactor(events []models.HistoricalEvent, month time.Month) float64 {
	if len(events) == 0 {
		return 1.0
	}
	count := 0
	for _, e := range events {
		if e.Date.Month() == month {
			count++
		}
	}
	if count == 0 {
		return 1.0
	}
	expected := float64(len(events)) / monthsPerSeason
	return float64(count) / expected
}

// dateFactor boosts the four notable calendar days in proportion to their
// observed clustering. The boost never drops below neutral.
func dateFactor(events []models.HistoricalEvent, date time.Time) float64 {
	key := models.HistoricalEvent{Date: date}.MonthDay()
	if !notableDates[key] || len(events) == 0 {
		return 1.0
	}
	count := 0
	for _, e := range events {
		if e.MonthDay() == key {
			count++
		}
	}
	expected := float64(len(events)) / calendarDays
	factor := float64(count) / expected
	if factor < 1.0 {
		return 1.0
	}
	return factor
}

// decadalFactor weights each observed decade by exponential decay from the
// target decade, normalizes the weights to sum to one, and applies the target
// decade's normalized share directly. A target decade with no recorded
// events stays neutral.
func decadalFactor(events []models.HistoricalEvent, date time.Time) float64 {
	if len(events) == 0 {
		return 1.0
	}
	currentDecade := (date.Year() / 10) * 10

	weights := make(map[int]float64)
	for _, e := range events {
		d := e.Decade()
		if _, seen := weights[d]; seen {
			continue
		}
		weights[d] = math.Exp(-float64(currentDecade-d) / decayYearsPerUnit)
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return 1.0
	}

	w, ok := weights[currentDecade]
	if !ok {
		return 1.0
	}
	return w / total
}

// recencyAdjustment boosts the probability when the drought since the last
// event exceeds the historical mean gap, 10% per mean-gap of excess, capped
// at 2.0. Within the mean gap the adjustment is neutral. Only events strictly
// before the target date count, so a backdated prediction sees the drought as
// it stood on that date.
func recencyAdjustment(events []models.HistoricalEvent, date time.Time) float64 {
	sorted := make([]models.HistoricalEvent, 0, len(events))
	for _, e := range events {
		if e.Date.Before(date) {
			sorted = append(sorted, e)
		}
	}
	if len(sorted) < 2 {
		return 1.0
	}
	history.SortAscending(sorted)

	totalGapDays := sorted[len(sorted)-1].Date.Sub(sorted[0].Date).Hours() / 24
	meanGap := totalGapDays / float64(len(sorted)-1)
	if meanGap <= 0 {
		return 1.0
	}

	daysSince := date.Sub(sorted[len(sorted)-1].Date).Hours() / 24
	if daysSince <= meanGap {
		return 1.0
	}

	adjustment := 1.0 + 0.1*((daysSince-meanGap)/meanGap)
	if adjustment > 2.0 {
		return 2.0
	}
	return adjustment
}
