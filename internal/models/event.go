// Package models defines the shared data types for the no-hitter forecast engine.
package models

import (
	"fmt"
	"time"
)

// HistoricalEvent represents a single recorded no-hitter. The historical
// table is append-only and sorted ascending by date once loaded.
type HistoricalEvent struct {
	Date     time.Time `db:"date" json:"date"`
	Pitcher  string    `db:"pitcher" json:"pitcher" validate:"required"`
	Team     string    `db:"team" json:"team" validate:"required"`
	Opponent string    `db:"opponent" json:"opponent" validate:"required"`
	Notes    string    `db:"notes" json:"notes"`
}

// Decade returns the decade the event falls in (e.g. 1990 for 1996).
func (e HistoricalEvent) Decade() int {
	return (e.Date.Year() / 10) * 10
}

// MonthDay returns the "MM-DD" calendar key for date-frequency analysis.
func (e HistoricalEvent) MonthDay() string {
	return fmt.Sprintf("%02d-%02d", int(e.Date.Month()), e.Date.Day())
}

// SeasonStart and SeasonEnd bound the MLB regular season months.
const (
	SeasonStartMonth = time.April
	SeasonEndMonth   = time.October
)

// IsInSeason reports whether the date falls within the April-October season
// window. Predictions are only generated in season.
func IsInSeason(date time.Time) bool {
	return date.Month() >= SeasonStartMonth && date.Month() <= SeasonEndMonth
}
