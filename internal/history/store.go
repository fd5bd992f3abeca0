// Package history provides the historical no-hitter event store.
//
// Three backends are available: the embedded table bundled with the binary,
// a CSV file, and PostgreSQL. All return the table sorted ascending by date.
// A load failure is fatal to the caller's prediction; this layer never falls
// back to synthetic data.
package history

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

const dateLayout = "2006-01-02"

// Store supplies the ordered historical event table.
type Store interface {
	// Load returns every recorded event sorted ascending by date. A failure
	// of the backing source returns models.ErrDataUnavailable wrapped with
	// detail; callers must treat that as fatal for the current prediction.
	Load(ctx context.Context) ([]models.HistoricalEvent, error)
}

// EmbeddedStore serves the table compiled into the binary.
type EmbeddedStore struct{}

// NewEmbeddedStore returns a store backed by the bundled dataset.
func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

// Load parses and sorts the embedded table.
func (s *EmbeddedStore) Load(ctx context.Context) ([]models.HistoricalEvent, error) {
	events := make([]models.HistoricalEvent, 0, len(embeddedRecords))
	for _, r := range embeddedRecords {
		date, err := time.Parse(dateLayout, r.date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad embedded record %q: %v", models.ErrDataUnavailable, r.date, err)
		}
		events = append(events, models.HistoricalEvent{
			Date:     date,
			Pitcher:  r.pitcher,
			Team:     r.team,
			Opponent: r.opponent,
			Notes:    r.notes,
		})
	}
	SortAscending(events)
	return events, nil
}

// SortAscending sorts events by date, oldest first. The sort is stable so
// same-date records keep their source order.
func SortAscending(events []models.HistoricalEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}

// LastEventDate returns the date of the most recent event in the table.
func LastEventDate(events []models.HistoricalEvent) (time.Time, bool) {
	if len(events) == 0 {
		return time.Time{}, false
	}
	last := events[0].Date
	for _, e := range events[1:] {
		if e.Date.After(last) {
			last = e.Date
		}
	}
	return last, true
}

// ValidationSummary reports dataset shape for logging and the ingest command.
type ValidationSummary struct {
	TotalRecords   int       `json:"total_records"`
	EarliestDate   time.Time `json:"earliest_date"`
	LatestDate     time.Time `json:"latest_date"`
	DuplicateDates int       `json:"duplicate_dates"`
	MissingFields  int       `json:"missing_fields"`
}

// Validate summarizes the table's completeness.
func Validate(events []models.HistoricalEvent) ValidationSummary {
	summary := ValidationSummary{TotalRecords: len(events)}
	if len(events) == 0 {
		return summary
	}

	summary.EarliestDate = events[0].Date
	summary.LatestDate = events[0].Date
	seen := make(map[string]bool, len(events))
	for _, e := range events {
		if e.Date.Before(summary.EarliestDate) {
			summary.EarliestDate = e.Date
		}
		if e.Date.After(summary.LatestDate) {
			summary.LatestDate = e.Date
		}
		key := e.Date.Format(dateLayout)
		if seen[key] {
			summary.DuplicateDates++
		}
		seen[key] = true
		if e.Pitcher == "" || e.Team == "" || e.Opponent == "" {
			summary.MissingFields++
		}
	}
	return summary
}
