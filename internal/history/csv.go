package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

var csvHeader = []string{"date", "pitcher", "team", "opponent", "notes"}

// CSVStore loads the historical table from a CSV file with a header row of
// date,pitcher,team,opponent,notes.
type CSVStore struct {
	path string
}

// NewCSVStore returns a store backed by the given CSV file.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Load reads and sorts the CSV table.
func (s *CSVStore) Load(ctx context.Context) ([]models.HistoricalEvent, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s: %v", models.ErrDataUnavailable, s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %s: %v", models.ErrDataUnavailable, s.path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s has no data rows", models.ErrDataUnavailable, s.path)
	}

	events := make([]models.HistoricalEvent, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 4 {
			return nil, fmt.Errorf("%w: %s row %d has %d columns", models.ErrDataUnavailable, s.path, i+2, len(row))
		}
		date, err := time.Parse(dateLayout, row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d bad date %q", models.ErrDataUnavailable, s.path, i+2, row[0])
		}
		event := models.HistoricalEvent{
			Date:     date,
			Pitcher:  row[1],
			Team:     row[2],
			Opponent: row[3],
		}
		if len(row) > 4 {
			event.Notes = row[4]
		}
		events = append(events, event)
	}
	SortAscending(events)
	return events, nil
}

// WriteCSV writes the event table to path in the store's CSV layout. Used by
// the ingest command to materialize the embedded dataset.
func WriteCSV(path string, events []models.HistoricalEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, e := range events {
		row := []string{e.Date.Format(dateLayout), e.Pitcher, e.Team, e.Opponent, e.Notes}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("cannot write row for %s: %w", e.Date.Format(dateLayout), err)
		}
	}
	writer.Flush()
	return writer.Error()
}
