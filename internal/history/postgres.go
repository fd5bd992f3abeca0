package history

import (
	"context"
	"fmt"

	"github.com/jleboube/no-hitter-analysis/internal/database"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS no_hitters (
	id SERIAL PRIMARY KEY,
	date DATE NOT NULL,
	pitcher TEXT NOT NULL,
	team TEXT NOT NULL,
	opponent TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_no_hitters_date ON no_hitters (date);
`

// PostgresStore loads the historical table from the no_hitters table.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore returns a store backed by the given database.
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// InitSchema creates the no_hitters table if it does not exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	if _, err := s.db.Pool().Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Load returns every recorded event sorted ascending by date.
func (s *PostgresStore) Load(ctx context.Context) ([]models.HistoricalEvent, error) {
	rows, err := s.db.Pool().Query(ctx,
		`SELECT date, pitcher, team, opponent, notes FROM no_hitters ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: query failed: %v", models.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var events []models.HistoricalEvent
	for rows.Next() {
		var e models.HistoricalEvent
		if err := rows.Scan(&e.Date, &e.Pitcher, &e.Team, &e.Opponent, &e.Notes); err != nil {
			return nil, fmt.Errorf("%w: scan failed: %v", models.ErrDataUnavailable, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: row iteration failed: %v", models.ErrDataUnavailable, err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no_hitters table is empty", models.ErrDataUnavailable)
	}
	return events, nil
}

// ReplaceAll truncates the table and inserts the given events. Used by the
// ingest command to seed the database from the embedded dataset.
func (s *PostgresStore) ReplaceAll(ctx context.Context, events []models.HistoricalEvent) error {
	tx, err := s.db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE no_hitters`); err != nil {
		return fmt.Errorf("failed to truncate no_hitters: %w", err)
	}
	for _, e := range events {
		_, err := tx.Exec(ctx,
			`INSERT INTO no_hitters (date, pitcher, team, opponent, notes) VALUES ($1, $2, $3, $4, $5)`,
			e.Date, e.Pitcher, e.Team, e.Opponent, e.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert event on %s: %w", e.Date.Format(dateLayout), err)
		}
	}
	return tx.Commit(ctx)
}
