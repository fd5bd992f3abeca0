package history

import (
	"fmt"

	"github.com/jleboube/no-hitter-analysis/internal/config"
	"github.com/jleboube/no-hitter-analysis/internal/database"
)

// NewStore builds the configured store backend. db may be nil unless the
// configured source is postgres.
func NewStore(cfg *config.Config, db *database.DB) (Store, error) {
	switch cfg.History.Source {
	case "embedded":
		return NewEmbeddedStore(), nil
	case "csv":
		return NewCSVStore(cfg.History.CSVPath), nil
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres history source requires a database connection")
		}
		return NewPostgresStore(db), nil
	default:
		return nil, fmt.Errorf("unknown history source: %s", cfg.History.Source)
	}
}
