// Package schedule selects the candidate probable starters for a given date.
//
// Three sources are tried in order: the MLB Stats API, a secondary scoreboard
// feed with a looser schema, and a fully synthetic generator. The chain
// guarantees a non-empty candidate list for any in-season date.
package schedule

import (
	"context"
	"time"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// CandidateSource produces the probable starters scheduled for a date.
type CandidateSource interface {
	Name() string
	Candidates(ctx context.Context, date time.Time) ([]models.CandidateAgent, error)
}
