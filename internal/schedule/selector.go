package schedule

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/logger"
	"github.com/jleboube/no-hitter-analysis/internal/metrics"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// Selector walks the candidate sources in order until one produces a
// non-empty slate. Results are cached per date so repeated predictions for
// the same day don't re-hit the live feeds.
type Selector struct {
	sources []CandidateSource
	cache   *gocache.Cache
	predLog *logger.PredictionLogger
}

// NewSelector builds a selector over the given sources with a per-date
// result cache.
func NewSelector(sources []CandidateSource, ttl time.Duration, log *logrus.Logger) *Selector {
	return &Selector{
		sources: sources,
		cache:   gocache.New(ttl, 2*ttl),
		predLog: logger.NewPredictionLogger(log),
	}
}

// Candidates returns the probable starters for the date. When every tier
// fails, the error wraps models.ErrCandidateSourceExhausted and the caller
// falls back to a generic prediction.
func (s *Selector) Candidates(ctx context.Context, date time.Time) ([]models.CandidateAgent, error) {
	key := date.Format("2006-01-02")
	if cached, ok := s.cache.Get(key); ok {
		metrics.RecordCacheHit("candidate_slate")
		return cached.([]models.CandidateAgent), nil
	}
	metrics.RecordCacheMiss("candidate_slate")

	var lastErr error
	for i, source := range s.sources {
		candidates, err := source.Candidates(ctx, date)
		if err == nil && len(candidates) > 0 {
			s.cache.Set(key, candidates, gocache.DefaultExpiration)
			return candidates, nil
		}
		lastErr = err
		metrics.RecordSourceFallback(source.Name())

		next := "none"
		if i+1 < len(s.sources) {
			next = s.sources[i+1].Name()
		}
		s.predLog.LogSourceFallback(source.Name(), next, err)
	}

	return nil, fmt.Errorf("%w: %v", models.ErrCandidateSourceExhausted, lastErr)
}
