package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/fetch"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// ScoreboardSource is the secondary candidate source. Its feed lists the
// day's matchups and venues but carries no probable-pitcher identities, so it
// synthesizes placeholder starters with the default stat line.
type ScoreboardSource struct {
	baseURL string
	client  *fetch.RateLimitedHTTPClient
	logger  *logrus.Logger
}

// NewScoreboardSource builds the secondary source against baseURL
// (e.g. https://site.api.espn.com/apis/site/v2/sports/baseball/mlb).
func NewScoreboardSource(baseURL string, client *fetch.RateLimitedHTTPClient, logger *logrus.Logger) *ScoreboardSource {
	return &ScoreboardSource{baseURL: baseURL, client: client, logger: logger}
}

func (s *ScoreboardSource) Name() string { return "scoreboard" }

type scoreboardResponse struct {
	Events []struct {
		Competitions []struct {
			Competitors []struct {
				HomeAway string `json:"homeAway"`
				Team     struct {
					Abbreviation string `json:"abbreviation"`
					DisplayName  string `json:"displayName"`
				} `json:"team"`
			} `json:"competitors"`
			Venue struct {
				FullName string `json:"fullName"`
			} `json:"venue"`
		} `json:"competitions"`
	} `json:"events"`
}

// Candidates returns two placeholder starters per scheduled matchup, labeled
// by team role.
func (s *ScoreboardSource) Candidates(ctx context.Context, date time.Time) ([]models.CandidateAgent, error) {
	endpoint := fmt.Sprintf("%s/scoreboard?dates=%s", s.baseURL, date.Format("20060102"))

	var resp scoreboardResponse
	if err := s.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, models.NewSourceError(s.Name(), "scoreboard fetch failed", err)
	}

	var candidates []models.CandidateAgent
	for _, event := range resp.Events {
		for _, comp := range event.Competitions {
			var home, away string
			for _, c := range comp.Competitors {
				code := teamCode(c.Team.Abbreviation, c.Team.DisplayName)
				if c.HomeAway == "home" {
					home = code
				} else {
					away = code
				}
			}
			if home == "" || away == "" {
				continue
			}

			candidates = append(candidates,
				models.CandidateAgent{
					Name:     fmt.Sprintf("%s Starter", home),
					Team:     home,
					Opponent: away,
					Venue:    comp.Venue.FullName,
					IsHome:   true,
					Stats:    models.DefaultPitcherStats(),
				},
				models.CandidateAgent{
					Name:     fmt.Sprintf("%s Starter", away),
					Team:     away,
					Opponent: home,
					Venue:    comp.Venue.FullName,
					IsHome:   false,
					Stats:    models.DefaultPitcherStats(),
				},
			)
		}
	}

	if len(candidates) == 0 {
		return nil, models.NewSourceError(s.Name(), "no matchups scheduled", nil)
	}

	s.logger.WithFields(logrus.Fields{
		"date":       date.Format("2006-01-02"),
		"candidates": len(candidates),
	}).Debug("Scoreboard candidates synthesized")
	return candidates, nil
}
