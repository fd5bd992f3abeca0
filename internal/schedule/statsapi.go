package schedule

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/fetch"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// StatsAPISource is the primary candidate source, backed by the MLB Stats
// API schedule endpoint with probable pitchers and season stats hydrated.
type StatsAPISource struct {
	baseURL string
	client  *fetch.RateLimitedHTTPClient
	logger  *logrus.Logger
}

// NewStatsAPISource builds the primary source against baseURL
// (e.g. https://statsapi.mlb.com/api/v1).
func NewStatsAPISource(baseURL string, client *fetch.RateLimitedHTTPClient, logger *logrus.Logger) *StatsAPISource {
	return &StatsAPISource{baseURL: baseURL, client: client, logger: logger}
}

func (s *StatsAPISource) Name() string { return "statsapi" }

type statsAPISide struct {
	Team struct {
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
	ProbablePitcher *struct {
		FullName string `json:"fullName"`
		Stats    []struct {
			Splits []struct {
				Stat struct {
					ERA               string `json:"era"`
					WHIP              string `json:"whip"`
					StrikeoutsPer9    string `json:"strikeoutsPer9Inn"`
					QualityStarts     int    `json:"qualityStarts"`
					Wins              int    `json:"wins"`
					Losses            int    `json:"losses"`
					InningsPitched    string `json:"inningsPitched"`
					StrikeOuts        int    `json:"strikeOuts"`
					BaseOnBalls       int    `json:"baseOnBalls"`
					Hits              int    `json:"hits"`
				} `json:"stat"`
			} `json:"splits"`
		} `json:"stats"`
	} `json:"probablePitcher"`
}

type statsAPIResponse struct {
	Dates []struct {
		Games []struct {
			Teams struct {
				Home statsAPISide `json:"home"`
				Away statsAPISide `json:"away"`
			} `json:"teams"`
			Venue struct {
				Name string `json:"name"`
			} `json:"venue"`
		} `json:"games"`
	} `json:"dates"`
}

// Candidates queries the schedule for the date and returns one candidate per
// probable starter. Missing stat fields fall back to the fixed defaults.
func (s *StatsAPISource) Candidates(ctx context.Context, date time.Time) ([]models.CandidateAgent, error) {
	query := url.Values{}
	query.Set("sportId", "1")
	query.Set("date", date.Format("2006-01-02"))
	query.Set("hydrate", "team,probablePitcher(stats(group=[pitching],type=[season]))")

	var resp statsAPIResponse
	if err := s.client.GetJSON(ctx, s.baseURL+"/schedule?"+query.Encode(), &resp); err != nil {
		return nil, models.NewSourceError(s.Name(), "schedule fetch failed", err)
	}

	var candidates []models.CandidateAgent
	for _, d := range resp.Dates {
		for _, g := range d.Games {
			home := g.Teams.Home
			away := g.Teams.Away
			if c, ok := sideCandidate(home, away, g.Venue.Name, true); ok {
				candidates = append(candidates, c)
			}
			if c, ok := sideCandidate(away, home, g.Venue.Name, false); ok {
				candidates = append(candidates, c)
			}
		}
	}

	if len(candidates) == 0 {
		return nil, models.NewSourceError(s.Name(), "no probable starters scheduled", nil)
	}

	s.logger.WithFields(logrus.Fields{
		"date":       date.Format("2006-01-02"),
		"candidates": len(candidates),
	}).Debug("Stats API candidates loaded")
	return candidates, nil
}

func sideCandidate(side, opponent statsAPISide, venue string, isHome bool) (models.CandidateAgent, bool) {
	if side.ProbablePitcher == nil || side.ProbablePitcher.FullName == "" {
		return models.CandidateAgent{}, false
	}

	stats := models.DefaultPitcherStats()
	for _, group := range side.ProbablePitcher.Stats {
		for _, split := range group.Splits {
			st := split.Stat
			overlayFloat(&stats.ERA, st.ERA)
			overlayFloat(&stats.WHIP, st.WHIP)
			overlayFloat(&stats.KPerNine, st.StrikeoutsPer9)
			overlayFloat(&stats.InningsPitched, st.InningsPitched)
			overlayInt(&stats.QualityStarts, st.QualityStarts)
			overlayInt(&stats.Wins, st.Wins)
			overlayInt(&stats.Losses, st.Losses)
			overlayInt(&stats.Strikeouts, st.StrikeOuts)
			overlayInt(&stats.Walks, st.BaseOnBalls)
			overlayInt(&stats.HitsAllowed, st.Hits)
		}
	}

	return models.CandidateAgent{
		Name:     side.ProbablePitcher.FullName,
		Team:     teamCode(side.Team.Abbreviation, side.Team.Name),
		Opponent: teamCode(opponent.Team.Abbreviation, opponent.Team.Name),
		Venue:    venue,
		IsHome:   isHome,
		Stats:    stats,
	}, true
}

// overlayFloat replaces dst when the feed supplied a parseable value.
func overlayFloat(dst *float64, raw string) {
	if raw == "" {
		return
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*dst = v
	}
}

// overlayInt replaces dst when the feed supplied a non-zero value.
func overlayInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// teamCode prefers the feed's abbreviation and falls back to a name lookup.
func teamCode(abbreviation, name string) string {
	if abbreviation != "" {
		return normalizeCode(abbreviation)
	}
	if code, ok := teamNameCodes[name]; ok {
		return code
	}
	return name
}

// normalizeCode maps feed abbreviations onto the codes used by the historical
// table and venue database.
func normalizeCode(abbr string) string {
	switch abbr {
	case "CHW":
		return "CWS"
	case "SDP":
		return "SD"
	case "SFG":
		return "SF"
	case "TBR":
		return "TB"
	case "KCR":
		return "KC"
	case "WSH":
		return "WSN"
	case "AZ":
		return "ARI"
	default:
		return abbr
	}
}

var teamNameCodes = map[string]string{
	"Arizona Diamondbacks":  "ARI",
	"Atlanta Braves":        "ATL",
	"Baltimore Orioles":     "BAL",
	"Boston Red Sox":        "BOS",
	"Chicago Cubs":          "CHC",
	"Chicago White Sox":     "CWS",
	"Cincinnati Reds":       "CIN",
	"Cleveland Guardians":   "CLE",
	"Colorado Rockies":      "COL",
	"Detroit Tigers":        "DET",
	"Houston Astros":        "HOU",
	"Kansas City Royals":    "KC",
	"Los Angeles Angels":    "LAA",
	"Los Angeles Dodgers":   "LAD",
	"Miami Marlins":         "MIA",
	"Milwaukee Brewers":     "MIL",
	"Minnesota Twins":       "MIN",
	"New York Mets":         "NYM",
	"New York Yankees":      "NYY",
	"Oakland Athletics":     "OAK",
	"Philadelphia Phillies": "PHI",
	"Pittsburgh Pirates":    "PIT",
	"San Diego Padres":      "SD",
	"San Francisco Giants":  "SF",
	"Seattle Mariners":      "SEA",
	"St. Louis Cardinals":   "STL",
	"Tampa Bay Rays":        "TB",
	"Texas Rangers":         "TEX",
	"Toronto Blue Jays":     "TOR",
	"Washington Nationals":  "WSN",
}
