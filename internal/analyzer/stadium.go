package analyzer

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// StadiumCharacteristics describes a park's physical environment.
type StadiumCharacteristics struct {
	Stadium         string
	Opened          int
	Type            string // outdoor, dome, retractable_dome
	Altitude        int    // feet above sea level
	LeftField       int
	CenterField     int
	RightField      int
	FoulTerritory   string // very_small, small, average, large, massive
	Characteristics []string
	Surface         string // grass, artificial_turf
	Climate         string
}

// unknownStadium is the fallback for team codes outside the table.
var unknownStadium = StadiumCharacteristics{
	Stadium:         "Unknown Stadium",
	Type:            "outdoor",
	Altitude:        500,
	FoulTerritory:   "average",
	Characteristics: []string{"neutral"},
	Surface:         "grass",
	Climate:         "temperate",
}

// stadiumObservation is the cached per-event venue analysis.
type stadiumObservation struct {
	Team                string   `json:"team"`
	Date                string   `json:"date"`
	Pitcher             string   `json:"pitcher"`
	Stadium             string   `json:"stadium"`
	StadiumType         string   `json:"stadium_type"`
	Altitude            int      `json:"altitude"`
	Surface             string   `json:"surface"`
	Climate             string   `json:"climate"`
	Characteristics     []string `json:"characteristics"`
	AltitudeCategory    string   `json:"altitude_category"`
	PitcherFriendliness float64  `json:"pitcher_friendliness"`
	FoulTerritorySize   string   `json:"foul_territory_size"`
	DomeFactor          int      `json:"dome_factor"`
	RetractableFactor   int      `json:"retractable_factor"`
}

// StadiumPatterns summarizes the venue environments of the historical record.
type StadiumPatterns struct {
	AltitudeDistribution map[string]int `json:"altitude_distribution"`
	TypeDistribution     map[string]int `json:"stadium_type_distribution"`
	SurfaceDistribution  map[string]int `json:"surface_distribution"`
	FriendlinessAvg      float64        `json:"friendliness_avg"`
	FriendlinessMedian   float64        `json:"friendliness_median"`
	FriendlinessStd      float64        `json:"friendliness_std"`
	FoulLargeOrMassive   int            `json:"foul_large_or_massive"`
	FoulSmallOrVerySmall int            `json:"foul_small_or_very_small"`
	FoulAverage          int            `json:"foul_average"`
	DomePct              float64        `json:"dome_pct"`
	OutdoorPct           float64        `json:"outdoor_pct"`
}

// StadiumAnalyzer scores venue environments against historical venue
// patterns.
type StadiumAnalyzer struct {
	cache  *diskCache[stadiumObservation]
	logger *logrus.Logger

	patterns *StadiumPatterns
}

// NewStadiumAnalyzer builds a stadium analyzer with its on-disk cache under
// cacheDir.
func NewStadiumAnalyzer(cacheDir string, logger *logrus.Logger) *StadiumAnalyzer {
	return &StadiumAnalyzer{
		cache:  newDiskCache[stadiumObservation](filepath.Join(cacheDir, "stadium_analysis_cache.json"), logger),
		logger: logger,
	}
}

// Characteristics returns the park profile for a team code, falling back to
// a neutral outdoor park for unknown codes.
func (a *StadiumAnalyzer) Characteristics(team string) StadiumCharacteristics {
	if c, ok := stadiumData[team]; ok {
		return c
	}
	return unknownStadium
}

// CategorizeAltitude buckets altitude in feet into ordered bands.
func CategorizeAltitude(altitude int) string {
	switch {
	case altitude < 100:
		return "sea_level"
	case altitude < 500:
		return "low"
	case altitude < 1000:
		return "moderate"
	case altitude < 2000:
		return "high"
	default:
		return "extreme"
	}
}

// PitcherFriendliness scores a park 0-10 from its characteristic tags, foul
// territory, surface and roof. 5.0 is neutral.
func PitcherFriendliness(c StadiumCharacteristics) float64 {
	score := 5.0

	// First matching tag wins
	if hasTag(c.Characteristics, "pitcher_friendly") {
		score += 2.0
	} else if hasTag(c.Characteristics, "extreme_pitcher_friendly") {
		score += 3.0
	} else if hasTag(c.Characteristics, "hitter_friendly") {
		score -= 2.0
	} else if hasTag(c.Characteristics, "extreme_hitter_friendly") {
		score -= 3.0
	}

	switch c.FoulTerritory {
	case "massive":
		score += 1.5
	case "large":
		score += 1.0
	case "small":
		score -= 0.5
	case "very_small":
		score -= 1.0
	}

	if c.Surface == "artificial_turf" {
		score += 0.3
	}
	if strings.Contains(c.Type, "dome") {
		score += 0.5
	}

	return clampFloat(score, 0, 10)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DerivePatterns builds the venue PatternSummary from the historical table
// through the on-disk cache. Computed once per analyzer lifetime.
func (a *StadiumAnalyzer) DerivePatterns(events []models.HistoricalEvent) (*StadiumPatterns, error) {
	if a.patterns != nil {
		return a.patterns, nil
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no historical events to analyze")
	}

	observations := make([]stadiumObservation, 0, len(events))
	for _, e := range events {
		key := fmt.Sprintf("stadium_analysis_%s_%s", e.Team, e.Date.Format("2006-01-02"))
		obs, ok := a.cache.get(key)
		if !ok {
			c := a.Characteristics(e.Team)
			obs = stadiumObservation{
				Team:                e.Team,
				Date:                e.Date.Format("2006-01-02"),
				Pitcher:             e.Pitcher,
				Stadium:             c.Stadium,
				StadiumType:         c.Type,
				Altitude:            c.Altitude,
				Surface:             c.Surface,
				Climate:             c.Climate,
				Characteristics:     c.Characteristics,
				AltitudeCategory:    CategorizeAltitude(c.Altitude),
				PitcherFriendliness: PitcherFriendliness(c),
				FoulTerritorySize:   c.FoulTerritory,
			}
			// A retractable_dome counts as both a dome and a retractable
			// venue, so it contributes twice to the dome share.
			if strings.Contains(c.Type, "dome") {
				obs.DomeFactor = 1
			}
			if strings.Contains(c.Type, "retractable") {
				obs.RetractableFactor = 1
			}
			a.cache.put(key, obs)
		}
		observations = append(observations, obs)
	}

	if err := a.cache.flush(); err != nil {
		a.logger.WithField("error", err.Error()).Warn("Failed to persist stadium cache")
	}

	p := &StadiumPatterns{
		AltitudeDistribution: make(map[string]int),
		TypeDistribution:     make(map[string]int),
		SurfaceDistribution:  make(map[string]int),
	}

	n := float64(len(observations))
	scores := make([]float64, 0, len(observations))
	domeCount := 0
	for _, o := range observations {
		p.AltitudeDistribution[o.AltitudeCategory]++
		p.TypeDistribution[o.StadiumType]++
		p.SurfaceDistribution[o.Surface]++
		scores = append(scores, o.PitcherFriendliness)
		domeCount += o.DomeFactor + o.RetractableFactor

		switch o.FoulTerritorySize {
		case "large", "massive":
			p.FoulLargeOrMassive++
		case "small", "very_small":
			p.FoulSmallOrVerySmall++
		default:
			p.FoulAverage++
		}
	}

	p.FriendlinessAvg = mean(scores)
	p.FriendlinessMedian = median(scores)
	p.FriendlinessStd = stddev(scores, p.FriendlinessAvg)
	p.DomePct = float64(domeCount) / n * 100
	p.OutdoorPct = float64(p.TypeDistribution["outdoor"]) / n * 100

	a.patterns = p
	return p, nil
}

// Factor scores the venue for a team against the historical patterns.
// precipitation feeds the dome interaction (a roof neutralizes rain).
// Clamped to [0.5, 2.0]. Also returns the stadium info for the conditions
// report.
func (a *StadiumAnalyzer) Factor(team string, precipitation int, patterns *StadiumPatterns) (float64, *models.StadiumInfo) {
	c := a.Characteristics(team)
	altitudeCat := CategorizeAltitude(c.Altitude)
	score := PitcherFriendliness(c)

	info := &models.StadiumInfo{
		Stadium:                  c.Stadium,
		Type:                     c.Type,
		Altitude:                 c.Altitude,
		AltitudeCategory:         altitudeCat,
		PitcherFriendlinessScore: score,
		Characteristics:          c.Characteristics,
	}

	if patterns == nil {
		return 1.0, info
	}

	factor := 1.0

	switch altitudeCat {
	case "extreme":
		factor *= 0.6
	case "high":
		factor *= 0.8
	case "moderate", "low":
		factor *= 1.1
	case "sea_level":
		factor *= 1.05
	}

	if strings.Contains(c.Type, "dome") && patterns.DomePct > 25 {
		factor *= 1.15
	}

	if score > patterns.FriendlinessAvg+1 {
		factor *= 1.2
	} else if score > patterns.FriendlinessAvg {
		factor *= 1.1
	} else if score < patterns.FriendlinessAvg-1 {
		factor *= 0.85
	}

	foulTotal := patterns.FoulLargeOrMassive + patterns.FoulSmallOrVerySmall + patterns.FoulAverage
	if foulTotal > 0 {
		largePct := float64(patterns.FoulLargeOrMassive) / float64(foulTotal)
		if (c.FoulTerritory == "large" || c.FoulTerritory == "massive") && largePct > 0.4 {
			factor *= 1.15
		} else if c.FoulTerritory == "small" || c.FoulTerritory == "very_small" {
			factor *= 0.9
		}
	}

	if c.Surface == "artificial_turf" {
		surfaceTotal := patterns.SurfaceDistribution["grass"] + patterns.SurfaceDistribution["artificial_turf"]
		if surfaceTotal > 0 {
			turfPct := float64(patterns.SurfaceDistribution["artificial_turf"]) / float64(surfaceTotal)
			if turfPct > 0.2 {
				factor *= 1.05
			}
		}
	}

	if strings.Contains(c.Type, "dome") && precipitation > 0 {
		factor *= 1.1
	}

	return clampFloat(factor, 0.5, 2.0), info
}

// CandidateVenueFactor scores a specific candidate's home venue with fixed
// altitude and friendliness bands. Clamped tighter than the generic stadium
// factor so no single park dominates candidate ranking.
func (a *StadiumAnalyzer) CandidateVenueFactor(team string) float64 {
	c := a.Characteristics(team)
	factor := 1.0

	switch CategorizeAltitude(c.Altitude) {
	case "extreme":
		factor *= 0.7
	case "high":
		factor *= 0.85
	case "moderate", "low":
		factor *= 1.1
	case "sea_level":
		factor *= 1.05
	}

	score := PitcherFriendliness(c)
	if score >= 7 {
		factor *= 1.2
	} else if score >= 6 {
		factor *= 1.1
	} else if score <= 4 {
		factor *= 0.85
	}

	return clampFloat(factor, 0.7, 1.4)
}

// Explanation describes the venue's notable traits.
func (a *StadiumAnalyzer) Explanation(info *models.StadiumInfo) string {
	if info == nil {
		return "Stadium data unavailable"
	}

	var clauses []string

	switch info.Type {
	case "dome":
		clauses = append(clauses, "controlled dome environment")
	case "retractable_dome":
		clauses = append(clauses, "retractable dome stadium")
	}

	switch info.AltitudeCategory {
	case "extreme":
		clauses = append(clauses, fmt.Sprintf("extreme altitude (%d ft)", info.Altitude))
	case "high":
		clauses = append(clauses, fmt.Sprintf("high altitude (%d ft)", info.Altitude))
	case "sea_level":
		clauses = append(clauses, "sea level stadium")
	}

	switch {
	case info.PitcherFriendlinessScore >= 7:
		clauses = append(clauses, "very pitcher-friendly park")
	case info.PitcherFriendlinessScore >= 6:
		clauses = append(clauses, "pitcher-friendly park")
	case info.PitcherFriendlinessScore <= 4:
		clauses = append(clauses, "hitter-friendly park")
	}

	if hasTag(info.Characteristics, "large_foul_territory") || hasTag(info.Characteristics, "massive_foul_territory") {
		clauses = append(clauses, "large foul territory")
	}
	if hasTag(info.Characteristics, "marine_layer") {
		clauses = append(clauses, "marine layer effects")
	}

	if len(clauses) == 0 {
		clauses = append(clauses, "neutral stadium environment")
	}

	return "Stadium: " + strings.Join(clauses, ", ")
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func stddev(values []float64, avg float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - avg
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
