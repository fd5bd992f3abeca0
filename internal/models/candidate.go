package models

// PitcherStats holds the season statistics used to score a probable starter.
// Fields missing from a live source are filled with the fixed defaults below
// so that a partially-populated feed never produces zeroed factors.
type PitcherStats struct {
	ERA           float64 `json:"era"`
	WHIP          float64 `json:"whip"`
	KPerNine      float64 `json:"k_per_nine"`
	QualityStarts int     `json:"quality_starts"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	InningsPitched float64 `json:"innings_pitched"`
	Strikeouts    int     `json:"strikeouts"`
	Walks         int     `json:"walks"`
	HitsAllowed   int     `json:"hits_allowed"`
}

// DefaultPitcherStats returns the league-typical stat line substituted when a
// source cannot supply individual numbers.
func DefaultPitcherStats() PitcherStats {
	return PitcherStats{
		ERA:            3.80,
		WHIP:           1.25,
		KPerNine:       8.5,
		QualityStarts:  8,
		Wins:           6,
		Losses:         4,
		InningsPitched: 75.0,
		Strikeouts:     70,
		Walks:          25,
		HitsAllowed:    65,
	}
}

// CandidateAgent is a scheduled probable starter for a given date. Created
// per prediction request by the candidate selector and never persisted.
type CandidateAgent struct {
	Name     string       `json:"name"`
	Team     string       `json:"team"`
	Opponent string       `json:"opponent"`
	Venue    string       `json:"venue"`
	IsHome   bool         `json:"is_home"`
	Stats    PitcherStats `json:"stats"`
}

// VenueTeam returns the team code whose park the candidate pitches in.
func (c CandidateAgent) VenueTeam() string {
	if c.IsHome {
		return c.Team
	}
	return c.Opponent
}
