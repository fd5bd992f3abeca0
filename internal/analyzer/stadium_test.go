package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

func TestCategorizeAltitude(t *testing.T) {
	assert.Equal(t, "sea_level", CategorizeAltitude(6))
	assert.Equal(t, "low", CategorizeAltitude(340))
	assert.Equal(t, "moderate", CategorizeAltitude(595))
	assert.Equal(t, "high", CategorizeAltitude(1100))
	assert.Equal(t, "extreme", CategorizeAltitude(5200))
}

func TestPitcherFriendlinessScores(t *testing.T) {
	a := NewStadiumAnalyzer(t.TempDir(), testLogger())

	// Oakland: pitcher friendly with the biggest foul territory in the league
	assert.InDelta(t, 8.5, PitcherFriendliness(a.Characteristics("OAK")), 1e-9)

	// Coors: extreme hitter park, large foul territory barely helps
	assert.InDelta(t, 3.0, PitcherFriendliness(a.Characteristics("COL")), 1e-9)

	// Fenway: hitter friendly with almost no foul room
	assert.InDelta(t, 2.0, PitcherFriendliness(a.Characteristics("BOS")), 1e-9)

	// Tropicana: pitcher friendly plus turf and a fixed roof
	assert.InDelta(t, 8.8, PitcherFriendliness(a.Characteristics("TB")), 1e-9)

	// Unknown team falls back to a neutral park
	assert.InDelta(t, 5.0, PitcherFriendliness(a.Characteristics("XYZ")), 1e-9)
}

func TestDeriveStadiumPatterns(t *testing.T) {
	dir := t.TempDir()
	a := NewStadiumAnalyzer(dir, testLogger())
	events := sampleEvents()

	patterns, err := a.DerivePatterns(events)
	require.NoError(t, err)

	total := 0
	for _, c := range patterns.AltitudeDistribution {
		total += c
	}
	assert.Equal(t, len(events), total)
	assert.Greater(t, patterns.FriendlinessAvg, 0.0)

	// Fresh analyzer over the same cache reproduces the summary
	b := NewStadiumAnalyzer(dir, testLogger())
	again, err := b.DerivePatterns(events)
	require.NoError(t, err)
	assert.Equal(t, *patterns, *again)
}

func TestDeriveStadiumPatternsRetractableCountsAsDome(t *testing.T) {
	a := NewStadiumAnalyzer(t.TempDir(), testLogger())
	events := []models.HistoricalEvent{
		{Date: time.Date(2021, 5, 19, 0, 0, 0, 0, time.UTC), Pitcher: "A", Team: "SEA"}, // retractable_dome
		{Date: time.Date(2021, 6, 24, 0, 0, 0, 0, time.UTC), Pitcher: "B", Team: "TB"},  // fixed dome
		{Date: time.Date(2021, 7, 28, 0, 0, 0, 0, time.UTC), Pitcher: "C", Team: "NYY"}, // outdoor
	}

	patterns, err := a.DerivePatterns(events)
	require.NoError(t, err)

	// A retractable roof tallies as both dome and retractable, so the three
	// events yield a dome count of 3 over 3 observations.
	assert.InDelta(t, 100.0, patterns.DomePct, 1e-9)

	obs, ok := a.cache.get("stadium_analysis_SEA_2021-05-19")
	require.True(t, ok)
	assert.Equal(t, 1, obs.DomeFactor)
	assert.Equal(t, 1, obs.RetractableFactor)
}

func TestStadiumFactorExtremeAltitudePenalized(t *testing.T) {
	a := NewStadiumAnalyzer(t.TempDir(), testLogger())
	patterns, err := a.DerivePatterns(sampleEvents())
	require.NoError(t, err)

	coors, info := a.Factor("COL", 0, patterns)
	require.NotNil(t, info)
	assert.Equal(t, "extreme", info.AltitudeCategory)
	assert.Less(t, coors, 1.0)

	petco, _ := a.Factor("SD", 0, patterns)
	assert.Greater(t, petco, coors)
}

func TestStadiumFactorDomeShelteredFromRain(t *testing.T) {
	a := NewStadiumAnalyzer(t.TempDir(), testLogger())
	patterns, err := a.DerivePatterns(sampleEvents())
	require.NoError(t, err)

	dry, _ := a.Factor("TB", 0, patterns)
	wet, _ := a.Factor("TB", 1, patterns)
	assert.GreaterOrEqual(t, wet, dry)
}

func TestStadiumFactorClamped(t *testing.T) {
	a := NewStadiumAnalyzer(t.TempDir(), testLogger())
	patterns, err := a.DerivePatterns(sampleEvents())
	require.NoError(t, err)

	for _, team := range TeamCodes {
		f, info := a.Factor(team, 1, patterns)
		assert.GreaterOrEqual(t, f, 0.5, "team %s", team)
		assert.LessOrEqual(t, f, 2.0, "team %s", team)
		assert.NotNil(t, info)
	}
}

func TestStadiumFactorNeutralWithoutPatterns(t *testing.T) {
	a := NewStadiumAnalyzer(t.TempDir(), testLogger())
	f, info := a.Factor("NYY", 0, nil)
	assert.Equal(t, 1.0, f)
	require.NotNil(t, info)
	assert.Equal(t, "Yankee Stadium", info.Stadium)
}

func TestCandidateVenueFactorBounds(t *testing.T) {
	a := NewStadiumAnalyzer(t.TempDir(), testLogger())

	for _, team := range TeamCodes {
		f := a.CandidateVenueFactor(team)
		assert.GreaterOrEqual(t, f, 0.7, "team %s", team)
		assert.LessOrEqual(t, f, 1.4, "team %s", team)
	}

	// Coors bottoms out at the clamp floor
	assert.Equal(t, 0.7, a.CandidateVenueFactor("COL"))

	// Petco: sea level and very pitcher friendly
	assert.InDelta(t, 1.05*1.2, a.CandidateVenueFactor("SD"), 1e-9)
}

func TestStadiumExplanation(t *testing.T) {
	a := NewStadiumAnalyzer(t.TempDir(), testLogger())

	_, info := a.Factor("OAK", 0, nil)
	text := a.Explanation(info)
	assert.Contains(t, text, "pitcher-friendly park")
	assert.Contains(t, text, "large foul territory")
	assert.Contains(t, text, "marine layer")

	assert.Equal(t, "Stadium data unavailable", a.Explanation(nil))
}

func TestObservationCachedPerEvent(t *testing.T) {
	a := NewStadiumAnalyzer(t.TempDir(), testLogger())
	events := []models.HistoricalEvent{
		{Date: time.Date(2021, 5, 5, 0, 0, 0, 0, time.UTC), Pitcher: "John Means", Team: "BAL", Opponent: "SEA"},
	}
	_, err := a.DerivePatterns(events)
	require.NoError(t, err)

	obs, ok := a.cache.get("stadium_analysis_BAL_2021-05-05")
	require.True(t, ok)
	assert.Equal(t, "Oriole Park at Camden Yards", obs.Stadium)
}
