package analyzer

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestWeatherAnalyzer(t *testing.T) *WeatherAnalyzer {
	t.Helper()
	return NewWeatherAnalyzer("", "", t.TempDir(), nil, testLogger())
}

func TestSimulatedSampleDeterministic(t *testing.T) {
	a := newTestWeatherAnalyzer(t)
	date := time.Date(2021, 6, 2, 0, 0, 0, 0, time.UTC)

	first, ok := a.SimulatedSample("DET", date)
	require.True(t, ok)
	second, ok := a.SimulatedSample("DET", date)
	require.True(t, ok)
	assert.Equal(t, first, second)

	// Different team on the same date draws a different stream
	other, ok := a.SimulatedSample("NYY", date)
	require.True(t, ok)
	assert.NotEqual(t, first, other)
}

func TestSimulatedSampleBounds(t *testing.T) {
	a := newTestWeatherAnalyzer(t)

	for _, team := range TeamCodes {
		for month := time.April; month <= time.October; month++ {
			date := time.Date(2023, month, 15, 0, 0, 0, 0, time.UTC)
			s, ok := a.SimulatedSample(team, date)
			require.True(t, ok, "team %s", team)

			assert.GreaterOrEqual(t, s.Humidity, 20.0)
			assert.LessOrEqual(t, s.Humidity, 95.0)
			assert.GreaterOrEqual(t, s.WindSpeed, 2.0)
			assert.LessOrEqual(t, s.WindSpeed, 15.0)
			assert.Contains(t, []int{0, 1}, s.Precipitation)
			assert.Contains(t, []string{"Clear", "Rain"}, s.Conditions)
		}
	}
}

func TestSimulatedSampleUnknownTeam(t *testing.T) {
	a := newTestWeatherAnalyzer(t)
	_, ok := a.SimulatedSample("XYZ", time.Now())
	assert.False(t, ok)
}

func TestWeatherFactorPrecipitationDominates(t *testing.T) {
	a := newTestWeatherAnalyzer(t)
	patterns := &WeatherPatterns{SampleCount: 1}

	// All other metrics neutral, precipitation present
	wet := &models.WeatherSample{Temperature: 60, Humidity: 70, WindSpeed: 12, Precipitation: 1}
	assert.Less(t, a.Factor(wet, patterns), 1.0)

	// Same sample without precipitation
	dry := &models.WeatherSample{Temperature: 60, Humidity: 70, WindSpeed: 12, Precipitation: 0}
	assert.Greater(t, a.Factor(dry, patterns), 1.0)

	// Even fully ideal temperature, humidity and wind cannot outweigh rain
	idealButWet := &models.WeatherSample{Temperature: 72, Humidity: 45, WindSpeed: 6, Precipitation: 1}
	assert.Less(t, a.Factor(idealButWet, patterns), 1.0)
	assert.InDelta(t, 1.2*1.15*1.1*0.6, a.Factor(idealButWet, patterns), 1e-9)
}

func TestWeatherFactorClamped(t *testing.T) {
	a := newTestWeatherAnalyzer(t)
	patterns := &WeatherPatterns{SampleCount: 1}

	best := &models.WeatherSample{Temperature: 72, Humidity: 45, WindSpeed: 6, Precipitation: 0}
	f := a.Factor(best, patterns)
	assert.LessOrEqual(t, f, 2.0)
	assert.GreaterOrEqual(t, f, 0.5)

	worst := &models.WeatherSample{Temperature: 100, Humidity: 90, WindSpeed: 25, Precipitation: 1}
	f = a.Factor(worst, patterns)
	assert.GreaterOrEqual(t, f, 0.5)
}

func TestWeatherFactorNeutralOnMissingInputs(t *testing.T) {
	a := newTestWeatherAnalyzer(t)
	assert.Equal(t, 1.0, a.Factor(nil, &WeatherPatterns{}))
	assert.Equal(t, 1.0, a.Factor(&models.WeatherSample{}, nil))
}

func TestDeriveWeatherPatternsIdempotent(t *testing.T) {
	dir := t.TempDir()
	a := NewWeatherAnalyzer("", "", dir, nil, testLogger())
	events := []models.HistoricalEvent{
		{Date: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC), Pitcher: "Domingo German", Team: "NYY", Opponent: "OAK"},
		{Date: time.Date(2022, 6, 29, 0, 0, 0, 0, time.UTC), Pitcher: "Cristian Javier", Team: "HOU", Opponent: "NYY"},
	}

	first, err := a.DerivePatterns(events)
	require.NoError(t, err)
	second, err := a.DerivePatterns(events)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.SampleCount)

	// A fresh analyzer over the same cache directory reproduces the summary
	b := NewWeatherAnalyzer("", "", dir, nil, testLogger())
	again, err := b.DerivePatterns(events)
	require.NoError(t, err)
	assert.Equal(t, *first, *again)
}

func TestWeatherExplanation(t *testing.T) {
	a := newTestWeatherAnalyzer(t)

	s := &models.WeatherSample{Temperature: 72, Humidity: 45, WindSpeed: 6, Precipitation: 0}
	text := a.Explanation(s)
	assert.Contains(t, text, "ideal temperature")
	assert.Contains(t, text, "clear conditions")

	assert.Equal(t, "Weather data unavailable", a.Explanation(nil))
}
