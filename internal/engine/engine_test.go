package engine

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jleboube/no-hitter-analysis/internal/analyzer"
	"github.com/jleboube/no-hitter-analysis/internal/history"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func eventOn(dateStr string) models.HistoricalEvent {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	return models.HistoricalEvent{Date: d, Pitcher: "P", Team: "NYY", Opponent: "BOS"}
}

func TestBaseRateSingleEvent(t *testing.T) {
	events := []models.HistoricalEvent{eventOn("2024-06-01")}
	want := 1 - math.Exp(-1.0/27000.0)
	assert.InDelta(t, want, baseRate(events), 1e-12)
}

func TestMonthlyFactor(t *testing.T) {
	events := []models.HistoricalEvent{
		eventOn("2020-06-01"), eventOn("2021-06-11"), eventOn("2022-06-21"),
		eventOn("2020-04-05"),
		eventOn("2020-05-05"), eventOn("2021-07-05"), eventOn("2022-08-05"),
	}

	// 3 of 7 events in June against an expected 1 per month.
	assert.InDelta(t, 3.0, monthlyFactor(events, time.June), 1e-9)
	assert.InDelta(t, 1.0, monthlyFactor(events, time.April), 1e-9)
	// No September events: neutral, not zero.
	assert.InDelta(t, 1.0, monthlyFactor(events, time.September), 1e-9)
}

func TestDateFactorNotableDates(t *testing.T) {
	events := []models.HistoricalEvent{
		eventOn("1990-04-27"), eventOn("2010-04-27"),
		eventOn("1995-06-15"), eventOn("1996-06-15"), eventOn("1997-06-15"),
		eventOn("2000-07-01"), eventOn("2001-07-02"), eventOn("2002-07-03"),
		eventOn("2003-07-04"), eventOn("2004-07-05"),
	}

	// 2 events of 10 on April 27: 2 / (10/365) = 73.
	got := dateFactor(events, time.Date(2024, 4, 27, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 73.0, got, 1e-9)

	// June 15 clusters harder but is not a tracked date.
	got = dateFactor(events, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestDecadalFactor(t *testing.T) {
	events := []models.HistoricalEvent{
		eventOn("2021-05-01"), eventOn("2023-08-01"), eventOn("1995-06-01"),
	}

	// Weights: 2020s = 1, 1990s = e^(-0.6). Target decade share applied directly.
	want := 1.0 / (1.0 + math.Exp(-0.6))
	got := decadalFactor(events, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, want, got, 1e-9)

	// Target decade with no recorded events stays neutral.
	got = decadalFactor(events, time.Date(2031, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestRecencyAdjustment(t *testing.T) {
	events := []models.HistoricalEvent{eventOn("2020-01-01"), eventOn("2020-12-31")}
	// Mean gap is 365 days.

	// Within the mean gap: neutral.
	got := recencyAdjustment(events, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 1.0, got, 1e-9)

	// One full mean gap of excess: +10%.
	got = recencyAdjustment(events, time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 1.1, got, 1e-9)

	// Extreme drought caps at 2.0.
	got = recencyAdjustment(events, time.Date(2080, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestRecencyAdjustmentIgnoresLaterEvents(t *testing.T) {
	events := []models.HistoricalEvent{
		eventOn("2010-01-01"),
		eventOn("2011-01-01"),
		eventOn("2020-01-01"),
	}

	// A backdated target only sees the drought as of that date: the 2020
	// event must not reset it. Mean gap over the prior events is 365 days;
	// 2011-01-01 to 2016-06-01 is 1978 days.
	got := recencyAdjustment(events, time.Date(2016, 6, 1, 0, 0, 0, 0, time.UTC))
	want := 1.0 + 0.1*((1978.0-365.0)/365.0)
	assert.InDelta(t, want, got, 1e-9)

	// Fewer than two prior events: neutral.
	got = recencyAdjustment(events, time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestPerformanceFactorBands(t *testing.T) {
	elite := models.PitcherStats{ERA: 2.0, WHIP: 0.9, KPerNine: 11.0, QualityStarts: 14}
	poor := models.PitcherStats{ERA: 5.5, WHIP: 1.6, KPerNine: 6.0, QualityStarts: 3}
	neutral := models.PitcherStats{ERA: 4.0, WHIP: 1.3, KPerNine: 7.0, QualityStarts: 5}

	assert.InDelta(t, 2.5, performanceFactor(elite), 1e-9)
	assert.InDelta(t, 0.8*0.85, performanceFactor(poor), 1e-9)
	assert.InDelta(t, 1.0, performanceFactor(neutral), 1e-9)
	assert.Greater(t, performanceFactor(elite), performanceFactor(poor))
}

func TestPerformanceFactorHotStreakRequiresAllThree(t *testing.T) {
	// ERA and WHIP qualify but strikeouts fall short of the hot-streak gate.
	almost := models.PitcherStats{ERA: 2.4, WHIP: 1.02, KPerNine: 8.0, QualityStarts: 5}
	got := performanceFactor(almost)
	assert.InDelta(t, 1.35*1.1, got, 1e-9)
}

func TestConfidenceIntervalDeterministicAndOrdered(t *testing.T) {
	first := confidenceInterval(0.01, 500, "2024-07-15")
	second := confidenceInterval(0.01, 500, "2024-07-15")
	assert.Equal(t, first, second)

	assert.LessOrEqual(t, first.Lower, first.Upper)
	assert.GreaterOrEqual(t, first.Lower, 0.1)
	assert.LessOrEqual(t, first.Upper, 10.0)
	assert.LessOrEqual(t, first.Lower, 1.0)
	assert.GreaterOrEqual(t, first.Upper, 1.0)
}

func TestSamplePercentileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	assert.InDelta(t, 3.25, samplePercentile(sorted, 75), 1e-9)
	assert.InDelta(t, 1.75, samplePercentile(sorted, 25), 1e-9)
	assert.InDelta(t, 4.0, samplePercentile(sorted, 100), 1e-9)
}

// stubSelector returns a fixed slate or error and counts invocations.
type stubSelector struct {
	candidates []models.CandidateAgent
	err        error
	calls      int
}

func (s *stubSelector) Candidates(ctx context.Context, date time.Time) ([]models.CandidateAgent, error) {
	s.calls++
	return s.candidates, s.err
}

// failingStore simulates an unreadable historical table.
type failingStore struct{}

func (failingStore) Load(ctx context.Context) ([]models.HistoricalEvent, error) {
	return nil, models.ErrDataUnavailable
}

func newTestEngine(t *testing.T, sel CandidateSelector) *Engine {
	t.Helper()
	dir := t.TempDir()
	log := testLogger()
	w := analyzer.NewWeatherAnalyzer("", "", dir, nil, log)
	p := analyzer.NewPitcherAnalyzer(dir, log)
	s := analyzer.NewStadiumAnalyzer(dir, log)
	return New(history.NewEmbeddedStore(), sel, w, p, s, 200, log)
}

func predictionDate() time.Time {
	return time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
}

func TestPredictFatalWithoutHistory(t *testing.T) {
	e := newTestEngine(t, &stubSelector{err: errors.New("unused")})
	e.store = failingStore{}

	_, err := e.Predict(context.Background(), predictionDate())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDataUnavailable)
}

func TestPredictGenericFallback(t *testing.T) {
	e := newTestEngine(t, &stubSelector{err: errors.New("all sources down")})

	result, err := e.Predict(context.Background(), predictionDate())
	require.NoError(t, err)

	assert.Nil(t, result.SelectedAgent)
	assert.GreaterOrEqual(t, result.Probability, 0.0005)
	assert.LessOrEqual(t, result.Probability, 0.15)
	assert.InDelta(t, result.Probability*100, result.ProbabilityPercent, 1e-9)
	assert.NotEmpty(t, result.Explanation)
	assert.LessOrEqual(t, result.ConfidenceInterval.Lower, result.ConfidenceInterval.Upper)

	for _, key := range []string{
		"base_rate", "monthly_factor", "date_factor", "decadal_factor",
		"recency_adjustment", "weather_factor", "pitcher_factor", "stadium_factor",
	} {
		assert.Contains(t, result.Factors, key)
	}

	require.NotNil(t, result.CurrentConditions.Weather)
	require.NotNil(t, result.CurrentConditions.PitcherForm)
	require.NotNil(t, result.CurrentConditions.Stadium)
}

func TestPredictSelectsBestCandidate(t *testing.T) {
	elite := models.CandidateAgent{
		Name: "Elite Arm", Team: "SD", Opponent: "LAD", IsHome: true,
		Stats: models.PitcherStats{ERA: 2.0, WHIP: 0.9, KPerNine: 11.0, QualityStarts: 14},
	}
	poor := models.CandidateAgent{
		Name: "Struggling Arm", Team: "COL", Opponent: "ARI", IsHome: true,
		Stats: models.PitcherStats{ERA: 5.5, WHIP: 1.6, KPerNine: 6.0, QualityStarts: 3},
	}
	e := newTestEngine(t, &stubSelector{candidates: []models.CandidateAgent{poor, elite}})

	result, err := e.Predict(context.Background(), predictionDate())
	require.NoError(t, err)

	require.NotNil(t, result.SelectedAgent)
	assert.Equal(t, "Elite Arm", result.SelectedAgent.Name)
	assert.InDelta(t, 2.5, result.Factors["pitcher_factor"], 1e-9)
	assert.GreaterOrEqual(t, result.Probability, 0.0001)
	assert.LessOrEqual(t, result.Probability, 0.25)

	require.NotNil(t, result.CurrentConditions.PitcherForm)
	assert.Equal(t, "Elite Arm", result.CurrentConditions.PitcherForm.PitcherName)
	require.NotNil(t, result.CurrentConditions.Stadium)
	assert.Equal(t, "Petco Park", result.CurrentConditions.Stadium.Stadium)
}

func TestPredictEmptySlateFallsBackToGeneric(t *testing.T) {
	e := newTestEngine(t, &stubSelector{candidates: nil})

	result, err := e.Predict(context.Background(), predictionDate())
	require.NoError(t, err)
	assert.Nil(t, result.SelectedAgent)
	assert.GreaterOrEqual(t, result.Probability, 0.0005)
	assert.LessOrEqual(t, result.Probability, 0.15)
}

func TestPredictMemoizedPerDate(t *testing.T) {
	sel := &stubSelector{candidates: []models.CandidateAgent{{
		Name: "Repeat Arm", Team: "SEA", Opponent: "HOU", IsHome: true,
		Stats: models.DefaultPitcherStats(),
	}}}
	e := newTestEngine(t, sel)

	first, err := e.Predict(context.Background(), predictionDate())
	require.NoError(t, err)
	second, err := e.Predict(context.Background(), predictionDate())
	require.NoError(t, err)

	assert.Equal(t, 1, sel.calls)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Probability, second.Probability)
}

func TestPredictDeterministicAcrossEngines(t *testing.T) {
	slate := []models.CandidateAgent{
		{
			Name: "Repeat Arm", Team: "SEA", Opponent: "HOU", IsHome: true,
			Stats: models.PitcherStats{ERA: 3.1, WHIP: 1.12, KPerNine: 9.2, QualityStarts: 10},
		},
	}

	first, err := newTestEngine(t, &stubSelector{candidates: slate}).Predict(context.Background(), predictionDate())
	require.NoError(t, err)
	second, err := newTestEngine(t, &stubSelector{candidates: slate}).Predict(context.Background(), predictionDate())
	require.NoError(t, err)

	assert.Equal(t, first.Probability, second.Probability)
	assert.Equal(t, first.ConfidenceInterval, second.ConfidenceInterval)
	assert.Equal(t, first.Factors, second.Factors)
}
