package storage

import (
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func newTestStore(t *testing.T) *PredictionStore {
	t.Helper()
	return NewPredictionStore(filepath.Join(t.TempDir(), "predictions.json"), 30, testLogger())
}

func sampleResult(date string) *models.PredictionResult {
	return &models.PredictionResult{
		ID:                 uuid.New(),
		Date:               date,
		Probability:        0.012,
		ProbabilityPercent: 1.2,
		ConfidenceInterval: models.ConfidenceInterval{Lower: 0.9, Upper: 1.6},
		Factors:            map[string]float64{"base_rate": 0.0043},
		Explanation:        "Probability based on historical patterns and current conditions",
		Timestamp:          time.Date(2024, 7, 15, 6, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	want := sampleResult("2024-07-15")
	require.NoError(t, store.Save(want))

	got, err := store.Get("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Probability, got.Probability)
	assert.Equal(t, want.ConfidenceInterval, got.ConfidenceInterval)
}

func TestGetMissingDate(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get("2024-07-15")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSaveOverwritesSameDate(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleResult("2024-07-15")))

	updated := sampleResult("2024-07-15")
	updated.Probability = 0.02
	require.NoError(t, store.Save(updated))

	got, err := store.Get("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, 0.02, got.Probability)

	dates, err := store.Dates()
	require.NoError(t, err)
	assert.Len(t, dates, 1)
}

func TestRetentionPrunesOldestDates(t *testing.T) {
	store := newTestStore(t)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 35; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		require.NoError(t, store.Save(sampleResult(date)))
	}

	dates, err := store.Dates()
	require.NoError(t, err)
	require.Len(t, dates, 30)

	// The five oldest dates are gone.
	for i := 0; i < 5; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		_, err := store.Get(date)
		assert.ErrorIs(t, err, models.ErrNotFound, fmt.Sprintf("date %s should be pruned", date))
	}
	assert.Equal(t, start.AddDate(0, 0, 5).Format("2006-01-02"), dates[0])
	assert.Equal(t, start.AddDate(0, 0, 34).Format("2006-01-02"), dates[29])
}

func TestLatest(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Latest()
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, store.Save(sampleResult("2024-07-14")))
	require.NoError(t, store.Save(sampleResult("2024-07-16")))
	require.NoError(t, store.Save(sampleResult("2024-07-15")))

	got, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-16", got.Date)
}
