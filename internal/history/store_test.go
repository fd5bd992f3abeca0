package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

func TestEmbeddedStoreLoad(t *testing.T) {
	store := NewEmbeddedStore()
	events, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, events)

	// Sorted ascending by date
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Date.Before(events[i-1].Date),
			"events out of order at index %d", i)
	}

	assert.Equal(t, 1901, events[0].Date.Year())
	last, ok := LastEventDate(events)
	require.True(t, ok)
	assert.Equal(t, 2024, last.Year())
}

func TestEmbeddedStoreLoadIsDeterministic(t *testing.T) {
	store := NewEmbeddedStore()
	first, err := store.Load(context.Background())
	require.NoError(t, err)
	second, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCSVRoundTrip(t *testing.T) {
	events := []models.HistoricalEvent{
		{Date: mustDate(t, "2021-06-02"), Pitcher: "Spencer Turnbull", Team: "DET", Opponent: "SEA", Notes: "Complete game"},
		{Date: mustDate(t, "2019-09-28"), Pitcher: "Mike Fiers", Team: "OAK", Opponent: "CIN", Notes: "Complete game"},
	}

	path := filepath.Join(t.TempDir(), "no_hitters.csv")
	require.NoError(t, WriteCSV(path, events))

	loaded, err := NewCSVStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Loaded table comes back sorted ascending
	assert.Equal(t, "Mike Fiers", loaded[0].Pitcher)
	assert.Equal(t, "Spencer Turnbull", loaded[1].Pitcher)
}

func TestCSVStoreMissingFile(t *testing.T) {
	_, err := NewCSVStore("testdata/does_not_exist.csv").Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDataUnavailable)
}

func TestValidateSummary(t *testing.T) {
	events := []models.HistoricalEvent{
		{Date: mustDate(t, "2021-06-02"), Pitcher: "A", Team: "DET", Opponent: "SEA"},
		{Date: mustDate(t, "2021-06-02"), Pitcher: "B", Team: "NYY", Opponent: "TEX"},
		{Date: mustDate(t, "2019-09-28"), Pitcher: "", Team: "OAK", Opponent: "CIN"},
	}

	summary := Validate(events)
	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 1, summary.DuplicateDates)
	assert.Equal(t, 1, summary.MissingFields)
	assert.Equal(t, 2019, summary.EarliestDate.Year())
	assert.Equal(t, 2021, summary.LatestDate.Year())
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
