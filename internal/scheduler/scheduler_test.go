package scheduler

import (
	"context"
	"errors"
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

type stubRunner struct {
	result *models.PredictionResult
	err    error
	calls  int
}

func (r *stubRunner) Predict(ctx context.Context, date time.Time) (*models.PredictionResult, error) {
	r.calls++
	return r.result, r.err
}

type stubSink struct {
	saved []*models.PredictionResult
	err   error
}

func (s *stubSink) Save(result *models.PredictionResult) error {
	s.saved = append(s.saved, result)
	return s.err
}

func fixedNow(date time.Time) func() time.Time {
	return func() time.Time { return date }
}

func TestRunNowInSeason(t *testing.T) {
	runner := &stubRunner{result: &models.PredictionResult{Date: "2024-07-15", ProbabilityPercent: 1.2}}
	sink := &stubSink{}
	s := NewScheduler(runner, sink, testLogger())
	s.now = fixedNow(time.Date(2024, 7, 15, 6, 0, 0, 0, time.UTC))

	s.RunNow()

	assert.Equal(t, 1, runner.calls)
	require.Len(t, sink.saved, 1)
	assert.Equal(t, "2024-07-15", sink.saved[0].Date)
}

func TestRunNowSkipsOffSeason(t *testing.T) {
	runner := &stubRunner{result: &models.PredictionResult{}}
	sink := &stubSink{}
	s := NewScheduler(runner, sink, testLogger())
	s.now = fixedNow(time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC))

	s.RunNow()

	assert.Equal(t, 0, runner.calls)
	assert.Empty(t, sink.saved)
}

func TestRunNowDoesNotSaveOnPredictionFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("history unavailable")}
	sink := &stubSink{}
	s := NewScheduler(runner, sink, testLogger())
	s.now = fixedNow(time.Date(2024, 7, 15, 6, 0, 0, 0, time.UTC))

	s.RunNow()

	assert.Equal(t, 1, runner.calls)
	assert.Empty(t, sink.saved)
}

func TestSchedulePredictions(t *testing.T) {
	s := NewScheduler(&stubRunner{}, &stubSink{}, testLogger())

	require.NoError(t, s.SchedulePredictions([]string{"0 6 * * *", "0 7 * * *"}))
	assert.Len(t, s.jobIDs, 2)

	assert.Error(t, s.SchedulePredictions([]string{"not a cron expr"}))
}

func TestStartRequiresJobs(t *testing.T) {
	s := NewScheduler(&stubRunner{}, &stubSink{}, testLogger())
	assert.Error(t, s.Start())
	assert.False(t, s.IsRunning())
}

func TestStartAndStop(t *testing.T) {
	s := NewScheduler(&stubRunner{result: &models.PredictionResult{}}, &stubSink{}, testLogger())
	require.NoError(t, s.SchedulePredictions([]string{"0 6 * * *"}))

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	assert.Error(t, s.Start())
	assert.False(t, s.GetNextRun().IsZero())

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
	require.NoError(t, s.Stop())
}
