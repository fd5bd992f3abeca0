package health

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

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

// stubReader serves a single fixed prediction.
type stubReader struct {
	result *models.PredictionResult
}

func (s *stubReader) Latest() (*models.PredictionResult, error) {
	if s.result == nil {
		return nil, models.ErrNotFound
	}
	return s.result, nil
}

func (s *stubReader) Get(date string) (*models.PredictionResult, error) {
	if s.result == nil || s.result.Date != date {
		return nil, models.ErrNotFound
	}
	return s.result, nil
}

func (s *stubReader) Dates() ([]string, error) {
	if s.result == nil {
		return nil, nil
	}
	return []string{s.result.Date}, nil
}

func newTestServer(reader PredictionReader) *Server {
	return NewServer(Config{
		ServiceName: "forecastd",
		Version:     "test",
		Port:        "0",
		Logger:      testLogger(),
		Predictions: reader,
	})
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "forecastd", body.Service)
}

func TestHandleReadyReflectsReadiness(t *testing.T) {
	s := newTestServer(nil)

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.SetReady(true)
	rec = httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleLatestPrediction(t *testing.T) {
	reader := &stubReader{result: &models.PredictionResult{Date: "2024-07-15", Probability: 0.012}}
	s := newTestServer(reader)

	rec := httptest.NewRecorder()
	s.handleLatestPrediction(rec, httptest.NewRequest(http.MethodGet, "/api/v1/prediction/latest", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.PredictionResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2024-07-15", body.Date)
}

func TestHandlePredictionByDate(t *testing.T) {
	reader := &stubReader{result: &models.PredictionResult{Date: "2024-07-15"}}
	s := newTestServer(reader)

	rec := httptest.NewRecorder()
	s.handlePredictionByDate(rec, httptest.NewRequest(http.MethodGet, "/api/v1/prediction/2024-07-15", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	s.handlePredictionByDate(rec, httptest.NewRequest(http.MethodGet, "/api/v1/prediction/2024-07-16", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	s.handlePredictionByDate(rec, httptest.NewRequest(http.MethodGet, "/api/v1/prediction/not-a-date", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
