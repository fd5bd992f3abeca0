// Package storage persists prediction results as a date-keyed JSON document
// with a bounded retention window.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// defaultRetainedDates bounds the history kept on disk when no explicit
// retention is configured. Older dates are pruned on every save.
const defaultRetainedDates = 30

// PredictionStore reads and writes the prediction document. Safe for
// concurrent use within one process; writes go through a temp file rename.
type PredictionStore struct {
	path      string
	retention int
	logger    *logrus.Logger
	mu        sync.Mutex
}

// NewPredictionStore builds a store over the given JSON file path. A
// non-positive retention selects the default of 30 dates.
func NewPredictionStore(path string, retention int, logger *logrus.Logger) *PredictionStore {
	if retention <= 0 {
		retention = defaultRetainedDates
	}
	return &PredictionStore{path: path, retention: retention, logger: logger}
}

// Save upserts the result under its date key and prunes dates beyond the
// retention window.
func (s *PredictionStore) Save(result *models.PredictionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return err
	}
	all[result.Date] = *result

	if len(all) > s.retention {
		dates := sortedDates(all)
		for _, d := range dates[:len(dates)-s.retention] {
			delete(all, d)
		}
	}

	if err := s.write(all); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"date":     result.Date,
		"retained": len(all),
		"path":     s.path,
	}).Debug("Prediction persisted")
	return nil
}

// Get returns the stored prediction for a date, or models.ErrNotFound.
func (s *PredictionStore) Get(date string) (*models.PredictionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return nil, err
	}
	result, ok := all[date]
	if !ok {
		return nil, fmt.Errorf("%w: prediction for %s", models.ErrNotFound, date)
	}
	return &result, nil
}

// Latest returns the prediction for the most recent stored date, or
// models.ErrNotFound when the store is empty.
func (s *PredictionStore) Latest() (*models.PredictionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: no predictions stored", models.ErrNotFound)
	}
	dates := sortedDates(all)
	result := all[dates[len(dates)-1]]
	return &result, nil
}

// Dates lists the stored dates in ascending order.
func (s *PredictionStore) Dates() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return nil, err
	}
	return sortedDates(all), nil
}

func (s *PredictionStore) read() (map[string]models.PredictionResult, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]models.PredictionResult), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading prediction store: %w", err)
	}

	all := make(map[string]models.PredictionResult)
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decoding prediction store: %w", err)
	}
	return all, nil
}

func (s *PredictionStore) write(all map[string]models.PredictionResult) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating prediction store directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding prediction store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing prediction store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing prediction store: %w", err)
	}
	return nil
}

// The ISO date keys sort chronologically as strings.
func sortedDates(all map[string]models.PredictionResult) []string {
	dates := make([]string, 0, len(all))
	for d := range all {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
