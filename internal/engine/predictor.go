// Package engine combines the historical factors, the condition analyzers,
// and the candidate slate into a daily no-hitter probability.
package engine

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/analyzer"
	"github.com/jleboube/no-hitter-analysis/internal/history"
	"github.com/jleboube/no-hitter-analysis/internal/logger"
	"github.com/jleboube/no-hitter-analysis/internal/metrics"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// contextTeam anchors the generic-path condition factors to a fixed
// representative park when no candidate slate is available.
const contextTeam = "NYY"

// Probability clamps. A candidate-backed prediction may range wider than the
// generic fallback, which stays closer to the base rate.
const (
	candidateProbFloor = 0.0001
	candidateProbCeil  = 0.25
	genericProbFloor   = 0.0005
	genericProbCeil    = 0.15
)

// CandidateSelector yields the probable-starter slate for a date.
type CandidateSelector interface {
	Candidates(ctx context.Context, date time.Time) ([]models.CandidateAgent, error)
}

// Engine is the prediction pipeline. It is safe for concurrent use; pattern
// derivation is guarded and runs once per analyzer.
type Engine struct {
	store    history.Store
	selector CandidateSelector
	weather  *analyzer.WeatherAnalyzer
	pitcher  *analyzer.PitcherAnalyzer
	stadium  *analyzer.StadiumAnalyzer

	iterations int
	logger     *logrus.Logger
	predLog    *logger.PredictionLogger
	memo       *gocache.Cache

	mu              sync.Mutex
	weatherPatterns *analyzer.WeatherPatterns
	pitcherPatterns *analyzer.PitcherPatterns
	stadiumPatterns *analyzer.StadiumPatterns
}

// New builds the engine. iterations controls the Monte Carlo draw count;
// zero or negative selects the default of 1000.
func New(store history.Store, selector CandidateSelector, weather *analyzer.WeatherAnalyzer, pitcher *analyzer.PitcherAnalyzer, stadium *analyzer.StadiumAnalyzer, iterations int, log *logrus.Logger) *Engine {
	return &Engine{
		store:      store,
		selector:   selector,
		weather:    weather,
		pitcher:    pitcher,
		stadium:    stadium,
		iterations: iterations,
		logger:     log,
		predLog:    logger.NewPredictionLogger(log),
		memo:       gocache.New(15*time.Minute, 30*time.Minute),
	}
}

// Predict runs the full pipeline for the target date. A history load failure
// is fatal; every downstream failure degrades to a neutral factor or the
// generic fallback path instead.
func (e *Engine) Predict(ctx context.Context, date time.Time) (*models.PredictionResult, error) {
	start := time.Now()

	memoKey := date.Format("2006-01-02")
	if cached, ok := e.memo.Get(memoKey); ok {
		metrics.RecordCacheHit("prediction")
		result := cached.(models.PredictionResult)
		return &result, nil
	}
	metrics.RecordCacheMiss("prediction")

	events, err := e.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading historical events: %w", err)
	}

	e.ensurePatterns(events)

	hist := ComputeHistoricalFactors(events, date)
	factors := map[string]float64{
		"base_rate":          hist.BaseRate,
		"monthly_factor":     hist.MonthlyFactor,
		"date_factor":        hist.DateFactor,
		"decadal_factor":     hist.DecadalFactor,
		"recency_adjustment": hist.RecencyAdjustment,
	}

	var result *models.PredictionResult
	candidates, selErr := e.selector.Candidates(ctx, date)
	if selErr != nil || len(candidates) == 0 {
		if selErr != nil {
			e.logger.WithError(selErr).Warn("No candidate slate, producing generic prediction")
		}
		metrics.RecordGenericFallback()
		result = e.genericPrediction(ctx, date, hist, factors)
	} else {
		result = e.candidatePrediction(ctx, date, hist, factors, candidates)
	}

	result.ID = uuid.New()
	result.Date = date.Format("2006-01-02")
	result.ProbabilityPercent = result.Probability * 100
	result.ConfidenceInterval = confidenceInterval(result.Probability, e.iterations, result.Date)
	result.Timestamp = time.Now().UTC()
	result.Explanation = e.explain(date, result.Factors, result.CurrentConditions)

	selected := "none"
	if result.SelectedAgent != nil {
		selected = result.SelectedAgent.Name
	}
	e.predLog.LogFactorBreakdown(result.Date, result.Factors)
	e.predLog.LogPrediction(result.Date, result.ProbabilityPercent, selected, len(candidates), float64(time.Since(start).Milliseconds()))
	metrics.RecordPrediction(result.ProbabilityPercent, len(candidates), time.Since(start).Seconds())
	metrics.UpdateFactors(result.Factors)

	e.memo.Set(memoKey, *result, gocache.DefaultExpiration)
	return result, nil
}

// genericPrediction is the fallback when every candidate source failed. The
// condition factors use the fixed representative context and a simulated
// current form line.
func (e *Engine) genericPrediction(ctx context.Context, date time.Time, hist HistoricalFactors, factors map[string]float64) *models.PredictionResult {
	sample, _ := e.weather.CurrentSample(ctx, contextTeam, date)
	weatherFactor := e.weather.Factor(&sample, e.weatherPatterns)

	form := e.pitcher.SimulatedCurrentForm(date)
	pitcherFactor := e.pitcher.Factor(form, e.pitcherPatterns)

	stadiumFactor, info := e.stadium.Factor(contextTeam, sample.Precipitation, e.stadiumPatterns)

	factors["weather_factor"] = weatherFactor
	factors["pitcher_factor"] = pitcherFactor
	factors["stadium_factor"] = stadiumFactor

	prob := clamp(hist.Product()*weatherFactor*pitcherFactor*stadiumFactor, genericProbFloor, genericProbCeil)

	return &models.PredictionResult{
		Probability: prob,
		Factors:     factors,
		CurrentConditions: models.CurrentConditions{
			Weather:     &sample,
			PitcherForm: form,
			Stadium:     info,
		},
	}
}

// candidatePrediction scores every probable starter and reports the best one.
// Ties keep the earliest candidate in slate order.
func (e *Engine) candidatePrediction(ctx context.Context, date time.Time, hist HistoricalFactors, factors map[string]float64, candidates []models.CandidateAgent) *models.PredictionResult {
	histProduct := hist.Product()

	var (
		best        *models.CandidateAgent
		bestProb    = math.Inf(-1)
		bestWeather models.WeatherSample
		bestFactors [3]float64
	)

	for i := range candidates {
		c := candidates[i]
		venueTeam := c.VenueTeam()

		sample, _ := e.weather.CurrentSample(ctx, venueTeam, date)
		weatherFactor := e.weather.Factor(&sample, e.weatherPatterns)
		perfFactor := performanceFactor(c.Stats)
		venueFactor := e.stadium.CandidateVenueFactor(venueTeam)

		prob := clamp(histProduct*weatherFactor*perfFactor*venueFactor, candidateProbFloor, candidateProbCeil)
		if prob > bestProb {
			best = &candidates[i]
			bestProb = prob
			bestWeather = sample
			bestFactors = [3]float64{weatherFactor, perfFactor, venueFactor}
		}
	}

	factors["weather_factor"] = bestFactors[0]
	factors["pitcher_factor"] = bestFactors[1]
	factors["stadium_factor"] = bestFactors[2]

	_, info := e.stadium.Factor(best.VenueTeam(), bestWeather.Precipitation, e.stadiumPatterns)
	form := &models.PitcherFormSample{
		PitcherName:   best.Name,
		RecentERA:     best.Stats.ERA,
		RecentWHIP:    best.Stats.WHIP,
		KPerNine:      best.Stats.KPerNine,
		QualityStarts: best.Stats.QualityStarts,
	}

	return &models.PredictionResult{
		Probability:   bestProb,
		SelectedAgent: best,
		Factors:       factors,
		CurrentConditions: models.CurrentConditions{
			Weather:     &bestWeather,
			PitcherForm: form,
			Stadium:     info,
		},
	}
}

// performanceFactor scores a candidate's season line against fixed bands.
// The bands are coarser than the trailing-window analyzer thresholds because
// season aggregates smooth out start-to-start variance.
func performanceFactor(s models.PitcherStats) float64 {
	f := 1.0

	switch {
	case s.ERA <= 2.5:
		f *= 1.35
	case s.ERA <= 3.2:
		f *= 1.15
	case s.ERA > 4.5:
		f *= 0.8
	}

	switch {
	case s.WHIP <= 1.0:
		f *= 1.25
	case s.WHIP <= 1.15:
		f *= 1.1
	case s.WHIP > 1.5:
		f *= 0.85
	}

	switch {
	case s.KPerNine >= 10.0:
		f *= 1.2
	case s.KPerNine >= 8.5:
		f *= 1.1
	}

	switch {
	case s.QualityStarts >= 12:
		f *= 1.15
	case s.QualityStarts >= 8:
		f *= 1.05
	}

	if s.ERA <= 2.5 && s.WHIP <= 1.05 && s.KPerNine >= 9.0 {
		f *= 1.3
	}

	return clamp(f, 0.6, 2.5)
}

// ensurePatterns derives each analyzer's historical patterns once. A failed
// derivation logs the degradation, leaves the pattern nil so the factor stays
// neutral, and is retried on the next prediction.
func (e *Engine) ensurePatterns(events []models.HistoricalEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.weatherPatterns == nil {
		if p, err := e.weather.DerivePatterns(events); err != nil {
			e.predLog.LogAnalyzerDegraded("weather", err)
			metrics.RecordAnalyzerDegradation("weather")
		} else {
			e.weatherPatterns = p
		}
	}
	if e.pitcherPatterns == nil {
		if p, err := e.pitcher.DerivePatterns(events); err != nil {
			e.predLog.LogAnalyzerDegraded("pitcher", err)
			metrics.RecordAnalyzerDegradation("pitcher")
		} else {
			e.pitcherPatterns = p
		}
	}
	if e.stadiumPatterns == nil {
		if p, err := e.stadium.DerivePatterns(events); err != nil {
			e.predLog.LogAnalyzerDegraded("stadium", err)
			metrics.RecordAnalyzerDegradation("stadium")
		} else {
			e.stadiumPatterns = p
		}
	}
}
