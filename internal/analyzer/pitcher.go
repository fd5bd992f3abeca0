package analyzer

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// simulatedStart is one synthetic outing in a pitcher's trailing window.
type simulatedStart struct {
	Date         string  `json:"date"`
	StartNumber  int     `json:"start_number"`
	Innings      float64 `json:"innings"`
	Hits         int     `json:"hits"`
	Walks        int     `json:"walks"`
	Strikeouts   int     `json:"strikeouts"`
	EarnedRuns   int     `json:"earned_runs"`
	ERA          float64 `json:"era"`
	WHIP         float64 `json:"whip"`
	KPerNine     float64 `json:"k_per_nine"`
	HPerNine     float64 `json:"h_per_nine"`
	QualityStart int     `json:"quality_start"`
}

// recentWindow aggregates the most recent three outings.
type recentWindow struct {
	ERA           float64 `json:"era"`
	WHIP          float64 `json:"whip"`
	KPerNine      float64 `json:"k_per_nine"`
	HPerNine      float64 `json:"h_per_nine"`
	QualityStarts int     `json:"quality_starts"`
}

// trailingWindow aggregates the full five-outing window.
type trailingWindow struct {
	ERA         float64 `json:"era"`
	WHIP        float64 `json:"whip"`
	Shutouts    int     `json:"shutouts"`
	LowHitGames int     `json:"low_hit_games"`
}

// performanceSummary is the cached per-event pitcher simulation.
type performanceSummary struct {
	Pitcher          string           `json:"pitcher"`
	Team             string           `json:"team"`
	EventDate        string           `json:"no_hitter_date"`
	Recent3          recentWindow     `json:"recent_3_starts"`
	Last5            trailingWindow   `json:"last_5_starts"`
	IndividualStarts []simulatedStart `json:"individual_starts"`
}

// FormThresholds holds the pattern-derived cut points for factor decisions.
// ERA uses the 75th percentile (most no-hitter pitchers were at or below it),
// WHIP the 25th, K/9 the 60th, quality starts the 70th.
type FormThresholds struct {
	ERA           float64 `json:"era_threshold"`
	WHIP          float64 `json:"whip_threshold"`
	KRate         float64 `json:"k_rate_threshold"`
	QualityStarts float64 `json:"quality_starts_threshold"`
}

// PitcherPatterns summarizes pre-event form across every historical pitcher.
type PitcherPatterns struct {
	Recent3Avg     recentWindow   `json:"recent_3_starts_avg"`
	Last5Avg       trailingWindow `json:"last_5_starts_avg"`
	PctERAUnder250 float64        `json:"pct_era_under_2_50"`
	PctWHIPUnder1  float64        `json:"pct_whip_under_1_00"`
	PctHighKRate   float64        `json:"pct_high_k_rate"`
	PctTwoPlusQS   float64        `json:"pct_2_plus_quality_starts"`
	Thresholds     FormThresholds `json:"form_thresholds"`
}

// PitcherAnalyzer derives form patterns from simulated trailing windows for
// every historical event. True per-start logs are not available for the full
// record, so each pitcher's lead-up is synthesized deterministically, seeded
// by FNV-1a(pitcher + date), with outings closer to the event drawn hotter.
type PitcherAnalyzer struct {
	cache  *diskCache[performanceSummary]
	logger *logrus.Logger

	patterns *PitcherPatterns
}

// NewPitcherAnalyzer builds a pitcher analyzer with its on-disk cache under
// cacheDir.
func NewPitcherAnalyzer(cacheDir string, logger *logrus.Logger) *PitcherAnalyzer {
	return &PitcherAnalyzer{
		cache:  newDiskCache[performanceSummary](filepath.Join(cacheDir, "pitcher_performance_cache.json"), logger),
		logger: logger,
	}
}

// simulatePerformance synthesizes the five outings preceding a historical
// event. The streak term makes outings nearer the event stingier on hits and
// walks and richer in strikeouts.
func (a *PitcherAnalyzer) simulatePerformance(e models.HistoricalEvent) performanceSummary {
	r := newRand(e.Pitcher, e.Date.Format("2006-01-02"))

	starts := make([]simulatedStart, 0, 5)
	for i := 1; i <= 5; i++ {
		startDate := e.Date.AddDate(0, 0, -5*i)
		streak := float64(6-i) / 6.0

		innings := randUniform(r, 5.0, 8.0)
		hits := int(randUniform(r, 3, 9) - streak*2)
		if hits < 1 {
			hits = 1
		}
		walks := int(randUniform(r, 1, 4) - streak)
		if walks < 0 {
			walks = 0
		}
		strikeouts := int(randUniform(r, 4, 12) + streak*2)
		if strikeouts < 3 {
			strikeouts = 3
		}
		earnedRuns := int(float64(hits+walks)*randUniform(r, 0.1, 0.4) - streak*0.2)
		if earnedRuns < 0 {
			earnedRuns = 0
		}

		start := simulatedStart{
			Date:        startDate.Format("2006-01-02"),
			StartNumber: 6 - i,
			Innings:     math.Round(innings*10) / 10,
			Hits:        hits,
			Walks:       walks,
			Strikeouts:  strikeouts,
			EarnedRuns:  earnedRuns,
			ERA:         math.Round(float64(earnedRuns)*9/innings*100) / 100,
			WHIP:        math.Round(float64(hits+walks)/innings*100) / 100,
			KPerNine:    math.Round(float64(strikeouts)*9/innings*10) / 10,
			HPerNine:    math.Round(float64(hits)*9/innings*10) / 10,
		}
		if innings >= 6 && earnedRuns <= 3 {
			start.QualityStart = 1
		}
		starts = append(starts, start)
	}

	summary := performanceSummary{
		Pitcher:          e.Pitcher,
		Team:             e.Team,
		EventDate:        e.Date.Format("2006-01-02"),
		IndividualStarts: starts,
	}

	recent3 := starts[:3]
	var innings3, innings5 float64
	var er3, hw3, k3, h3, qs3 int
	var er5, hw5, shutouts, lowHit int
	for _, s := range recent3 {
		innings3 += s.Innings
		er3 += s.EarnedRuns
		hw3 += s.Hits + s.Walks
		k3 += s.Strikeouts
		h3 += s.Hits
		qs3 += s.QualityStart
	}
	for _, s := range starts {
		innings5 += s.Innings
		er5 += s.EarnedRuns
		hw5 += s.Hits + s.Walks
		if s.EarnedRuns == 0 {
			shutouts++
		}
		if s.Hits <= 5 {
			lowHit++
		}
	}

	if innings3 > 0 {
		summary.Recent3 = recentWindow{
			ERA:           math.Round(float64(er3)*9/innings3*100) / 100,
			WHIP:          math.Round(float64(hw3)/innings3*100) / 100,
			KPerNine:      math.Round(float64(k3)*9/innings3*10) / 10,
			HPerNine:      math.Round(float64(h3)*9/innings3*10) / 10,
			QualityStarts: qs3,
		}
	}
	if innings5 > 0 {
		summary.Last5 = trailingWindow{
			ERA:         math.Round(float64(er5)*9/innings5*100) / 100,
			WHIP:        math.Round(float64(hw5)/innings5*100) / 100,
			Shutouts:    shutouts,
			LowHitGames: lowHit,
		}
	}

	return summary
}

// DerivePatterns builds the pitcher PatternSummary from the historical table
// through the on-disk cache. Computed once per analyzer lifetime.
func (a *PitcherAnalyzer) DerivePatterns(events []models.HistoricalEvent) (*PitcherPatterns, error) {
	if a.patterns != nil {
		return a.patterns, nil
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no historical events to analyze")
	}

	summaries := make([]performanceSummary, 0, len(events))
	for _, e := range events {
		key := fmt.Sprintf("%s_%s_%s", e.Pitcher, e.Date.Format("2006-01-02"), e.Team)
		summary, ok := a.cache.get(key)
		if !ok {
			summary = a.simulatePerformance(e)
			a.cache.put(key, summary)
		}
		summaries = append(summaries, summary)
	}

	if err := a.cache.flush(); err != nil {
		a.logger.WithField("error", err.Error()).Warn("Failed to persist pitcher cache")
	}

	n := float64(len(summaries))
	p := &PitcherPatterns{}
	eras := make([]float64, 0, len(summaries))
	whips := make([]float64, 0, len(summaries))
	kRates := make([]float64, 0, len(summaries))
	qsCounts := make([]float64, 0, len(summaries))

	var qsTotal float64
	for _, s := range summaries {
		p.Recent3Avg.ERA += s.Recent3.ERA / n
		p.Recent3Avg.WHIP += s.Recent3.WHIP / n
		p.Recent3Avg.KPerNine += s.Recent3.KPerNine / n
		p.Recent3Avg.HPerNine += s.Recent3.HPerNine / n
		qsTotal += float64(s.Recent3.QualityStarts)
		p.Last5Avg.ERA += s.Last5.ERA / n
		p.Last5Avg.WHIP += s.Last5.WHIP / n

		if s.Recent3.ERA <= 2.50 {
			p.PctERAUnder250 += 100 / n
		}
		if s.Recent3.WHIP <= 1.00 {
			p.PctWHIPUnder1 += 100 / n
		}
		if s.Recent3.KPerNine >= 8.5 {
			p.PctHighKRate += 100 / n
		}
		if s.Recent3.QualityStarts >= 2 {
			p.PctTwoPlusQS += 100 / n
		}

		eras = append(eras, s.Recent3.ERA)
		whips = append(whips, s.Recent3.WHIP)
		kRates = append(kRates, s.Recent3.KPerNine)
		qsCounts = append(qsCounts, float64(s.Recent3.QualityStarts))
	}

	p.Recent3Avg.QualityStarts = int(math.Round(qsTotal / n))

	p.Thresholds = FormThresholds{
		ERA:           percentile(eras, 75),
		WHIP:          percentile(whips, 25),
		KRate:         percentile(kRates, 60),
		QualityStarts: percentile(qsCounts, 70),
	}

	a.patterns = p
	return p, nil
}

// SimulatedCurrentForm fabricates a league-typical current form sample for
// the generic (no-candidate) prediction path, seeded by the target date so
// repeated runs agree.
func (a *PitcherAnalyzer) SimulatedCurrentForm(date time.Time) *models.PitcherFormSample {
	r := newRand("current_form", date.Format("2006-01-02"))
	return &models.PitcherFormSample{
		PitcherName:   "Today's Starter",
		RecentERA:     randUniform(r, 2.0, 4.5),
		RecentWHIP:    randUniform(r, 0.9, 1.6),
		KPerNine:      randUniform(r, 6.5, 12.0),
		QualityStarts: randIntInclusive(r, 0, 3),
	}
}

// Factor converts a current form sample into a multiplicative adjustment
// against the pattern thresholds. A compound hot-streak bonus applies only
// when ERA, WHIP and quality-start conditions are all met. Clamped to
// [0.6, 2.5].
func (a *PitcherAnalyzer) Factor(sample *models.PitcherFormSample, patterns *PitcherPatterns) float64 {
	if sample == nil || patterns == nil {
		return 1.0
	}

	factor := 1.0
	t := patterns.Thresholds

	if sample.RecentERA <= t.ERA {
		factor *= 1.3
	} else if sample.RecentERA > 4.5 {
		factor *= 0.8
	}

	if sample.RecentWHIP <= t.WHIP {
		factor *= 1.2
	} else if sample.RecentWHIP > 1.5 {
		factor *= 0.85
	}

	if sample.KPerNine >= t.KRate {
		factor *= 1.15
	}

	if float64(sample.QualityStarts) >= t.QualityStarts {
		factor *= 1.1
	}

	if sample.RecentERA <= 2.5 && sample.RecentWHIP <= 1.0 && sample.QualityStarts >= 2 {
		factor *= 1.4
	}

	return clampFloat(factor, 0.6, 2.5)
}

// Explanation describes which form thresholds the sample crossed.
func (a *PitcherAnalyzer) Explanation(sample *models.PitcherFormSample, patterns *PitcherPatterns) string {
	if sample == nil {
		return "Pitcher form data unavailable"
	}

	var clauses []string
	var t FormThresholds
	if patterns != nil {
		t = patterns.Thresholds
	} else {
		t = FormThresholds{ERA: 3.5, WHIP: 1.2, KRate: 8.0, QualityStarts: 2}
	}

	if sample.RecentERA <= t.ERA {
		clauses = append(clauses, fmt.Sprintf("strong recent ERA (%.2f)", sample.RecentERA))
	} else if sample.RecentERA > 4.5 {
		clauses = append(clauses, fmt.Sprintf("elevated ERA (%.2f)", sample.RecentERA))
	}

	if sample.RecentWHIP <= t.WHIP {
		clauses = append(clauses, fmt.Sprintf("excellent control (WHIP %.2f)", sample.RecentWHIP))
	} else if sample.RecentWHIP > 1.5 {
		clauses = append(clauses, fmt.Sprintf("control issues (WHIP %.2f)", sample.RecentWHIP))
	}

	if sample.KPerNine >= t.KRate {
		clauses = append(clauses, fmt.Sprintf("high strikeout rate (%.1f K/9)", sample.KPerNine))
	}

	if sample.QualityStarts >= 2 {
		clauses = append(clauses, fmt.Sprintf("consistent quality starts (%d/3)", sample.QualityStarts))
	}

	if sample.RecentERA <= 2.5 && sample.RecentWHIP <= 1.0 && sample.QualityStarts >= 2 {
		clauses = append(clauses, "pitcher on hot streak")
	}

	if len(clauses) == 0 {
		clauses = append(clauses, "average recent form")
	}

	return "Pitcher form: " + strings.Join(clauses, ", ")
}

// percentile computes the p-th percentile with linear interpolation between
// closest ranks.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	idx := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
