package analyzer

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/fetch"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// Ideal weather bands observed across the historical record. Factor decisions
// compare the current sample against these fixed bands.
const (
	idealTempLow     = 65.0
	idealTempHigh    = 80.0
	idealHumidityLow = 30.0
	idealHumidityMax = 60.0
	idealWindLow     = 3.0
	idealWindHigh    = 10.0
)

// climateProfile is the per-city baseline used for simulated weather.
type climateProfile struct {
	baseTemp       float64
	humidity       float64
	rainfallChance float64
}

var climateProfiles = map[string]climateProfile{
	"Phoenix":       {75, 35, 0.1},
	"Miami":         {80, 75, 0.4},
	"Seattle":       {60, 65, 0.6},
	"Denver":        {65, 40, 0.2},
	"Boston":        {65, 60, 0.3},
	"San Francisco": {62, 70, 0.2},
}

var defaultClimate = climateProfile{70, 55, 0.3}

// seasonalTempAdj shifts the baseline temperature by month (April-October).
var seasonalTempAdj = map[time.Month]float64{
	time.April:     -5,
	time.May:       0,
	time.June:      5,
	time.July:      10,
	time.August:    10,
	time.September: 5,
	time.October:   -5,
}

// WeatherPatterns aggregates simulated game-time weather across the
// historical record.
type WeatherPatterns struct {
	AvgTemperature  float64 `json:"avg_temperature"`
	AvgHumidity     float64 `json:"avg_humidity"`
	AvgWindSpeed    float64 `json:"avg_wind_speed"`
	ClearWeatherPct float64 `json:"clear_weather_pct"`
	SampleCount     int     `json:"sample_count"`
}

// WeatherAnalyzer derives weather patterns from the historical record and
// scores current conditions. With no API key it always uses the simulated
// path, which is deterministic per (date, team).
type WeatherAnalyzer struct {
	apiURL string
	apiKey string
	client *fetch.RateLimitedHTTPClient
	cache  *diskCache[models.WeatherSample]
	logger *logrus.Logger

	patterns *WeatherPatterns
}

// NewWeatherAnalyzer builds a weather analyzer with its on-disk sample cache
// under cacheDir.
func NewWeatherAnalyzer(apiURL, apiKey, cacheDir string, client *fetch.RateLimitedHTTPClient, logger *logrus.Logger) *WeatherAnalyzer {
	return &WeatherAnalyzer{
		apiURL: apiURL,
		apiKey: apiKey,
		client: client,
		cache:  newDiskCache[models.WeatherSample](filepath.Join(cacheDir, "weather_cache.json"), logger),
		logger: logger,
	}
}

// SimulatedSample produces a deterministic pseudo-sample for a team and date
// from the city's climate profile, the month's seasonal shift, and a PRNG
// seeded by FNV-1a(date + team).
func (a *WeatherAnalyzer) SimulatedSample(team string, date time.Time) (models.WeatherSample, bool) {
	loc, ok := teamLocations[team]
	if !ok {
		return models.WeatherSample{}, false
	}

	profile, ok := climateProfiles[loc.City]
	if !ok {
		profile = defaultClimate
	}
	tempAdj := seasonalTempAdj[date.Month()]

	r := newRand(date.Format("2006-01-02"), team)

	sample := models.WeatherSample{
		Temperature: profile.baseTemp + tempAdj + float64(randIntInclusive(r, -10, 10)),
		Humidity:    clampFloat(profile.humidity+float64(randIntInclusive(r, -15, 15)), 20, 95),
		WindSpeed:   float64(randIntInclusive(r, 2, 15)),
	}
	if r.Float64() < profile.rainfallChance {
		sample.Precipitation = 1
	}
	sample.Pressure = 1013 + float64(randIntInclusive(r, -20, 20))
	if r.Float64() > profile.rainfallChance {
		sample.Conditions = "Clear"
	} else {
		sample.Conditions = "Rain"
	}

	return sample, true
}

// openWeatherResponse is the subset of the OpenWeatherMap payload we read.
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Rain map[string]float64 `json:"rain"`
	Snow map[string]float64 `json:"snow"`
}

// CurrentSample fetches live weather for the team's park, falling back to the
// deterministic simulation when no credentials are configured or the call
// fails.
func (a *WeatherAnalyzer) CurrentSample(ctx context.Context, team string, date time.Time) (models.WeatherSample, bool) {
	if a.apiKey == "" || a.client == nil {
		return a.SimulatedSample(team, date)
	}

	loc, ok := teamLocations[team]
	if !ok {
		return models.WeatherSample{}, false
	}

	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%.4f", loc.Lat))
	query.Set("lon", fmt.Sprintf("%.4f", loc.Lon))
	query.Set("appid", a.apiKey)
	query.Set("units", "imperial")

	var resp openWeatherResponse
	if err := a.client.GetJSON(ctx, a.apiURL+"?"+query.Encode(), &resp); err != nil {
		a.logger.WithFields(logrus.Fields{
			"team":  team,
			"error": err.Error(),
		}).Warn("Live weather fetch failed, using simulation")
		return a.SimulatedSample(team, date)
	}

	sample := models.WeatherSample{
		Temperature: resp.Main.Temp,
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
		Pressure:    resp.Main.Pressure,
	}
	if len(resp.Rain) > 0 || len(resp.Snow) > 0 {
		sample.Precipitation = 1
	}
	if len(resp.Weather) > 0 {
		sample.Conditions = resp.Weather[0].Description
	}
	return sample, true
}

// DerivePatterns builds the weather PatternSummary from the historical table,
// simulating each event's game-time weather through the on-disk cache. The
// summary is computed once per analyzer lifetime.
func (a *WeatherAnalyzer) DerivePatterns(events []models.HistoricalEvent) (*WeatherPatterns, error) {
	if a.patterns != nil {
		return a.patterns, nil
	}

	var (
		sumTemp, sumHumidity, sumWind float64
		clearCount, total             int
	)
	for _, e := range events {
		key := fmt.Sprintf("%s_%s", e.Team, e.Date.Format("2006-01-02"))
		sample, ok := a.cache.get(key)
		if !ok {
			sample, ok = a.SimulatedSample(e.Team, e.Date)
			if !ok {
				continue
			}
			a.cache.put(key, sample)
		}
		sumTemp += sample.Temperature
		sumHumidity += sample.Humidity
		sumWind += sample.WindSpeed
		if sample.Precipitation == 0 {
			clearCount++
		}
		total++
	}

	if err := a.cache.flush(); err != nil {
		a.logger.WithField("error", err.Error()).Warn("Failed to persist weather cache")
	}

	if total == 0 {
		return nil, fmt.Errorf("no weather samples could be derived")
	}

	a.patterns = &WeatherPatterns{
		AvgTemperature:  sumTemp / float64(total),
		AvgHumidity:     sumHumidity / float64(total),
		AvgWindSpeed:    sumWind / float64(total),
		ClearWeatherPct: float64(clearCount) / float64(total) * 100,
		SampleCount:     total,
	}
	return a.patterns, nil
}

// Factor converts a weather sample into a multiplicative adjustment.
// Precipitation dominates: its presence penalizes harder than any other
// metric can boost. Clamped to [0.5, 2.0].
func (a *WeatherAnalyzer) Factor(sample *models.WeatherSample, patterns *WeatherPatterns) float64 {
	if sample == nil || patterns == nil {
		return 1.0
	}

	factor := 1.0

	if idealTempLow <= sample.Temperature && sample.Temperature <= idealTempHigh {
		factor *= 1.2
	} else if sample.Temperature < 50 || sample.Temperature > 90 {
		factor *= 0.8
	}

	if idealHumidityLow <= sample.Humidity && sample.Humidity <= idealHumidityMax {
		factor *= 1.15
	} else if sample.Humidity > 80 {
		factor *= 0.9
	}

	if idealWindLow <= sample.WindSpeed && sample.WindSpeed <= idealWindHigh {
		factor *= 1.1
	} else if sample.WindSpeed > 20 {
		factor *= 0.85
	}

	if sample.Precipitation == 0 {
		factor *= 1.25
	} else {
		factor *= 0.6
	}

	return clampFloat(factor, 0.5, 2.0)
}

// Explanation describes which weather thresholds the sample crossed.
func (a *WeatherAnalyzer) Explanation(sample *models.WeatherSample) string {
	if sample == nil {
		return "Weather data unavailable"
	}

	var clauses []string

	switch {
	case idealTempLow <= sample.Temperature && sample.Temperature <= idealTempHigh:
		clauses = append(clauses, fmt.Sprintf("ideal temperature (%.0f°F)", sample.Temperature))
	case sample.Temperature < 50:
		clauses = append(clauses, fmt.Sprintf("cold temperature (%.0f°F)", sample.Temperature))
	case sample.Temperature > 90:
		clauses = append(clauses, fmt.Sprintf("hot temperature (%.0f°F)", sample.Temperature))
	}

	if sample.Humidity <= idealHumidityMax {
		clauses = append(clauses, fmt.Sprintf("favorable low humidity (%.0f%%)", sample.Humidity))
	} else if sample.Humidity > 80 {
		clauses = append(clauses, fmt.Sprintf("high humidity (%.0f%%)", sample.Humidity))
	}

	if sample.Precipitation == 0 {
		clauses = append(clauses, "clear conditions")
	} else {
		clauses = append(clauses, "precipitation present")
	}

	if sample.WindSpeed > 15 {
		clauses = append(clauses, fmt.Sprintf("windy conditions (%.0f mph)", sample.WindSpeed))
	}

	if len(clauses) == 0 {
		clauses = append(clauses, "average weather conditions")
	}

	return "Weather: " + strings.Join(clauses, ", ")
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
