// Package app wires the configured components into a runnable application.
// The cmd binaries share this assembly instead of repeating it.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/analyzer"
	"github.com/jleboube/no-hitter-analysis/internal/config"
	"github.com/jleboube/no-hitter-analysis/internal/database"
	"github.com/jleboube/no-hitter-analysis/internal/engine"
	"github.com/jleboube/no-hitter-analysis/internal/fetch"
	"github.com/jleboube/no-hitter-analysis/internal/history"
	"github.com/jleboube/no-hitter-analysis/internal/logger"
	"github.com/jleboube/no-hitter-analysis/internal/schedule"
	"github.com/jleboube/no-hitter-analysis/internal/storage"
)

// App bundles the wired components behind one lifecycle.
type App struct {
	Cfg         *config.Config
	Log         *logrus.Logger
	DB          *database.DB
	Store       history.Store
	Engine      *engine.Engine
	Predictions *storage.PredictionStore
	httpClient  *fetch.RateLimitedHTTPClient
}

// New loads configuration from configPath and assembles the application.
// AWS secret overlay is applied when AWS_SECRETS_ENABLED is set.
func New(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return nil, fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return nil, fmt.Errorf("loading secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewLogger(cfg.App.LogLevel)
	log.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"source":      cfg.History.Source,
	}).Info("Forecast engine starting")

	var db *database.DB
	if cfg.History.Source == "postgres" {
		db, err = database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		log.Info("Database connection established")
	}

	store, err := history.NewStore(cfg, db)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("building history store: %w", err)
	}

	clientCfg := fetch.DefaultHTTPClientConfig()
	clientCfg.Timeout = time.Duration(cfg.Schedule.TimeoutSeconds) * time.Second
	clientCfg.RateLimit = cfg.Schedule.RequestsPerSecond
	httpClient := fetch.NewRateLimitedHTTPClient(clientCfg, log)

	weather := analyzer.NewWeatherAnalyzer(cfg.Weather.APIURL, cfg.Weather.APIKey, cfg.Prediction.CacheDir, httpClient, log)
	pitcher := analyzer.NewPitcherAnalyzer(cfg.Prediction.CacheDir, log)
	stadium := analyzer.NewStadiumAnalyzer(cfg.Prediction.CacheDir, log)

	selector := schedule.NewSelector(
		[]schedule.CandidateSource{
			schedule.NewStatsAPISource(cfg.Schedule.StatsAPIURL, httpClient, log),
			schedule.NewScoreboardSource(cfg.Schedule.ScoreboardURL, httpClient, log),
			schedule.NewSyntheticSource(log),
		},
		time.Duration(cfg.Schedule.CacheTTLSeconds)*time.Second,
		log,
	)

	eng := engine.New(store, selector, weather, pitcher, stadium, cfg.Prediction.MonteCarloIterations, log)
	predictions := storage.NewPredictionStore(cfg.Prediction.OutputPath, cfg.Prediction.RetentionDays, log)

	return &App{
		Cfg:         cfg,
		Log:         log,
		DB:          db,
		Store:       store,
		Engine:      eng,
		Predictions: predictions,
		httpClient:  httpClient,
	}, nil
}

// Close releases the app's connections.
func (a *App) Close() {
	if a.httpClient != nil {
		a.httpClient.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
