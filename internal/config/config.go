// Package config provides configuration management for the no-hitter forecast engine.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	History    HistoryConfig    `mapstructure:"history" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Weather    WeatherConfig    `mapstructure:"weather" validate:"required"`
	Schedule   ScheduleConfig   `mapstructure:"schedule" validate:"required"`
	Prediction PredictionConfig `mapstructure:"prediction" validate:"required"`
	Daemon     DaemonConfig     `mapstructure:"daemon" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// HistoryConfig selects the historical event store backend.
type HistoryConfig struct {
	// Source is one of: embedded, csv, postgres
	Source  string `mapstructure:"source" validate:"required,oneof=embedded csv postgres"`
	CSVPath string `mapstructure:"csv_path"`
}

// DatabaseConfig represents database connection configuration. Only required
// when the history source is postgres.
type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"omitempty,gt=0"`
}

// WeatherConfig represents the live weather source configuration. An empty
// APIKey switches the weather analyzer to deterministic simulated samples.
type WeatherConfig struct {
	APIURL         string `mapstructure:"api_url" validate:"required,url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// ScheduleConfig represents the candidate schedule sources, tried in order.
type ScheduleConfig struct {
	StatsAPIURL        string `mapstructure:"statsapi_url" validate:"required,url"`
	ScoreboardURL      string `mapstructure:"scoreboard_url" validate:"required,url"`
	TimeoutSeconds     int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	CacheTTLSeconds    int    `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	RequestsPerSecond  float64 `mapstructure:"requests_per_second" validate:"required,gt=0"`
}

// PredictionConfig represents prediction engine configuration.
type PredictionConfig struct {
	OutputPath           string `mapstructure:"output_path" validate:"required"`
	CacheDir             string `mapstructure:"cache_dir" validate:"required"`
	RetentionDays        int    `mapstructure:"retention_days" validate:"required,gt=0"`
	MonteCarloIterations int    `mapstructure:"monte_carlo_iterations" validate:"required,gt=0"`
}

// DaemonConfig represents the daily scheduler configuration.
type DaemonConfig struct {
	// Cron expressions for the daily prediction runs (UTC). The second
	// entry is the backup run.
	PredictionSchedules []string `mapstructure:"prediction_schedules" validate:"required,min=1"`
	GracefulTimeoutSeconds int   `mapstructure:"graceful_timeout_seconds" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
