// Package config provides configuration management for the no-hitter forecast engine.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "NOHITTER"

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME}).
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional
// fields, tolerating a missing config file.
func LoadWithDefaults(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "no-hitter-forecast")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("history.source", "embedded")
	v.SetDefault("history.csv_path", "data/no_hitters.csv")
	v.SetDefault("weather.api_url", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("weather.timeout_seconds", 10)
	v.SetDefault("schedule.statsapi_url", "https://statsapi.mlb.com/api/v1")
	v.SetDefault("schedule.scoreboard_url", "https://site.api.espn.com/apis/site/v2/sports/baseball/mlb")
	v.SetDefault("schedule.timeout_seconds", 15)
	v.SetDefault("schedule.cache_ttl_seconds", 300)
	v.SetDefault("schedule.requests_per_second", 5.0)
	v.SetDefault("prediction.output_path", "data/daily_predictions.json")
	v.SetDefault("prediction.cache_dir", "data")
	v.SetDefault("prediction.retention_days", 30)
	v.SetDefault("prediction.monte_carlo_iterations", 1000)
	v.SetDefault("daemon.prediction_schedules", []string{"0 6 * * *", "0 7 * * *"})
	v.SetDefault("daemon.graceful_timeout_seconds", 30)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// If the file doesn't exist, continue with defaults and environment variables

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
