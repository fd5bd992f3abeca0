// Package config provides configuration management for the no-hitter forecast engine.
package config

import (
	"os"
	"strings"
	"testing"
)

const (
	validConfigPath              = "testdata/valid_config.yaml"
	expansionConfigPath          = "testdata/expansion_config.yaml"
	nonexistentConfigPath        = "testdata/nonexistent_config.yaml"
	expectedNoErrorLoadingConfig = "expected no error loading config, got %v"
	expectedNoErrorMsg           = "expected no error, got %v"
	forecastAppName              = "no-hitter-forecast"
	developmentEnv               = "development"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if cfg.App.Name != forecastAppName {
		t.Errorf("expected app name '%s', got '%s'", forecastAppName, cfg.App.Name)
	}

	if cfg.App.Environment != developmentEnv {
		t.Errorf("expected environment '%s', got '%s'", developmentEnv, cfg.App.Environment)
	}

	if cfg.History.Source != "embedded" {
		t.Errorf("expected history source 'embedded', got '%s'", cfg.History.Source)
	}

	if cfg.Prediction.RetentionDays != 30 {
		t.Errorf("expected retention of 30 days, got %d", cfg.Prediction.RetentionDays)
	}

	if len(cfg.Daemon.PredictionSchedules) != 2 {
		t.Errorf("expected 2 prediction schedules, got %d", len(cfg.Daemon.PredictionSchedules))
	}
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadWithDefaultsMissingFile tests that defaults carry a missing file
func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorMsg, err)
	}

	if cfg.Prediction.MonteCarloIterations != 1000 {
		t.Errorf("expected default of 1000 iterations, got %d", cfg.Prediction.MonteCarloIterations)
	}

	if cfg.Schedule.StatsAPIURL == "" {
		t.Error("expected default stats API URL")
	}

	if cfg.History.Source != "embedded" {
		t.Errorf("expected default history source 'embedded', got '%s'", cfg.History.Source)
	}
}

// TestValidateSuccess tests validation of a valid configuration
func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("expected no validation error, got %v", err)
	}
}

// TestValidateInvalidEnvironment tests validation of invalid environment
func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.App.Environment = "invalid"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for invalid environment")
	}
}

// TestValidateInvalidHistorySource tests the oneof constraint on the store backend
func TestValidateInvalidHistorySource(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.History.Source = "mysql"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for unsupported history source")
	}
}

// TestValidatePostgresRequiresDatabase tests the cross-field database requirement
func TestValidatePostgresRequiresDatabase(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.History.Source = "postgres"
	cfg.Database.Host = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for postgres source without database host")
	}
}

// TestValidateCSVRequiresPath tests the cross-field csv path requirement
func TestValidateCSVRequiresPath(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.History.Source = "csv"
	cfg.History.CSVPath = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for csv source without csv_path")
	}
}

// TestValidateBadCronSchedule tests cron expression validation
func TestValidateBadCronSchedule(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	cfg.Daemon.PredictionSchedules = []string{"not a cron expression"}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for invalid cron expression")
	}
}

// TestGetDatabaseDSN tests DSN generation
func TestGetDatabaseDSN(t *testing.T) {
	cfg, err := Load(validConfigPath)
	if err != nil {
		t.Fatalf(expectedNoErrorLoadingConfig, err)
	}

	dsn := cfg.GetDatabaseDSN()
	if !strings.HasPrefix(dsn, "postgres://") {
		t.Errorf("expected DSN to start with 'postgres://', got '%s'", dsn)
	}
}

// TestIsDevelopment tests environment check function
func TestIsDevelopment(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: developmentEnv},
	}

	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to return true")
	}

	if cfg.IsProduction() {
		t.Error("expected IsProduction() to return false")
	}
}

// TestLoadConfigEnvironmentVariableExpansion tests ${VAR} expansion in the config file
func TestLoadConfigEnvironmentVariableExpansion(t *testing.T) {
	os.Setenv("TEST_DB_PASSWORD", "expanded_secret_value")
	defer os.Unsetenv("TEST_DB_PASSWORD")

	cfg, err := Load(expansionConfigPath)
	if err != nil {
		t.Fatalf("expected no error loading config with expansion, got %v", err)
	}

	if cfg.Database.Password != "expanded_secret_value" {
		t.Errorf("expected password from environment expansion, got '%s'", cfg.Database.Password)
	}
}
