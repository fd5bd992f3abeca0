// Package main provides the forecast daemon: scheduled daily predictions,
// health endpoints, and Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jleboube/no-hitter-analysis/internal/app"
	"github.com/jleboube/no-hitter-analysis/internal/health"
	"github.com/jleboube/no-hitter-analysis/internal/metrics"
	"github.com/jleboube/no-hitter-analysis/internal/scheduler"
)

// Set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "forecastd",
		Short:        "Run the no-hitter forecast daemon",
		Long:         "Runs scheduled daily predictions and serves health, prediction, and metrics endpoints.",
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.Flags().StringVar(&configPath, "config", "config/config.yaml", "path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	metrics.InitRegistry()

	var metricsHandler = metrics.Handler()
	if !a.Cfg.Metrics.Enabled {
		metricsHandler = nil
	}
	var pinger health.DatabasePinger
	if a.DB != nil {
		pinger = a.DB
	}

	healthServer := health.NewServer(health.Config{
		ServiceName: a.Cfg.App.Name,
		Version:     version,
		Commit:      commit,
		Port:        fmt.Sprintf("%d", a.Cfg.Metrics.Port),
		Logger:      a.Log,
		DB:          pinger,
		Predictions: a.Predictions,
		Metrics:     metricsHandler,
	})
	if err := healthServer.Start(ctx); err != nil {
		return fmt.Errorf("starting health server: %w", err)
	}

	sched := scheduler.NewScheduler(a.Engine, a.Predictions, a.Log)
	sched.SetGracefulTimeout(time.Duration(a.Cfg.Daemon.GracefulTimeoutSeconds) * time.Second)
	if err := sched.SchedulePredictions(a.Cfg.Daemon.PredictionSchedules); err != nil {
		return fmt.Errorf("scheduling predictions: %w", err)
	}

	// Catch-up run so a restart between scheduled slots still produces
	// today's prediction.
	sched.RunNow()

	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	healthServer.SetReady(true)
	a.Log.WithField("next_run", sched.GetNextRun()).Info("Forecast daemon running")

	<-ctx.Done()
	a.Log.Info("Shutdown signal received")

	healthServer.SetReady(false)
	if err := sched.Stop(); err != nil {
		a.Log.WithError(err).Error("Scheduler stop failed")
	}
	if err := healthServer.Shutdown(); err != nil {
		a.Log.WithError(err).Error("Health server shutdown failed")
	}

	a.Log.Info("Forecast daemon stopped")
	return nil
}
