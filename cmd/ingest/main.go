// Package main provides the dataset ingestion tool. It loads the canonical
// embedded event table and writes it to a CSV file or a PostgreSQL database
// for the other history backends to use.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jleboube/no-hitter-analysis/internal/config"
	"github.com/jleboube/no-hitter-analysis/internal/database"
	"github.com/jleboube/no-hitter-analysis/internal/history"
	"github.com/jleboube/no-hitter-analysis/internal/logger"
)

var (
	configPath string
	target     string
	csvPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "ingest",
		Short:        "Export the embedded no-hitter dataset to a history backend",
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.Flags().StringVar(&configPath, "config", "config/config.yaml", "path to the configuration file")
	rootCmd.Flags().StringVar(&target, "target", "csv", "ingestion target: csv or postgres")
	rootCmd.Flags().StringVar(&csvPath, "csv-path", "", "CSV output path (defaults to history.csv_path from config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadWithDefaults(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.NewLogger(cfg.App.LogLevel)

	events, err := history.NewEmbeddedStore().Load(ctx)
	if err != nil {
		return fmt.Errorf("loading embedded dataset: %w", err)
	}

	summary := history.Validate(events)
	fmt.Printf("Dataset: %d records, %s to %s (%d duplicate dates, %d records with missing fields)\n",
		summary.TotalRecords,
		summary.EarliestDate.Format("2006-01-02"),
		summary.LatestDate.Format("2006-01-02"),
		summary.DuplicateDates,
		summary.MissingFields,
	)

	switch target {
	case "csv":
		path := csvPath
		if path == "" {
			path = cfg.History.CSVPath
		}
		if path == "" {
			return fmt.Errorf("no CSV path: set --csv-path or history.csv_path")
		}
		if err := history.WriteCSV(path, events); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		log.WithField("path", path).Info("Dataset written to CSV")

	case "postgres":
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()

		store := history.NewPostgresStore(db)
		if err := store.InitSchema(ctx); err != nil {
			return fmt.Errorf("initializing schema: %w", err)
		}
		if err := store.ReplaceAll(ctx, events); err != nil {
			return fmt.Errorf("loading events: %w", err)
		}
		log.WithField("records", len(events)).Info("Dataset loaded into PostgreSQL")

	default:
		return fmt.Errorf("unknown target %q: expected csv or postgres", target)
	}

	return nil
}
