// Package main provides the one-shot prediction CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jleboube/no-hitter-analysis/internal/app"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

var (
	configPath   string
	dateStr      string
	outputFormat string
	force        bool
	noSave       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "forecast",
		Short:        "Predict the probability of an MLB no-hitter",
		Long:         "Computes the no-hitter probability for a date from historical patterns, probable starters, and game-time conditions.",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "config/config.yaml", "path to the configuration file")
	rootCmd.Flags().StringVar(&dateStr, "date", "", "target date as YYYY-MM-DD (default today, UTC)")
	rootCmd.Flags().StringVar(&outputFormat, "output", "text", "output format: text or json")
	rootCmd.Flags().BoolVar(&force, "force", false, "predict even outside the April-October season")
	rootCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the result")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	date := time.Now().UTC()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", dateStr, err)
		}
		date = parsed
	}

	if !models.IsInSeason(date) && !force {
		fmt.Println("The MLB season runs April through October; no games scheduled. Use --force to predict anyway.")
		return nil
	}

	a, err := app.New(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.Engine.Predict(ctx, date)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	if !noSave {
		if err := a.Predictions.Save(result); err != nil {
			a.Log.WithError(err).Warn("Could not persist prediction")
		}
	}

	switch outputFormat {
	case "json":
		return printJSON(result)
	case "text":
		printReport(result)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}

func printJSON(result *models.PredictionResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printReport(result *models.PredictionResult) {
	fmt.Printf("No-Hitter Forecast for %s\n", result.Date)
	fmt.Println("=========================================")
	fmt.Printf("Probability:         %.4f%%\n", result.ProbabilityPercent)
	fmt.Printf("95%% Confidence:      %.4f%% - %.4f%%\n", result.ConfidenceInterval.Lower, result.ConfidenceInterval.Upper)
	fmt.Printf("Risk Level:          %s\n", result.RiskLevel())
	fmt.Printf("Implied Fair Odds:   %s\n", result.ImpliedOdds())

	if result.SelectedAgent != nil {
		a := result.SelectedAgent
		fmt.Printf("\nBest Candidate:      %s (%s vs %s)\n", a.Name, a.Team, a.Opponent)
		fmt.Printf("Season Line:         %.2f ERA, %.2f WHIP, %.1f K/9, %d QS\n",
			a.Stats.ERA, a.Stats.WHIP, a.Stats.KPerNine, a.Stats.QualityStarts)
	}

	if w := result.CurrentConditions.Weather; w != nil {
		fmt.Printf("\nWeather:             %.0fF, %.0f%% humidity, %.0f mph wind, %s\n",
			w.Temperature, w.Humidity, w.WindSpeed, w.Conditions)
	}
	if s := result.CurrentConditions.Stadium; s != nil {
		fmt.Printf("Venue:               %s (%s, %d ft)\n", s.Stadium, s.AltitudeCategory, s.Altitude)
	}

	fmt.Println("\nFactor Breakdown:")
	names := make([]string, 0, len(result.Factors))
	for name := range result.Factors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-20s %.6f\n", name, result.Factors[name])
	}

	fmt.Printf("\n%s\n", result.Explanation)
}
