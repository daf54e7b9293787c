package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/db"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored predictions for a candidate",
	Long:  "Lists previously saved predictions for a candidate, newest first. Predictions are saved by 'predict --save'.",
	RunE:  runHistory,
}

var (
	historyCandidateID string
	historyConfigFile  string
	historyLimit       int
	historyJSON        bool
)

func init() {
	historyCmd.Flags().StringVar(&historyCandidateID, "candidate-id", "", "Candidate UUID (required)")
	historyCmd.Flags().StringVarP(&historyConfigFile, "config", "c", "", "Path to JSON config file")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of predictions to list")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print the raw JSON results")
	_ = historyCmd.MarkFlagRequired("candidate-id")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	candidateID, err := uuid.Parse(historyCandidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate ID: %w", err)
	}

	cfg, err := resolveConfig(historyConfigFile)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or 'database_url' in config)")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	results, err := database.ListPredictions(ctx, candidateID, historyLimit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No stored predictions for this candidate.")
		return nil
	}

	if historyJSON {
		jsonBytes, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	for _, result := range results {
		fmt.Printf("%-36s  %5.1f%%  %-8s  %s\n",
			result.JobID, result.ShortlistProbability, result.Status, result.JobTitle)
	}
	return nil
}
