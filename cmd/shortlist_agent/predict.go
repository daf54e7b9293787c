package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/observability"
	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict shortlist probability for a candidate and a job",
	Long:  "Runs the full prediction pipeline for a stored candidate against a stored job posting and prints the result.",
	RunE:  runPredict,
}

var (
	predictCandidateID string
	predictJobID       string
	predictConfigFile  string
	predictSave        bool
	predictJSON        bool
	predictVerbose     bool
)

func init() {
	predictCmd.Flags().StringVar(&predictCandidateID, "candidate-id", "", "Candidate UUID (required)")
	predictCmd.Flags().StringVar(&predictJobID, "job-id", "", "Job identifier (required)")
	predictCmd.Flags().StringVarP(&predictConfigFile, "config", "c", "", "Path to JSON config file")
	predictCmd.Flags().BoolVar(&predictSave, "save", false, "Persist the prediction result")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "Print the raw JSON result")
	predictCmd.Flags().BoolVarP(&predictVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = predictCmd.MarkFlagRequired("candidate-id")
	_ = predictCmd.MarkFlagRequired("job-id")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(_ *cobra.Command, _ []string) error {
	candidateID, err := uuid.Parse(predictCandidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate ID: %w", err)
	}

	cfg, err := resolveConfig(predictConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	d, err := buildDeps(ctx, cfg, predictVerbose)
	if err != nil {
		return err
	}
	defer d.close()

	result, err := d.engine.Predict(ctx, candidateID, predictJobID)
	if err != nil {
		return err
	}

	if predictSave {
		if _, err := d.database.SavePrediction(ctx, candidateID, result); err != nil {
			return fmt.Errorf("failed to save prediction: %w", err)
		}
	}

	if predictJSON {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintPrediction(result)
	return nil
}
