package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/observability"
	"github.com/hirepulse/shortlist-engine/internal/types"
	"github.com/hirepulse/shortlist-engine/internal/whatif"
	"github.com/spf13/cobra"
)

var whatifCmd = &cobra.Command{
	Use:   "whatif",
	Short: "Simulate a hypothetical profile change against a job",
	Long:  "Clones the candidate profile, applies the scenario edits, and reports baseline versus projected scores with deltas. Nothing is persisted.",
	RunE:  runWhatIf,
}

var (
	whatifCandidateID string
	whatifJobID       string
	whatifConfigFile  string
	whatifAdd         []string
	whatifRemove      []string
	whatifModify      []string
	whatifJSON        bool
	whatifVerbose     bool
)

func init() {
	whatifCmd.Flags().StringVar(&whatifCandidateID, "candidate-id", "", "Candidate UUID (required)")
	whatifCmd.Flags().StringVar(&whatifJobID, "job-id", "", "Job identifier (required)")
	whatifCmd.Flags().StringVarP(&whatifConfigFile, "config", "c", "", "Path to JSON config file")
	whatifCmd.Flags().StringSliceVar(&whatifAdd, "add", nil, "Skill to add (repeatable)")
	whatifCmd.Flags().StringSliceVar(&whatifRemove, "remove", nil, "Skill to remove (repeatable)")
	whatifCmd.Flags().StringSliceVar(&whatifModify, "modify", nil, "Skill level change as name=level (repeatable)")
	whatifCmd.Flags().BoolVar(&whatifJSON, "json", false, "Print the raw JSON result")
	whatifCmd.Flags().BoolVarP(&whatifVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = whatifCmd.MarkFlagRequired("candidate-id")
	_ = whatifCmd.MarkFlagRequired("job-id")

	rootCmd.AddCommand(whatifCmd)
}

func runWhatIf(_ *cobra.Command, _ []string) error {
	candidateID, err := uuid.Parse(whatifCandidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate ID: %w", err)
	}

	scenario := &types.WhatIfScenario{
		JobID:        whatifJobID,
		AddSkills:    whatifAdd,
		RemoveSkills: whatifRemove,
	}
	for _, edit := range whatifModify {
		name, level, found := strings.Cut(edit, "=")
		if !found {
			return fmt.Errorf("invalid --modify value %q: expected name=level", edit)
		}
		scenario.ModifySkills = append(scenario.ModifySkills, types.SkillEntry{
			Name:  name,
			Level: types.ProficiencyLevel(strings.ToLower(level)),
		})
	}

	cfg, err := resolveConfig(whatifConfigFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	d, err := buildDeps(ctx, cfg, whatifVerbose)
	if err != nil {
		return err
	}
	defer d.close()

	simulator := whatif.NewSimulator(d.engine, d.database, d.database)
	result, err := simulator.Simulate(ctx, candidateID, scenario)
	if err != nil {
		return err
	}

	if whatifJSON {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintWhatIf(result)
	return nil
}
