package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hirepulse/shortlist-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPrediction outputs a human-readable summary of a prediction result.
func (p *Printer) PrintPrediction(result *types.PredictionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job:         %s\n", result.JobTitle))
	sb.WriteString(fmt.Sprintf("Probability: %.1f%%\n", result.ShortlistProbability))
	sb.WriteString(fmt.Sprintf("Strength:    %.1f  Match: %.1f\n", result.CandidateStrength, result.JobMatchScore))
	sb.WriteString(fmt.Sprintf("Domain:      %s\n", result.DomainMatch))
	sb.WriteString(fmt.Sprintf("Status:      %s (embedding: %s)\n", result.Status, result.EmbeddingSource))

	if len(result.MatchedSkills) > 0 {
		sb.WriteString("\nMatched skills:\n")
		writeList(&sb, result.MatchedSkills, maxItemsToShow)
	}
	if len(result.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		writeList(&sb, result.MissingSkills, maxItemsToShow)
	}
	if len(result.Improvements) > 0 {
		sb.WriteString("\nImprovements:\n")
		writeList(&sb, result.Improvements, maxItemsToShow)
	}

	p.printBox("SHORTLIST PREDICTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWhatIf outputs a human-readable summary of a what-if simulation.
func (p *Printer) PrintWhatIf(result *types.WhatIfResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Baseline:  %.1f%% (strength %.1f, match %.1f)\n",
		result.Baseline.Probability, result.Baseline.CandidateStrength, result.Baseline.JobMatchScore))
	sb.WriteString(fmt.Sprintf("Projected: %.1f%% (strength %.1f, match %.1f)\n",
		result.Projected.Probability, result.Projected.CandidateStrength, result.Projected.JobMatchScore))
	sb.WriteString(fmt.Sprintf("Delta:     %+.1f probability points\n", result.ProbabilityDelta))

	if len(result.Scenario.AddSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nAdded:   %s\n", strings.Join(result.Scenario.AddSkills, ", ")))
	}
	if len(result.Scenario.RemoveSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Removed: %s\n", strings.Join(result.Scenario.RemoveSkills, ", ")))
	}

	p.printBox("WHAT-IF SIMULATION", strings.TrimSuffix(sb.String(), "\n"))
}

// writeList renders up to limit items as bullets, eliding the rest.
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}
