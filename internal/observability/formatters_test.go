package observability

import (
	"bytes"
	"testing"

	"github.com/hirepulse/shortlist-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPrediction_IncludesScores(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintPrediction(&types.PredictionResult{
		JobTitle:             "Data Analyst",
		ShortlistProbability: 62.5,
		CandidateStrength:    70.0,
		JobMatchScore:        55.0,
		MatchedSkills:        []string{"SQL"},
		MissingSkills:        []string{"Tableau"},
		Improvements:         []string{"Learn Tableau"},
		DomainMatch:          "aligned (data)",
		Status:               types.StatusSuccess,
		EmbeddingSource:      types.EmbeddingFresh,
	})

	out := buf.String()
	assert.Contains(t, out, "Data Analyst")
	assert.Contains(t, out, "62.5%")
	assert.Contains(t, out, "aligned (data)")
	assert.Contains(t, out, "Learn Tableau")
	assert.Contains(t, out, "SHORTLIST PREDICTION")
}

func TestPrintPrediction_NilIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintPrediction(nil)

	assert.Empty(t, buf.String())
}

func TestPrintWhatIf_IncludesDeltaAndScenario(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintWhatIf(&types.WhatIfResult{
		Scenario:         types.WhatIfScenario{JobID: "job-1", AddSkills: []string{"Python"}},
		Baseline:         types.ScoreSnapshot{Probability: 40.0},
		Projected:        types.ScoreSnapshot{Probability: 52.5},
		ProbabilityDelta: 12.5,
	})

	out := buf.String()
	assert.Contains(t, out, "+12.5 probability points")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "WHAT-IF SIMULATION")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(true)
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger, err = NewLogger(false)
	require.NoError(t, err)
	require.NotNil(t, logger)
}
