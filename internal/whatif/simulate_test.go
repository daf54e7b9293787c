package whatif

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/classifier"
	"github.com/hirepulse/shortlist-engine/internal/embedcache"
	"github.com/hirepulse/shortlist-engine/internal/embedding"
	"github.com/hirepulse/shortlist-engine/internal/predictor"
	"github.com/hirepulse/shortlist-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfileStore struct {
	profile *types.CandidateProfile
}

func (s *stubProfileStore) GetCandidateProfile(_ context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	if s.profile == nil || s.profile.ID != id {
		return nil, fmt.Errorf("candidate %s not found", id)
	}
	return s.profile, nil
}

type stubJobStore struct {
	job *types.JobPosting
}

func (s *stubJobStore) GetJob(_ context.Context, id string) (*types.JobPosting, error) {
	if s.job == nil || s.job.ID != id {
		return nil, fmt.Errorf("job %s not found", id)
	}
	return s.job, nil
}

func (s *stubJobStore) UpdateJobSkills(context.Context, string, []string) error {
	return nil
}

type stubScorer struct{}

func (stubScorer) PredictStrength(context.Context, *classifier.Request) (*classifier.Response, error) {
	return &classifier.Response{Score: 0.7, Confidence: 0.9}, nil
}

func newSimulator(profile *types.CandidateProfile, job *types.JobPosting) *Simulator {
	profiles := &stubProfileStore{profile: profile}
	jobs := &stubJobStore{job: job}
	chain := embedding.NewChain(nil, embedding.NewFallbackVectorizer(), nil)
	engine := predictor.NewEngine(profiles, jobs, chain, embedcache.New(nil), stubScorer{}, nil)

	// Semantic similarity shifts when skills change the candidate text;
	// zero its weight so scenario deltas reflect skill edits alone.
	weights := predictor.DefaultWeights()
	weights.Semantic = 0
	weights.SkillMatch = 0.45
	engine.WithWeights(weights)

	return NewSimulator(engine, profiles, jobs)
}

func simProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:       uuid.New(),
		ResumeID: "resume-1",
		Skills: []types.SkillEntry{
			{Name: "SQL", Level: types.ProficiencyIntermediate},
			{Name: "Excel", Level: types.ProficiencyBeginner},
		},
		TotalExperienceMonths: 6,
	}
}

func simJob() *types.JobPosting {
	return &types.JobPosting{
		ID:              "job-1",
		Title:           "Data Analyst",
		Description:     "Analyze data with SQL, Python, and Tableau for weekly reporting.",
		RequiredSkills:  []string{"SQL", "Python", "Tableau"},
		ExperienceLevel: types.LevelEntry,
	}
}

func TestSimulate_EmptyScenarioHasZeroDelta(t *testing.T) {
	profile := simProfile()
	sim := newSimulator(profile, simJob())

	result, err := sim.Simulate(context.Background(), profile.ID, &types.WhatIfScenario{JobID: "job-1"})
	require.NoError(t, err)

	assert.Zero(t, result.ProbabilityDelta)
	assert.Zero(t, result.StrengthDelta)
	assert.Zero(t, result.JobMatchDelta)
	assert.Equal(t, result.Baseline, result.Projected)
}

func TestSimulate_AddingMissingSkillRaisesProbability(t *testing.T) {
	profile := simProfile()
	sim := newSimulator(profile, simJob())

	scenario := &types.WhatIfScenario{JobID: "job-1", AddSkills: []string{"Python"}}
	result, err := sim.Simulate(context.Background(), profile.ID, scenario)
	require.NoError(t, err)

	assert.Greater(t, result.ProbabilityDelta, 0.0)
	assert.Greater(t, result.JobMatchDelta, 0.0)
}

func TestSimulate_RemovingMatchedSkillLowersProbability(t *testing.T) {
	profile := simProfile()
	sim := newSimulator(profile, simJob())

	scenario := &types.WhatIfScenario{JobID: "job-1", RemoveSkills: []string{"SQL"}}
	result, err := sim.Simulate(context.Background(), profile.ID, scenario)
	require.NoError(t, err)

	assert.Less(t, result.ProbabilityDelta, 0.0)
}

func TestSimulate_DoesNotMutateStoredProfile(t *testing.T) {
	profile := simProfile()
	sim := newSimulator(profile, simJob())

	scenario := &types.WhatIfScenario{
		JobID:        "job-1",
		AddSkills:    []string{"Python"},
		RemoveSkills: []string{"Excel"},
	}
	_, err := sim.Simulate(context.Background(), profile.ID, scenario)
	require.NoError(t, err)

	assert.Len(t, profile.Skills, 2)
	assert.True(t, profile.HasSkill("Excel"))
	assert.False(t, profile.HasSkill("Python"))
}

func TestSimulate_Deterministic(t *testing.T) {
	profile := simProfile()
	sim := newSimulator(profile, simJob())
	scenario := &types.WhatIfScenario{JobID: "job-1", AddSkills: []string{"Python"}}
	ctx := context.Background()

	first, err := sim.Simulate(ctx, profile.ID, scenario)
	require.NoError(t, err)
	second, err := sim.Simulate(ctx, profile.ID, scenario)
	require.NoError(t, err)

	assert.Equal(t, first.ProbabilityDelta, second.ProbabilityDelta)
	assert.Equal(t, first.Baseline, second.Baseline)
	assert.Equal(t, first.Projected, second.Projected)
}

func TestSimulate_MissingJobIDRejected(t *testing.T) {
	profile := simProfile()
	sim := newSimulator(profile, simJob())

	_, err := sim.Simulate(context.Background(), profile.ID, &types.WhatIfScenario{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}

func TestSimulate_UnknownModifyLevelRejected(t *testing.T) {
	profile := simProfile()
	sim := newSimulator(profile, simJob())

	_, err := sim.Simulate(context.Background(), profile.ID, &types.WhatIfScenario{
		JobID:        "job-1",
		ModifySkills: []types.SkillEntry{{Name: "SQL", Level: "expert"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}

func TestSimulate_UnknownJob(t *testing.T) {
	profile := simProfile()
	sim := newSimulator(profile, simJob())

	_, err := sim.Simulate(context.Background(), profile.ID, &types.WhatIfScenario{JobID: "job-missing"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load job")
}

func TestApplyScenario_AddSkillDefaultsToIntermediate(t *testing.T) {
	profile := simProfile()

	modified := ApplyScenario(profile, &types.WhatIfScenario{
		JobID:     "job-1",
		AddSkills: []string{"python"},
	})

	require.Len(t, modified.Skills, 3)
	assert.Equal(t, "Python", modified.Skills[2].Name)
	assert.Equal(t, types.ProficiencyIntermediate, modified.Skills[2].Level)
}

func TestApplyScenario_AddExistingSkillIsNoOp(t *testing.T) {
	profile := simProfile()

	modified := ApplyScenario(profile, &types.WhatIfScenario{
		JobID:     "job-1",
		AddSkills: []string{"sql"},
	})

	assert.Len(t, modified.Skills, 2)
}

func TestApplyScenario_RemoveIsCaseInsensitive(t *testing.T) {
	profile := simProfile()

	modified := ApplyScenario(profile, &types.WhatIfScenario{
		JobID:        "job-1",
		RemoveSkills: []string{"sql"},
	})

	assert.Len(t, modified.Skills, 1)
	assert.False(t, modified.HasSkill("SQL"))
}

func TestApplyScenario_ModifyUpserts(t *testing.T) {
	profile := simProfile()

	modified := ApplyScenario(profile, &types.WhatIfScenario{
		JobID: "job-1",
		ModifySkills: []types.SkillEntry{
			{Name: "Excel", Level: types.ProficiencyAdvanced},
			{Name: "Docker", Level: types.ProficiencyBeginner},
		},
	})

	require.Len(t, modified.Skills, 3)
	for _, s := range modified.Skills {
		if s.Name == "Excel" {
			assert.Equal(t, types.ProficiencyAdvanced, s.Level)
		}
	}
	assert.True(t, modified.HasSkill("Docker"))
}
