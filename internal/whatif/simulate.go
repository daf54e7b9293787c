// Package whatif applies hypothetical profile edits and re-runs the
// prediction pipeline to forecast score changes. Scenarios never persist;
// they operate on a clone of the stored profile.
package whatif

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/parsing"
	"github.com/hirepulse/shortlist-engine/internal/predictor"
	"github.com/hirepulse/shortlist-engine/internal/types"
	"golang.org/x/sync/errgroup"
)

// Simulator evaluates baseline and modified profiles against one job.
type Simulator struct {
	engine   *predictor.Engine
	profiles predictor.ProfileStore
	jobs     predictor.JobStore
}

// NewSimulator creates a simulator sharing the engine's stores.
func NewSimulator(engine *predictor.Engine, profiles predictor.ProfileStore, jobs predictor.JobStore) *Simulator {
	return &Simulator{engine: engine, profiles: profiles, jobs: jobs}
}

// Simulate runs the scenario: clone the profile, apply the edits, then
// evaluate original and modified profiles against the same job and report
// deltas. Identical scenario and stored state always yield identical
// deltas.
func (s *Simulator) Simulate(ctx context.Context, candidateID uuid.UUID, scenario *types.WhatIfScenario) (*types.WhatIfResult, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	profile, err := s.profiles.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate %s: %w", candidateID, err)
	}
	job, err := s.jobs.GetJob(ctx, scenario.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s: %w", scenario.JobID, err)
	}

	modified := ApplyScenario(profile, scenario)

	// Baseline and projected evaluations are independent; the embedding
	// cache is keyed by job ID, so running them concurrently is safe.
	var baseline, projected *predictor.Evaluation
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		baseline, err = s.engine.EvaluateProfile(gCtx, profile, job)
		return err
	})
	g.Go(func() error {
		var err error
		projected, err = s.engine.EvaluateProfile(gCtx, modified, job)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	base := baseline.Snapshot()
	proj := projected.Snapshot()
	return &types.WhatIfResult{
		Scenario:         *scenario,
		Baseline:         base,
		Projected:        proj,
		ProbabilityDelta: proj.Probability - base.Probability,
		StrengthDelta:    proj.CandidateStrength - base.CandidateStrength,
		JobMatchDelta:    proj.JobMatchScore - base.JobMatchScore,
	}, nil
}

// ApplyScenario returns a clone of the profile with the scenario's edits
// applied: removals by case-insensitive name, additions defaulting to
// intermediate proficiency unless already present, and level
// modifications upserting.
func ApplyScenario(profile *types.CandidateProfile, scenario *types.WhatIfScenario) *types.CandidateProfile {
	modified := profile.Clone()

	for _, name := range scenario.RemoveSkills {
		modified.Skills = removeSkill(modified.Skills, name)
	}

	for _, name := range scenario.AddSkills {
		canonical := parsing.NormalizeSkillName(name)
		if canonical == "" || modified.HasSkill(canonical) {
			continue
		}
		modified.Skills = append(modified.Skills, types.SkillEntry{
			Name:  canonical,
			Level: types.ProficiencyIntermediate,
		})
	}

	for _, edit := range scenario.ModifySkills {
		modified.Skills = upsertSkill(modified.Skills, edit)
	}

	return modified
}

func removeSkill(skills []types.SkillEntry, name string) []types.SkillEntry {
	out := skills[:0]
	for _, s := range skills {
		if !strings.EqualFold(s.Name, name) {
			out = append(out, s)
		}
	}
	return out
}

func upsertSkill(skills []types.SkillEntry, edit types.SkillEntry) []types.SkillEntry {
	canonical := parsing.NormalizeSkillName(edit.Name)
	if canonical == "" {
		return skills
	}
	for i, s := range skills {
		if strings.EqualFold(s.Name, canonical) {
			skills[i].Level = edit.Level
			return skills
		}
	}
	return append(skills, types.SkillEntry{Name: canonical, Level: edit.Level})
}
