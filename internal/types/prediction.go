package types

import "github.com/go-playground/validator/v10"

// EmbeddingSource records whether a job embedding was computed for this
// request or served from the cache
type EmbeddingSource string

// Embedding source constants
const (
	EmbeddingFresh  EmbeddingSource = "fresh"
	EmbeddingCached EmbeddingSource = "cache"
)

// PredictionStatus marks whether a result came from the full pipeline or
// the neutral fallback path
type PredictionStatus string

// Prediction status constants
const (
	StatusSuccess  PredictionStatus = "success"
	StatusFallback PredictionStatus = "fallback"
)

// DomainClassification is the outcome of matching free text against the
// fixed professional-domain keyword table
type DomainClassification struct {
	Domain string  `json:"domain"`
	Score  float64 `json:"score"` // keyword coverage, 0-1
}

// PredictionResult is the engine's complete answer for one (candidate, job) pair
type PredictionResult struct {
	JobID                string           `json:"job_id"`
	JobTitle             string           `json:"job_title"`
	ShortlistProbability float64          `json:"shortlist_probability"` // 0-100
	CandidateStrength    float64          `json:"candidate_strength"`    // 0-100
	JobMatchScore        float64          `json:"job_match_score"`       // 0-100
	MatchedSkills        []string         `json:"matched_skills"`
	MissingSkills        []string         `json:"missing_skills"`
	WeakSkills           []string         `json:"weak_skills"`
	Improvements         []string         `json:"improvements"`
	DomainMatch          string           `json:"domain_match"`
	DescriptionHash      string           `json:"description_hash"`
	EmbeddingSource      EmbeddingSource  `json:"embedding_source"`
	Status               PredictionStatus `json:"status"`
}

// WhatIfScenario describes a hypothetical, non-persisted profile edit
type WhatIfScenario struct {
	JobID        string       `json:"job_id" validate:"required"`
	AddSkills    []string     `json:"add_skills,omitempty"`
	RemoveSkills []string     `json:"remove_skills,omitempty"`
	ModifySkills []SkillEntry `json:"modify_skills,omitempty" validate:"dive"`
}

// Validate validates the scenario shape using the validator.
func (s *WhatIfScenario) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// IsEmpty reports whether the scenario changes nothing.
func (s *WhatIfScenario) IsEmpty() bool {
	return len(s.AddSkills) == 0 && len(s.RemoveSkills) == 0 && len(s.ModifySkills) == 0
}

// ScoreSnapshot captures the three sub-scores for one profile evaluation
type ScoreSnapshot struct {
	Probability       float64 `json:"probability"`        // 0-100
	CandidateStrength float64 `json:"candidate_strength"` // 0-100
	JobMatchScore     float64 `json:"job_match_score"`    // 0-100
}

// WhatIfResult reports baseline and projected scores plus their deltas
type WhatIfResult struct {
	Scenario         WhatIfScenario `json:"scenario"`
	Baseline         ScoreSnapshot  `json:"baseline"`
	Projected        ScoreSnapshot  `json:"projected"`
	ProbabilityDelta float64        `json:"probability_delta"`
	StrengthDelta    float64        `json:"strength_delta"`
	JobMatchDelta    float64        `json:"job_match_delta"`
}
