// Package predictor composes feature extraction, embeddings, domain
// classification, and the external strength classifier into one shortlist
// probability prediction per (candidate, job) pair.
package predictor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/classifier"
	"github.com/hirepulse/shortlist-engine/internal/domain"
	"github.com/hirepulse/shortlist-engine/internal/embedcache"
	"github.com/hirepulse/shortlist-engine/internal/embedding"
	"github.com/hirepulse/shortlist-engine/internal/features"
	"github.com/hirepulse/shortlist-engine/internal/parsing"
	"github.com/hirepulse/shortlist-engine/internal/types"
	"go.uber.org/zap"
)

// Weights holds the combination constants for the final probability.
// The defaults were chosen empirically against historical outcomes; they
// are parameters, not domain truths, so callers may tune them.
type Weights struct {
	Strength    float64 // weight of blended candidate strength
	SkillMatch  float64 // weight of required-skill coverage
	DomainMatch float64 // weight of domain agreement
	Semantic    float64 // weight of embedding similarity

	ClassifierBlend float64 // share of strength taken from the external classifier

	MinProbability     float64
	MaxProbability     float64
	StrongProfileFloor float64 // floor for rich, same-domain profiles
}

// DefaultWeights returns the production combination constants.
func DefaultWeights() Weights {
	return Weights{
		Strength:           0.35,
		SkillMatch:         0.35,
		DomainMatch:        0.20,
		Semantic:           0.10,
		ClassifierBlend:    0.60,
		MinProbability:     0.10,
		MaxProbability:     0.95,
		StrongProfileFloor: 0.30,
	}
}

// Thresholds for the strong-profile sanity floor
const (
	strongFloorSkills      = 20
	strongFloorInternships = 1
	strongFloorProjects    = 1
)

// Engine orchestrates one prediction: validate, extract, embed, score,
// combine, explain. All collaborators are injected so tests can replace
// them.
type Engine struct {
	profiles   ProfileStore
	jobs       JobStore
	vectorizer *embedding.Chain
	cache      *embedcache.Cache
	scorer     classifier.ScoringClient
	weights    Weights
	logger     *zap.Logger
}

// NewEngine wires an engine from its collaborators.
func NewEngine(profiles ProfileStore, jobs JobStore, vectorizer *embedding.Chain,
	cache *embedcache.Cache, scorer classifier.ScoringClient, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		profiles:   profiles,
		jobs:       jobs,
		vectorizer: vectorizer,
		cache:      cache,
		scorer:     scorer,
		weights:    DefaultWeights(),
		logger:     logger,
	}
}

// WithWeights overrides the combination constants.
func (e *Engine) WithWeights(w Weights) *Engine {
	e.weights = w
	return e
}

// Evaluation is the scored outcome of one profile against one job,
// before explanation and result shaping.
type Evaluation struct {
	Probability float64 // 0-1
	Strength    float64 // 0-1
	JobMatch    float64 // 0-1

	SkillMatchScore float64
	DomainScore     float64
	Semantic        float64

	MatchedSkills []string
	MissingSkills []string
	WeakSkills    []string

	CandidateDomain types.DomainClassification
	JobDomain       types.DomainClassification
	DomainRelation  string
	EmbeddingSource types.EmbeddingSource
}

// Snapshot converts the evaluation to the 0-100 scale used in results.
func (ev *Evaluation) Snapshot() types.ScoreSnapshot {
	return types.ScoreSnapshot{
		Probability:       round1(ev.Probability * 100),
		CandidateStrength: round1(ev.Strength * 100),
		JobMatchScore:     round1(ev.JobMatch * 100),
	}
}

// Predict runs the full pipeline for a stored candidate and job.
// Validation, schema-contract, and contamination errors are returned to
// the caller; any other internal failure is caught and converted into a
// neutral fallback result so callers always receive a result shape.
func (e *Engine) Predict(ctx context.Context, candidateID uuid.UUID, jobID string) (result *types.PredictionResult, err error) {
	profile, job, err := e.fetch(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	if err := validateInputs(profile, job); err != nil {
		return nil, err
	}

	// Reset: state left by a previous request for a different job must
	// not leak into this one. Runs only once the request is known to be
	// valid, so a rejected request cannot evict live entries.
	e.cache.ClearStale(jobID)

	// Top-level catch: a panic past this point still yields a structured
	// fallback result with the job title resolved for context.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("prediction panicked, returning fallback result",
				zap.String("job_id", job.ID), zap.Any("panic", r))
			result = fallbackResult(job, fmt.Errorf("internal error: %v", r))
			err = nil
		}
	}()

	e.deriveRequiredSkills(ctx, job)

	ev, err := e.EvaluateProfile(ctx, profile, job)
	if err != nil {
		if isFatal(err) {
			return nil, err
		}
		e.logger.Error("prediction failed, returning fallback result",
			zap.String("job_id", job.ID), zap.Error(err))
		return fallbackResult(job, err), nil
	}

	result = &types.PredictionResult{
		JobID:                job.ID,
		JobTitle:             job.Title,
		ShortlistProbability: round1(ev.Probability * 100),
		CandidateStrength:    round1(ev.Strength * 100),
		JobMatchScore:        round1(ev.JobMatch * 100),
		MatchedSkills:        ev.MatchedSkills,
		MissingSkills:        ev.MissingSkills,
		WeakSkills:           ev.WeakSkills,
		Improvements:         explain(profile, job, ev),
		DomainMatch:          fmt.Sprintf("%s (%s)", ev.DomainRelation, ev.JobDomain.Domain),
		DescriptionHash:      hashDescription(job.Description),
		EmbeddingSource:      ev.EmbeddingSource,
		Status:               types.StatusSuccess,
	}
	return result, nil
}

// EvaluateProfile runs extraction, embedding, and scoring for an
// in-memory profile against a job. The what-if simulator calls this
// directly with cloned profiles.
func (e *Engine) EvaluateProfile(ctx context.Context, profile *types.CandidateProfile, job *types.JobPosting) (*Evaluation, error) {
	// Extract: feature vector and domain classifications.
	profileVector := features.Extract(profile)
	candidateText := strings.Join(profile.SkillNames(), ", ")
	jobText := job.Title + " " + job.Description

	candidateDomain := domain.Classify(candidateText, profile.SkillNames())
	jobDomain := domain.Classify(jobText, job.RequiredSkills)

	// Candidate strength: external classifier blended with a directly
	// computed richness score.
	mapped, err := features.MapToClassifierSchema(profileVector)
	if err != nil {
		return nil, err
	}
	req, err := classifier.NewRequest(mapped, e.logger)
	if err != nil {
		return nil, err
	}
	resp, err := e.scorer.PredictStrength(ctx, req)
	if err != nil {
		return nil, err
	}
	blend := e.weights.ClassifierBlend
	strength := blend*resp.Score + (1-blend)*computeRichness(profile)

	// Skill match and domain match.
	match := computeSkillMatch(profile, job.RequiredSkills)
	domainScore, relation := computeDomainMatch(candidateDomain, jobDomain)

	// Semantic similarity via the job embedding cache.
	jobEmbedding, source, err := e.jobEmbedding(ctx, job)
	if err != nil {
		return nil, err
	}
	candidateEmbedding, err := e.vectorizer.Vectorize(ctx, candidateText)
	if err != nil {
		return nil, err
	}
	semantic := adjustSemantic(
		e.vectorizer.Similarity(candidateEmbedding, jobEmbedding.Values),
		len(job.Description), len(candidateText), len(match.matched),
	)

	probability := e.combine(profile, candidateDomain, jobDomain, strength, match.score, domainScore, semantic)

	jobMatch := clamp(0.55*match.score+0.25*domainScore+0.20*semantic, 0, 1)

	return &Evaluation{
		Probability:     probability,
		Strength:        clamp(strength, 0, 1),
		JobMatch:        jobMatch,
		SkillMatchScore: match.score,
		DomainScore:     domainScore,
		Semantic:        semantic,
		MatchedSkills:   match.matched,
		MissingSkills:   match.missing,
		WeakSkills:      match.weak,
		CandidateDomain: candidateDomain,
		JobDomain:       jobDomain,
		DomainRelation:  relation,
		EmbeddingSource: source,
	}, nil
}

// combine applies the weighted formula, its bounds, and the strong-profile
// sanity floor.
func (e *Engine) combine(profile *types.CandidateProfile, candDomain, jobDomain types.DomainClassification,
	strength, skillMatch, domainScore, semantic float64) float64 {
	w := e.weights
	probability := clamp(
		w.Strength*strength+w.SkillMatch*skillMatch+w.DomainMatch*domainScore+w.Semantic*semantic,
		w.MinProbability, w.MaxProbability,
	)

	// Sanity override: the formula must not score a rich, same-domain
	// profile implausibly low.
	strongProfile := len(profile.Skills) >= strongFloorSkills &&
		profile.CountExperience(types.ExperienceInternship) >= strongFloorInternships &&
		len(profile.Projects) >= strongFloorProjects &&
		candDomain.Domain != domain.General &&
		candDomain.Domain == jobDomain.Domain
	if strongProfile && probability < w.StrongProfileFloor {
		probability = w.StrongProfileFloor
	}
	return probability
}

// jobEmbedding serves the job's embedding from the cache or computes one,
// running the contamination check before a fresh entry is stored.
func (e *Engine) jobEmbedding(ctx context.Context, job *types.JobPosting) (*embedding.Embedding, types.EmbeddingSource, error) {
	if cached, ok := e.cache.Get(job.ID); ok {
		return cached, types.EmbeddingCached, nil
	}

	values, err := e.vectorizer.Vectorize(ctx, job.Title+" "+job.Description)
	if err != nil {
		return nil, "", err
	}
	if err := e.cache.PutChecked(job.ID, values); err != nil {
		return nil, "", err
	}
	return &embedding.Embedding{ID: job.ID, Values: values}, types.EmbeddingFresh, nil
}

// fetch loads the candidate and job from their stores.
func (e *Engine) fetch(ctx context.Context, candidateID uuid.UUID, jobID string) (*types.CandidateProfile, *types.JobPosting, error) {
	profile, err := e.profiles.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load candidate %s: %w", candidateID, err)
	}
	job, err := e.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}
	return profile, job, nil
}

// deriveRequiredSkills fills an empty required-skills list from the job
// text and persists the derived list back to the store. Persistence
// failures are logged, not fatal: the in-memory list still drives scoring.
func (e *Engine) deriveRequiredSkills(ctx context.Context, job *types.JobPosting) {
	if len(job.RequiredSkills) > 0 {
		return
	}
	derived := parsing.ExtractSkillKeywords(job.Title, job.Description)
	if len(derived) == 0 {
		return
	}
	job.RequiredSkills = derived
	if err := e.jobs.UpdateJobSkills(ctx, job.ID, derived); err != nil {
		e.logger.Warn("failed to persist derived job skills",
			zap.String("job_id", job.ID), zap.Error(err))
	}
}

// validateInputs enforces the boundary invariants before any scoring step.
func validateInputs(profile *types.CandidateProfile, job *types.JobPosting) error {
	if job.ID == "" {
		return &ValidationError{Field: "job.id", Message: "must not be empty"}
	}
	if strings.TrimSpace(job.Title) == "" {
		return &ValidationError{Field: "job.title", Message: "must not be empty"}
	}
	if len(strings.TrimSpace(job.Description)) < types.MinDescriptionLength {
		return &ValidationError{
			Field:   "job.description",
			Message: fmt.Sprintf("must be at least %d characters after trimming", types.MinDescriptionLength),
		}
	}
	if profile.ID == uuid.Nil {
		return &ValidationError{Field: "candidate.id", Message: "must not be empty"}
	}
	if strings.TrimSpace(profile.ResumeID) == "" {
		return &ValidationError{Field: "candidate.resume_id", Message: "must not be empty"}
	}
	return nil
}

// isFatal reports whether an error must stop the request instead of
// degrading into a fallback result: bad input, contract/version skew, or
// embedding contamination.
func isFatal(err error) bool {
	var validationErr *ValidationError
	var schemaErr *features.SchemaError
	var contractErr *classifier.ContractError
	var contaminationErr *embedcache.ContaminationError
	return errors.As(err, &validationErr) ||
		errors.As(err, &schemaErr) ||
		errors.As(err, &contractErr) ||
		errors.As(err, &contaminationErr)
}

// fallbackResult builds the neutral result returned when the pipeline
// fails for a recoverable reason.
func fallbackResult(job *types.JobPosting, cause error) *types.PredictionResult {
	return &types.PredictionResult{
		JobID:                job.ID,
		JobTitle:             job.Title,
		ShortlistProbability: 50,
		CandidateStrength:    50,
		JobMatchScore:        50,
		MatchedSkills:        []string{},
		MissingSkills:        []string{},
		WeakSkills:           []string{},
		Improvements:         []string{fmt.Sprintf("Prediction unavailable: %v", cause)},
		DomainMatch:          domain.General,
		DescriptionHash:      hashDescription(job.Description),
		EmbeddingSource:      types.EmbeddingFresh,
		Status:               types.StatusFallback,
	}
}

// hashDescription returns the sha256 hex digest of a job description,
// carried in results for audit and debugging.
func hashDescription(description string) string {
	sum := sha256.Sum256([]byte(description))
	return hex.EncodeToString(sum[:])
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
