package predictor

import (
	"context"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/types"
)

// ProfileStore loads candidate profiles. Profiles are reconstructed fresh
// for every prediction; the engine never caches them.
type ProfileStore interface {
	GetCandidateProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error)
}

// JobStore loads job postings and persists derived required-skill lists.
type JobStore interface {
	GetJob(ctx context.Context, jobID string) (*types.JobPosting, error)
	UpdateJobSkills(ctx context.Context, jobID string, skills []string) error
}
