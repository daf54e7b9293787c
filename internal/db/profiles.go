package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/types"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// GetCandidateProfile loads a candidate profile by ID. Skills, experience,
// and projects are stored as JSONB columns and decoded into the profile.
func (db *DB) GetCandidateProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error) {
	var (
		profile        types.CandidateProfile
		skillsJSON     []byte
		experienceJSON []byte
		projectsJSON   []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, resume_id, skills, experience, projects,
		        total_experience_months, cgpa, education_level, user_type
		 FROM candidates WHERE id = $1`,
		candidateID,
	).Scan(
		&profile.ID, &profile.Name, &profile.ResumeID,
		&skillsJSON, &experienceJSON, &projectsJSON,
		&profile.TotalExperienceMonths, &profile.CGPA,
		&profile.EducationLevel, &profile.UserType,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("candidate %s: %w", candidateID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate %s: %w", candidateID, err)
	}

	if err := json.Unmarshal(skillsJSON, &profile.Skills); err != nil {
		return nil, fmt.Errorf("failed to decode candidate skills: %w", err)
	}
	if err := json.Unmarshal(experienceJSON, &profile.Experience); err != nil {
		return nil, fmt.Errorf("failed to decode candidate experience: %w", err)
	}
	if err := json.Unmarshal(projectsJSON, &profile.Projects); err != nil {
		return nil, fmt.Errorf("failed to decode candidate projects: %w", err)
	}

	return &profile, nil
}
