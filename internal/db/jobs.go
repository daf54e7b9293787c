package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirepulse/shortlist-engine/internal/types"
	"github.com/jackc/pgx/v5"
)

// GetJob loads a job posting by ID.
func (db *DB) GetJob(ctx context.Context, jobID string) (*types.JobPosting, error) {
	var job types.JobPosting

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, required_skills, experience_level, location, remote
		 FROM jobs WHERE id = $1`,
		jobID,
	).Scan(
		&job.ID, &job.Title, &job.Description, &job.RequiredSkills,
		&job.ExperienceLevel, &job.Location, &job.Remote,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}

	return &job, nil
}

// UpdateJobSkills persists a derived required-skills list back to a job
// posting. Used when the orchestrator extracts skills for a posting that
// arrived without an explicit list.
func (db *DB) UpdateJobSkills(ctx context.Context, jobID string, skills []string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET required_skills = $1, updated_at = NOW() WHERE id = $2`,
		skills, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job skills: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	return nil
}

// CreateJob inserts a job posting, generating required skills storage as
// an empty list when none are provided. Used by the ingest-job command.
func (db *DB) CreateJob(ctx context.Context, job *types.JobPosting) error {
	skills := job.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, description, required_skills, experience_level, location, remote)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   title = $2, description = $3, required_skills = $4,
		   experience_level = $5, location = $6, remote = $7, updated_at = NOW()`,
		job.ID, job.Title, job.Description, skills, job.ExperienceLevel, job.Location, job.Remote,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}
