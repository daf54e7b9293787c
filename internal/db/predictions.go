package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hirepulse/shortlist-engine/internal/types"
)

// SavePrediction stores a prediction result for audit. The full result is
// kept as JSONB alongside the queryable columns.
func (db *DB) SavePrediction(ctx context.Context, candidateID uuid.UUID, result *types.PredictionResult) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal prediction: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO predictions (candidate_id, job_id, probability, status, description_hash, result)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		candidateID, result.JobID, result.ShortlistProbability,
		string(result.Status), result.DescriptionHash, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save prediction: %w", err)
	}
	return id, nil
}

// ListPredictions returns the stored predictions for a candidate, newest
// first, up to limit.
func (db *DB) ListPredictions(ctx context.Context, candidateID uuid.UUID, limit int) ([]types.PredictionResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT result FROM predictions
		 WHERE candidate_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		candidateID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	var results []types.PredictionResult
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		var result types.PredictionResult
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, fmt.Errorf("failed to decode prediction: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate predictions: %w", err)
	}

	return results, nil
}
