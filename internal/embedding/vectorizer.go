// Package embedding turns text into fixed-length numeric vectors and
// exposes cosine similarity over them. A primary model-backed strategy and
// a deterministic fallback strategy are interchangeable behind the
// Vectorizer interface.
package embedding

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// Dimension is the vector length shared by every strategy. It matches the
// primary embedding model's output size so strategies are interchangeable
// to callers.
const Dimension = 768

// Embedding is a fixed-dimension vector tied to the job or text it represents
type Embedding struct {
	ID     string
	Values []float64
}

// Vectorizer converts text into a fixed-length vector
type Vectorizer interface {
	Vectorize(ctx context.Context, text string) ([]float64, error)
}

// Cosine returns the cosine similarity of two vectors clamped to [0,1].
// A zero-magnitude input yields 0; the function never divides by zero and
// never returns NaN.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	dot, magA, magB := 0.0, 0.0, 0.0
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(magA) * math.Sqrt(magB))
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0
	}
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// l2Normalize scales a vector to unit length in place. Zero vectors are
// left untouched.
func l2Normalize(values []float64) {
	mag := 0.0
	for _, v := range values {
		mag += v * v
	}
	if mag == 0 {
		return
	}
	mag = math.Sqrt(mag)
	for i := range values {
		values[i] /= mag
	}
}

// Chain tries a primary vectorizer and falls back to a deterministic one
// when the primary is unavailable or fails. Callers see a single strategy.
type Chain struct {
	primary  Vectorizer
	fallback Vectorizer
	logger   *zap.Logger
}

// NewChain builds a chained vectorizer. The fallback must never fail.
func NewChain(primary, fallback Vectorizer, logger *zap.Logger) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{primary: primary, fallback: fallback, logger: logger}
}

// Vectorize runs the primary strategy, switching to the fallback on error.
func (c *Chain) Vectorize(ctx context.Context, text string) ([]float64, error) {
	if c.primary != nil {
		values, err := c.primary.Vectorize(ctx, text)
		if err == nil {
			return values, nil
		}
		c.logger.Warn("primary vectorizer failed, using fallback", zap.Error(err))
	}
	return c.fallback.Vectorize(ctx, text)
}

// Similarity is cosine similarity with non-finite results coerced to 0
// and logged, per the vectorizer contract.
func (c *Chain) Similarity(a, b []float64) float64 {
	sim := Cosine(a, b)
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		c.logger.Warn("similarity produced non-finite value, coercing to 0")
		return 0
	}
	return sim
}
