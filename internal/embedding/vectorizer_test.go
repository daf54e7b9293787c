package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float64{0.5, 0.3, 0.8}

	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	a := []float64{1, 0, 0}
	b := []float64{0, 1, 0}

	assert.Zero(t, Cosine(a, b))
}

func TestCosine_ZeroVectorYieldsZero(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 2, 3}

	assert.Zero(t, Cosine(a, b))
	assert.Zero(t, Cosine(b, a))
}

func TestCosine_MismatchedLengths(t *testing.T) {
	assert.Zero(t, Cosine([]float64{1, 2}, []float64{1, 2, 3}))
	assert.Zero(t, Cosine(nil, []float64{1}))
}

func TestCosine_NegativeSimilarityClamped(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{-1, 0}

	assert.Zero(t, Cosine(a, b))
}

// failingVectorizer always errors, standing in for an unavailable primary model.
type failingVectorizer struct{}

func (f *failingVectorizer) Vectorize(context.Context, string) ([]float64, error) {
	return nil, errors.New("model unavailable")
}

func TestChain_FallsBackWhenPrimaryFails(t *testing.T) {
	chain := NewChain(&failingVectorizer{}, NewFallbackVectorizer(), nil)

	values, err := chain.Vectorize(context.Background(), "python developer")
	require.NoError(t, err)
	assert.Len(t, values, Dimension)
}

func TestChain_NoPrimaryUsesFallback(t *testing.T) {
	chain := NewChain(nil, NewFallbackVectorizer(), nil)

	values, err := chain.Vectorize(context.Background(), "python developer")
	require.NoError(t, err)
	assert.Len(t, values, Dimension)
}

func TestChain_Similarity(t *testing.T) {
	chain := NewChain(nil, NewFallbackVectorizer(), nil)
	ctx := context.Background()

	a, err := chain.Vectorize(ctx, "python developer with sql")
	require.NoError(t, err)
	b, err := chain.Vectorize(ctx, "python developer with sql")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, chain.Similarity(a, b), 1e-9)
}
