package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictStrength_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Features, len(req.FeatureNames))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"score": 0.72, "confidence": 0.9}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second, nil)
	req, err := NewRequest(classifierVector(), nil)
	require.NoError(t, err)

	resp, err := client.PredictStrength(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 0.72, resp.Score, 1e-9)
	assert.InDelta(t, 0.9, resp.Confidence, 1e-9)
}

func TestPredictStrength_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second, nil)
	req, err := NewRequest(classifierVector(), nil)
	require.NoError(t, err)

	_, err = client.PredictStrength(context.Background(), req)

	var invocationErr *InvocationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invocationErr))
	assert.Contains(t, err.Error(), "503")
}

func TestPredictStrength_ErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"score": 0, "error": "model version mismatch"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second, nil)
	req, err := NewRequest(classifierVector(), nil)
	require.NoError(t, err)

	_, err = client.PredictStrength(context.Background(), req)

	var invocationErr *InvocationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invocationErr))
	assert.Contains(t, err.Error(), "model version mismatch")
}

func TestPredictStrength_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"prediction": 0.7}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second, nil)
	req, err := NewRequest(classifierVector(), nil)
	require.NoError(t, err)

	_, err = client.PredictStrength(context.Background(), req)

	var contractErr *ContractError
	require.Error(t, err)
	assert.True(t, errors.As(err, &contractErr))
}

func TestPredictStrength_HardZeroRejectedForPopulatedVector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"score": 0}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second, nil)
	req, err := NewRequest(classifierVector(), nil)
	require.NoError(t, err)

	_, err = client.PredictStrength(context.Background(), req)

	var invocationErr *InvocationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invocationErr))
}

func TestPredictStrength_ZeroScoreAllowedForEmptyVector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"score": 0}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second, nil)
	req := &Request{
		Features:     make([]float64, len(classifierVector().Names)),
		FeatureNames: classifierVector().Names,
	}

	resp, err := client.PredictStrength(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, resp.Score)
}

func TestPredictStrength_ConnectionRefused(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", time.Second, nil)
	req, err := NewRequest(classifierVector(), nil)
	require.NoError(t, err)

	_, err = client.PredictStrength(context.Background(), req)

	var invocationErr *InvocationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &invocationErr))
}
