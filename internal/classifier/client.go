// Package classifier provides a typed client for the external candidate
// strength classifier. The model is an opaque, versioned service: an
// ordered feature vector goes in, a bounded score comes out. The concrete
// transport lives behind the ScoringClient interface.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds one classifier round-trip.
const DefaultTimeout = 15 * time.Second

// ScoringClient abstracts the external strength classifier. Timeouts and
// transport failures surface as InvocationError; shape mismatches as
// ContractError.
type ScoringClient interface {
	PredictStrength(ctx context.Context, req *Request) (*Response, error)
}

// HTTPClient reaches the classifier over a JSON-over-HTTP exchange.
type HTTPClient struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewHTTPClient creates a client for the classifier at endpoint. A zero
// timeout uses DefaultTimeout.
func NewHTTPClient(endpoint string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// PredictStrength sends the feature vector and returns the bounded score.
// A score of exactly 0 for a non-all-zero feature vector is rejected as an
// invocation failure: the deployed model never legitimately returns a hard
// zero for a populated profile.
func (c *HTTPClient) PredictStrength(ctx context.Context, req *Request) (*Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &InvocationError{Message: "failed to encode request", Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &InvocationError{Message: "failed to build request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &InvocationError{Message: "request failed", Cause: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &InvocationError{Message: "failed to read response", Cause: err}
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, &InvocationError{
			Message: fmt.Sprintf("unexpected status %d: %s", httpResp.StatusCode, truncate(body, 200)),
		}
	}

	if err := validateResponseBody(body); err != nil {
		return nil, err
	}

	var resp struct {
		Response
		Error string `json:"error,omitempty"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ContractError{Message: "failed to decode response", Cause: err}
	}
	if resp.Error != "" {
		return nil, &InvocationError{Message: resp.Error}
	}

	if err := checkScore(&resp.Response, req); err != nil {
		return nil, err
	}

	c.logger.Debug("classifier responded",
		zap.Float64("score", resp.Score),
		zap.Float64("confidence", resp.Confidence))
	return &resp.Response, nil
}

// checkScore rejects a hard-zero score for a populated feature vector.
func checkScore(resp *Response, req *Request) error {
	if resp.Score != 0 {
		return nil
	}
	for _, v := range req.Features {
		if v != 0 {
			return &InvocationError{Message: "score is exactly 0 for a non-empty profile; treating as a failed invocation"}
		}
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
