// Package observability provides the structured logger and formatted
// output utilities for verbose CLI mode.
package observability

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. Verbose mode enables debug-level,
// human-readable output; otherwise logs are JSON at info level. Logging
// here is advisory only and not part of any contract.
func NewLogger(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
