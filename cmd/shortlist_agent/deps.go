package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hirepulse/shortlist-engine/internal/classifier"
	"github.com/hirepulse/shortlist-engine/internal/config"
	"github.com/hirepulse/shortlist-engine/internal/db"
	"github.com/hirepulse/shortlist-engine/internal/embedcache"
	"github.com/hirepulse/shortlist-engine/internal/embedding"
	"github.com/hirepulse/shortlist-engine/internal/observability"
	"github.com/hirepulse/shortlist-engine/internal/predictor"
	"go.uber.org/zap"
)

// deps bundles the wired collaborators shared by the predict and what-if
// commands.
type deps struct {
	logger   *zap.Logger
	database *db.DB
	engine   *predictor.Engine
	cache    *embedcache.Cache
	gemini   *embedding.GeminiVectorizer
}

// close releases resources in reverse construction order.
func (d *deps) close() {
	if d.gemini != nil {
		_ = d.gemini.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
	if d.logger != nil {
		_ = d.logger.Sync()
	}
}

// resolveConfig merges an optional config file with environment fallbacks.
func resolveConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.ClassifierEndpoint == "" {
		cfg.ClassifierEndpoint = os.Getenv("CLASSIFIER_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildDeps wires the full engine from configuration. The Gemini
// vectorizer is optional: without an API key the deterministic fallback
// carries all embedding work.
func buildDeps(ctx context.Context, cfg *config.Config, verbose bool) (*deps, error) {
	logger, err := observability.NewLogger(verbose || cfg.Verbose)
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL or 'database_url' in config)")
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	var gemini *embedding.GeminiVectorizer
	var primary embedding.Vectorizer
	if cfg.APIKey != "" {
		gemini, err = embedding.NewGeminiVectorizer(ctx, cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, err
		}
		if cfg.TimeoutSeconds > 0 {
			gemini.WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
		}
		primary = gemini
	} else {
		logger.Warn("no Gemini API key configured, using deterministic fallback embeddings only")
	}
	chain := embedding.NewChain(primary, embedding.NewFallbackVectorizer(), logger)

	cache := embedcache.New(logger)
	if cfg.DisableCache {
		cache.SetDisabled(true)
	}

	if cfg.ClassifierEndpoint == "" {
		database.Close()
		return nil, fmt.Errorf("classifier endpoint is required (set CLASSIFIER_URL or 'classifier_endpoint' in config)")
	}
	scorer := classifier.NewHTTPClient(cfg.ClassifierEndpoint,
		time.Duration(cfg.TimeoutSeconds)*time.Second, logger)

	engine := predictor.NewEngine(database, database, chain, cache, scorer, logger)
	if cfg.ClassifierBlend > 0 {
		weights := predictor.DefaultWeights()
		weights.ClassifierBlend = cfg.ClassifierBlend
		engine.WithWeights(weights)
	}

	return &deps{
		logger:   logger,
		database: database,
		engine:   engine,
		cache:    cache,
		gemini:   gemini,
	}, nil
}
