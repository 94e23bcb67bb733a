// Package embedding provides the vectorization chain for catalog writes.
package embedding

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/prodsearch/internal/domain"
	"github.com/kailas-cloud/prodsearch/internal/metrics"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 5 * time.Second

// FallbackEmbedder decorates an optional embedding provider with a
// deterministic hash vectorizer. The provider is enrichment only: when it
// is absent, fails, times out, or returns a vector of the wrong dimension,
// the hash vectorizer answers instead. Embed never returns an error.
type FallbackEmbedder struct {
	provider domain.Embedder
	dim      int
	timeout  time.Duration
	logger   *zap.Logger
}

var _ domain.Embedder = (*FallbackEmbedder)(nil)

// New creates a FallbackEmbedder. provider may be nil.
func New(provider domain.Embedder, dim int, logger *zap.Logger) *FallbackEmbedder {
	return &FallbackEmbedder{
		provider: provider,
		dim:      dim,
		timeout:  DefaultTimeout,
		logger:   logger,
	}
}

// WithTimeout overrides the provider call timeout.
func (e *FallbackEmbedder) WithTimeout(timeout time.Duration) *FallbackEmbedder {
	if timeout > 0 {
		e.timeout = timeout
	}
	return e
}

// Embed vectorizes text, falling back to the hash vectorizer on any
// provider failure.
func (e *FallbackEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	if e.provider == nil {
		metrics.EmbeddingFallbacksTotal.WithLabelValues("no_provider").Inc()
		return domain.EmbeddingResult{Vector: HashVector(text, e.dim)}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	res, err := e.provider.Embed(ctx, text)
	if err != nil {
		e.logger.Warn("embedding provider failed, using hash vectorizer", zap.Error(err))
		metrics.EmbeddingFallbacksTotal.WithLabelValues("provider_error").Inc()
		return domain.EmbeddingResult{Vector: HashVector(text, e.dim)}, nil
	}
	if len(res.Vector) != e.dim {
		e.logger.Warn("embedding provider returned wrong dimensions, using hash vectorizer",
			zap.Int("got", len(res.Vector)),
			zap.Int("want", e.dim),
		)
		metrics.EmbeddingFallbacksTotal.WithLabelValues("bad_dimensions").Inc()
		return domain.EmbeddingResult{Vector: HashVector(text, e.dim)}, nil
	}

	return res, nil
}

// HealthCheck delegates to the provider when it supports health checks.
func (e *FallbackEmbedder) HealthCheck(ctx context.Context) error {
	if hc, ok := e.provider.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}
