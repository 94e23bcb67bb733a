package health

import (
	"context"

	"github.com/kailas-cloud/prodsearch/internal/engine"
)

// EngineProber checks external engine availability.
type EngineProber interface {
	Status(ctx context.Context) engine.Status
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}
