package chi

import (
	"context"

	"github.com/kailas-cloud/prodsearch/internal/engine"
)

// EngineClient is the external engine surface the API exposes:
// a status probe and a raw query passthrough, nothing more.
type EngineClient interface {
	Status(ctx context.Context) engine.Status
	Query(ctx context.Context, index, query string, topK int) (engine.QueryResult, error)
}
