package sdk

import (
	"go.uber.org/zap"

	"github.com/kailas-cloud/prodsearch/internal/domain"
)

type clientConfig struct {
	dimensions  int
	vectorField string
	seed        bool
	provider    domain.Embedder
	logger      *zap.Logger
}

// Option configures the SDK client.
type Option interface {
	apply(*clientConfig)
}

type optionFunc func(*clientConfig)

func (f optionFunc) apply(cfg *clientConfig) { f(cfg) }

// WithDimensions sets the embedding dimensionality (default 512).
func WithDimensions(dim int) Option {
	return optionFunc(func(cfg *clientConfig) {
		if dim > 0 {
			cfg.dimensions = dim
		}
	})
}

// WithVectorField selects the embedding field the ranker compares against:
// "title" (default), "description", or "average".
func WithVectorField(field string) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.vectorField = field })
}

// WithSeed fills the catalog with the sample dataset.
func WithSeed() Option {
	return optionFunc(func(cfg *clientConfig) { cfg.seed = true })
}

// WithEmbedder plugs an external embedding provider. Without one, products
// get deterministic hash-derived vectors.
func WithEmbedder(provider domain.Embedder) Option {
	return optionFunc(func(cfg *clientConfig) { cfg.provider = provider })
}

// WithLogger sets the logger (default zap.NewNop()).
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(cfg *clientConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	})
}
