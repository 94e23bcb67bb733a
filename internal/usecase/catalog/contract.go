package catalog

import (
	"context"

	"github.com/kailas-cloud/prodsearch/internal/domain/product"
)

// Repository defines the storage contract for catalog operations.
type Repository interface {
	Add(ctx context.Context, p product.Product) (product.Product, error)
	List(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id string) (product.Product, error)
	Count(ctx context.Context) (int, error)
}
