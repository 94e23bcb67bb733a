package search

import (
	"context"

	"github.com/kailas-cloud/prodsearch/internal/domain/product"
)

// CatalogReader reads the product catalog for search.
type CatalogReader interface {
	List(ctx context.Context) ([]product.Product, error)
}
