package sdk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/prodsearch/internal/domain/product"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/mode"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/request"
	catalogrepo "github.com/kailas-cloud/prodsearch/internal/repository/catalog"
	cataloguc "github.com/kailas-cloud/prodsearch/internal/usecase/catalog"
	embeddinguc "github.com/kailas-cloud/prodsearch/internal/usecase/embedding"
	searchuc "github.com/kailas-cloud/prodsearch/internal/usecase/search"
)

const defaultDimensions = 512

// Client is the embedded prodsearch entry point.
type Client struct {
	catalogSvc *cataloguc.Service
	searchSvc  *searchuc.Service
}

// New creates an embedded client with its own catalog store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		dimensions:  defaultDimensions,
		vectorField: string(searchuc.FieldTitle),
		logger:      zap.NewNop(),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	switch searchuc.VectorField(cfg.vectorField) {
	case searchuc.FieldTitle, searchuc.FieldDescription, searchuc.FieldAverage:
		// ok
	default:
		return nil, fmt.Errorf("sdk: invalid vector field %q", cfg.vectorField)
	}

	repo := catalogrepo.New()
	embedder := embeddinguc.New(cfg.provider, cfg.dimensions, cfg.logger)

	if cfg.seed {
		vectorize := func(text string) []float32 {
			return embeddinguc.HashVector(text, cfg.dimensions)
		}
		if err := repo.Seed(context.Background(), vectorize); err != nil {
			return nil, fmt.Errorf("sdk: seed catalog: %w", err)
		}
	}

	return &Client{
		catalogSvc: cataloguc.New(repo, embedder, cfg.dimensions),
		searchSvc: searchuc.New(repo, cfg.dimensions).
			WithVectorField(searchuc.VectorField(cfg.vectorField)),
	}, nil
}

// AddProduct validates, vectorizes, and stores a new product.
func (c *Client) AddProduct(ctx context.Context, params AddProductParams) (Product, error) {
	p, err := c.catalogSvc.Add(ctx, params.Title, params.Description, params.Category, params.Price)
	if err != nil {
		return Product{}, err
	}
	return productFromDomain(&p), nil
}

// Products returns all products in insertion order.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	list, err := c.catalogSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Product, len(list))
	for i := range list {
		out[i] = productFromDomain(&list[i])
	}
	return out, nil
}

// Product returns a single product by id.
func (c *Client) Product(ctx context.Context, id string) (Product, error) {
	p, err := c.catalogSvc.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	return productFromDomain(&p), nil
}

// Search executes a product search.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]SearchResult, error) {
	req, err := request.New(
		params.Query, mode.Mode(params.Mode), params.QueryVector, params.TopK, params.Limit,
	)
	if err != nil {
		return nil, err
	}

	results, err := c.searchSvc.Search(ctx, &req)
	if err != nil {
		return nil, err
	}

	out := make([]SearchResult, len(results))
	for i := range results {
		p := results[i].Product()
		out[i] = SearchResult{
			Product:      productFromDomain(&p),
			Score:        results[i].Score(),
			LexicalMatch: results[i].Lexical(),
			MatchedField: string(results[i].MatchedField()),
		}
	}
	return out, nil
}

func productFromDomain(p *product.Product) Product {
	return Product{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
	}
}
