// Package catalog implements product management over the in-memory store.
package catalog

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/prodsearch/internal/domain"
	"github.com/kailas-cloud/prodsearch/internal/domain/product"
)

// Service handles product creation and retrieval. Every added product gets
// embedding vectors for both textual fields; the embedder is the fallback
// chain, so enrichment failures never fail an add.
type Service struct {
	repo  Repository
	embed domain.Embedder
	dim   int
}

// New creates a catalog service.
func New(repo Repository, embed domain.Embedder, dim int) *Service {
	return &Service{repo: repo, embed: embed, dim: dim}
}

// Add validates, vectorizes, and stores a new product.
func (s *Service) Add(
	ctx context.Context, title, description, category string, price float64,
) (product.Product, error) {
	titleVec, err := s.vectorize(ctx, title)
	if err != nil {
		return product.Product{}, err
	}
	descVec, err := s.vectorize(ctx, description)
	if err != nil {
		return product.Product{}, err
	}

	p, err := product.New("", title, description, category, price, titleVec, descVec, s.dim)
	if err != nil {
		return product.Product{}, err
	}

	created, err := s.repo.Add(ctx, p)
	if err != nil {
		return product.Product{}, fmt.Errorf("add product: %w", err)
	}
	return created, nil
}

// List returns all products in insertion order.
func (s *Service) List(ctx context.Context) ([]product.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Get returns the product with the given id.
func (s *Service) Get(ctx context.Context, id string) (product.Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return product.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Count returns the catalog size.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// vectorize embeds a non-empty field. Empty fields skip the embedder and
// surface the entity validation error from product.New instead.
func (s *Service) vectorize(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return make([]float32, s.dim), nil
	}
	res, err := s.embed.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: embed field: %v", domain.ErrValidation, err)
	}
	return res.Vector, nil
}
