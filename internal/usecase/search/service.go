// Package search implements the hybrid retrieval engine: lexical matching,
// cosine-similarity vector ranking, and their combination.
package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/prodsearch/internal/domain/product"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/mode"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/request"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/result"
)

// Service dispatches queries across text, semantic, and hybrid modes.
type Service struct {
	catalog CatalogReader
	field   VectorField
	dim     int
}

// New creates a search service ranking against the title vector by default.
func New(catalog CatalogReader, dim int) *Service {
	return &Service{catalog: catalog, field: FieldTitle, dim: dim}
}

// WithVectorField overrides the embedding field used for ranking.
func (s *Service) WithVectorField(field VectorField) *Service {
	s.field = field
	return s
}

// Search executes a product search. Results are deterministic: the same
// request against an unmutated catalog always yields the same ordered list.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Result, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	switch req.Mode() {
	case mode.Text:
		return s.searchText(req, products), nil
	case mode.Semantic:
		return s.searchSemantic(req, products)
	case mode.Hybrid:
		return s.searchHybrid(req, products)
	default:
		return nil, fmt.Errorf("unsupported search mode: %s", req.Mode())
	}
}

// searchText returns all lexical matches ranked by match-field priority:
// title matches before description-only matches, catalog order within each.
func (s *Service) searchText(req *request.Request, products []product.Product) []result.Result {
	matches := rankMatches(matchLexical(req.Query(), products))

	results := make([]result.Result, 0, len(matches))
	for _, m := range matches {
		results = append(results, result.NewLexical(m.product, 0, m.field))
	}
	return results
}

// searchSemantic returns the top-K products by cosine similarity.
func (s *Service) searchSemantic(req *request.Request, products []product.Product) ([]result.Result, error) {
	ranked, err := rankBySimilarity(req.Vector(), products, s.field, s.dim, req.TopK())
	if err != nil {
		return nil, fmt.Errorf("rank by similarity: %w", err)
	}
	return ranked, nil
}

// searchHybrid merges lexical matches with the vector ranking. The full
// catalog is ranked once so lexical hits carry their cosine score, then the
// combiner fills from the top-K and truncates to the request limit.
func (s *Service) searchHybrid(req *request.Request, products []product.Product) ([]result.Result, error) {
	ranked, err := rankBySimilarity(req.Vector(), products, s.field, s.dim, 0)
	if err != nil {
		return nil, fmt.Errorf("rank by similarity: %w", err)
	}

	lex := rankMatches(matchLexical(req.Query(), products))
	return combineHybrid(lex, ranked, req.TopK(), req.Limit()), nil
}
