// Package product defines the catalog product entity.
package product

import (
	"fmt"

	"github.com/kailas-cloud/prodsearch/internal/domain"
)

// Product is a catalog entry with precomputed embedding vectors.
type Product struct {
	id          string
	title       string
	description string
	category    string
	price       float64
	titleVec    []float32
	descVec     []float32
}

// New validates and creates a product. The id may be empty; the catalog
// store assigns one on insert. Both vectors must have exactly dim components.
func New(
	id, title, description, category string, price float64,
	titleVec, descVec []float32, dim int,
) (Product, error) {
	if title == "" {
		return Product{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if description == "" {
		return Product{}, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if price < 0 {
		return Product{}, fmt.Errorf("%w: price must be non-negative, got %g", domain.ErrValidation, price)
	}
	if len(titleVec) != dim {
		return Product{}, fmt.Errorf("title vector: %w", domain.NewDimensionMismatch(len(titleVec), dim))
	}
	if len(descVec) != dim {
		return Product{}, fmt.Errorf("description vector: %w", domain.NewDimensionMismatch(len(descVec), dim))
	}

	return Product{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		price:       price,
		titleVec:    titleVec,
		descVec:     descVec,
	}, nil
}

// Reconstruct creates a product from trusted storage data without validation.
func Reconstruct(
	id, title, description, category string, price float64,
	titleVec, descVec []float32,
) Product {
	return Product{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		price:       price,
		titleVec:    titleVec,
		descVec:     descVec,
	}
}

// WithID returns a copy of the product with the given identifier.
func (p Product) WithID(id string) Product {
	p.id = id
	return p
}

// ID returns the product identifier.
func (p *Product) ID() string { return p.id }

// Title returns the product title.
func (p *Product) Title() string { return p.title }

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// Category returns the product category.
func (p *Product) Category() string { return p.category }

// Price returns the product price.
func (p *Product) Price() float64 { return p.price }

// TitleVector returns the title embedding.
func (p *Product) TitleVector() []float32 { return p.titleVec }

// DescriptionVector returns the description embedding.
func (p *Product) DescriptionVector() []float32 { return p.descVec }
