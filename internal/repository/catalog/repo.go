// Package catalog implements the in-memory product store.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/kailas-cloud/prodsearch/internal/domain"
	"github.com/kailas-cloud/prodsearch/internal/domain/product"
)

// Repo is an append-only, insertion-ordered product store.
// Reads return snapshot copies, so concurrent queries never observe a
// partial insert.
type Repo struct {
	mu       sync.RWMutex
	products []product.Product
	byID     map[string]int
	nextID   int
}

// New creates an empty catalog store.
func New() *Repo {
	return &Repo{
		byID:   make(map[string]int),
		nextID: 1,
	}
}

// Add inserts a product. When the product carries no id, a monotonically
// increasing one (prod-N) is assigned. Duplicate ids are rejected.
func (r *Repo) Add(_ context.Context, p product.Product) (product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := p.ID()
	if id == "" {
		id = fmt.Sprintf("prod-%d", r.nextID)
		p = p.WithID(id)
	}
	if _, exists := r.byID[id]; exists {
		return product.Product{}, fmt.Errorf("%w: duplicate product id %q", domain.ErrValidation, id)
	}

	r.byID[id] = len(r.products)
	r.products = append(r.products, p)
	r.nextID++

	return p, nil
}

// List returns a snapshot of all products in insertion order.
func (r *Repo) List(_ context.Context) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]product.Product, len(r.products))
	copy(snapshot, r.products)
	return snapshot, nil
}

// Get returns the product with the given id.
func (r *Repo) Get(_ context.Context, id string) (product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return product.Product{}, fmt.Errorf("%w: %q", domain.ErrNotFound, id)
	}
	return r.products[idx], nil
}

// Count returns the number of products in the store.
func (r *Repo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}
