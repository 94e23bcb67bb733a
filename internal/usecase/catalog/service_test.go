package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/prodsearch/internal/domain"
	"github.com/kailas-cloud/prodsearch/internal/domain/product"
)

const testDim = 4

// --- Mocks ---

type mockRepo struct {
	products []product.Product
	addErr   error
}

func (m *mockRepo) Add(_ context.Context, p product.Product) (product.Product, error) {
	if m.addErr != nil {
		return product.Product{}, m.addErr
	}
	created := p.WithID(fmt.Sprintf("prod-%d", len(m.products)+1))
	m.products = append(m.products, created)
	return created, nil
}

func (m *mockRepo) List(_ context.Context) ([]product.Product, error) {
	return m.products, nil
}

func (m *mockRepo) Get(_ context.Context, id string) (product.Product, error) {
	for _, p := range m.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return product.Product{}, fmt.Errorf("%w: product %q", domain.ErrNotFound, id)
}

func (m *mockRepo) Count(_ context.Context) (int, error) {
	return len(m.products), nil
}

type mockEmbedder struct {
	calls []string
	err   error
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.calls = append(m.calls, text)
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Vector: []float32{1, 0, 0, 0}}, nil
}

// --- Tests ---

func TestAdd_Success(t *testing.T) {
	repo := &mockRepo{}
	embed := &mockEmbedder{}
	svc := New(repo, embed, testDim)

	created, err := svc.Add(context.Background(), "Wireless Mouse", "Ergonomic 2.4GHz mouse", "electronics", 29.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID() != "prod-1" {
		t.Errorf("expected id prod-1, got %q", created.ID())
	}
	if len(embed.calls) != 2 {
		t.Fatalf("expected 2 embed calls, got %d", len(embed.calls))
	}
	if embed.calls[0] != "Wireless Mouse" || embed.calls[1] != "Ergonomic 2.4GHz mouse" {
		t.Errorf("unexpected embed inputs: %v", embed.calls)
	}
}

func TestAdd_EmptyTitle(t *testing.T) {
	svc := New(&mockRepo{}, &mockEmbedder{}, testDim)

	_, err := svc.Add(context.Background(), "", "some description", "misc", 1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAdd_EmptyDescription(t *testing.T) {
	svc := New(&mockRepo{}, &mockEmbedder{}, testDim)

	_, err := svc.Add(context.Background(), "Some Product", "", "misc", 1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAdd_NegativePrice(t *testing.T) {
	svc := New(&mockRepo{}, &mockEmbedder{}, testDim)

	_, err := svc.Add(context.Background(), "Some Product", "some description", "misc", -5)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAdd_EmbedderError(t *testing.T) {
	embed := &mockEmbedder{err: errors.New("provider down")}
	svc := New(&mockRepo{}, embed, testDim)

	_, err := svc.Add(context.Background(), "Some Product", "some description", "misc", 1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAdd_WrongEmbedderDimensions(t *testing.T) {
	// Entity validation catches an embedder returning vectors of the wrong size.
	svc := New(&mockRepo{}, &mockEmbedder{}, 2)

	_, err := svc.Add(context.Background(), "Some Product", "some description", "misc", 1)
	if !errors.Is(err, domain.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestAdd_RepoError(t *testing.T) {
	repo := &mockRepo{addErr: fmt.Errorf("%w: duplicate id", domain.ErrValidation)}
	svc := New(repo, &mockEmbedder{}, testDim)

	_, err := svc.Add(context.Background(), "Some Product", "some description", "misc", 1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestListGetCount(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockEmbedder{}, testDim)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		title := fmt.Sprintf("Product %d", i+1)
		if _, err := svc.Add(ctx, title, "generic description", "misc", float64(i)); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	products, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for i, p := range products {
		want := fmt.Sprintf("Product %d", i+1)
		if p.Title() != want {
			t.Errorf("position %d: expected %q, got %q", i, want, p.Title())
		}
	}

	got, err := svc.Get(ctx, "prod-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title() != "Product 2" {
		t.Errorf("expected Product 2, got %q", got.Title())
	}

	if _, err := svc.Get(ctx, "prod-99"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	n, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}
}
