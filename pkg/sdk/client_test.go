package sdk

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/prodsearch/internal/domain"
	embeddinguc "github.com/kailas-cloud/prodsearch/internal/usecase/embedding"
)

func TestNew_InvalidVectorField(t *testing.T) {
	_, err := New(WithVectorField("body"))
	if err == nil {
		t.Fatal("expected error for invalid vector field")
	}
}

func TestAddAndGetProduct(t *testing.T) {
	client, err := New(WithDimensions(32))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	created, err := client.AddProduct(ctx, AddProductParams{
		Title:       "Mechanical Keyboard",
		Description: "Hot-swappable 75 percent layout",
		Category:    "electronics",
		Price:       129,
	})
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}

	got, err := client.Product(ctx, created.ID)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if got.Title != "Mechanical Keyboard" {
		t.Errorf("expected title round-trip, got %q", got.Title)
	}

	if _, err := client.Product(ctx, "prod-999"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddProduct_Validation(t *testing.T) {
	client, err := New(WithDimensions(32))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.AddProduct(context.Background(), AddProductParams{Description: "no title"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSearch_SeededCatalog(t *testing.T) {
	client, err := New(WithDimensions(32), WithSeed())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	products, err := client.Products(ctx)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected seeded products")
	}

	t.Run("text", func(t *testing.T) {
		results, err := client.Search(ctx, SearchParams{Query: "iphone", Mode: "text"})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if !results[0].LexicalMatch {
			t.Error("expected lexical match")
		}
	})

	t.Run("semantic", func(t *testing.T) {
		// The seed vectorizes titles with the hash embedder, so querying with
		// a title's own vector must rank that product first with score 1.
		target := products[0]
		vec := embeddinguc.HashVector(target.Title, 32)

		results, err := client.Search(ctx, SearchParams{
			Query: target.Title, Mode: "semantic", QueryVector: vec,
		})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(results) == 0 {
			t.Fatal("expected results")
		}
		if results[0].Product.ID != target.ID {
			t.Errorf("expected %q first, got %q", target.ID, results[0].Product.ID)
		}
		if results[0].Score < 0.999 {
			t.Errorf("expected score near 1, got %f", results[0].Score)
		}
	})

	t.Run("hybrid dedupes ids", func(t *testing.T) {
		vec := embeddinguc.HashVector(products[0].Title, 32)
		results, err := client.Search(ctx, SearchParams{
			Query: "smart", Mode: "hybrid", QueryVector: vec,
		})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		seen := make(map[string]bool)
		for _, r := range results {
			if seen[r.Product.ID] {
				t.Fatalf("duplicate id %q", r.Product.ID)
			}
			seen[r.Product.ID] = true
		}
	})
}

func TestSearch_DimensionMismatch(t *testing.T) {
	client, err := New(WithDimensions(32), WithSeed())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.Search(context.Background(), SearchParams{
		Query: "phone", Mode: "semantic", QueryVector: []float32{1, 2, 3},
	})
	if !errors.Is(err, domain.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}

	var dme *domain.DimensionMismatchError
	if !errors.As(err, &dme) {
		t.Fatal("expected DimensionMismatchError")
	}
	if dme.Got != 3 || dme.Want != 32 {
		t.Errorf("expected got=3 want=32, got %d/%d", dme.Got, dme.Want)
	}
}
