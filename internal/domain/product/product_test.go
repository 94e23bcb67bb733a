package product

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/prodsearch/internal/domain"
)

const testDim = 4

func testVec() []float32 {
	return []float32{0.1, 0.2, 0.3, 0.4}
}

func TestNew_Valid(t *testing.T) {
	p, err := New("p1", "Phone", "A smartphone", "electronics", 499.99, testVec(), testVec(), testDim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != "p1" {
		t.Errorf("expected id p1, got %q", p.ID())
	}
	if p.Title() != "Phone" {
		t.Errorf("expected title Phone, got %q", p.Title())
	}
	if p.Price() != 499.99 {
		t.Errorf("expected price 499.99, got %g", p.Price())
	}
}

func TestNew_EmptyTitle(t *testing.T) {
	_, err := New("", "", "desc", "cat", 1, testVec(), testVec(), testDim)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNew_EmptyDescription(t *testing.T) {
	_, err := New("", "title", "", "cat", 1, testVec(), testVec(), testDim)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNew_NegativePrice(t *testing.T) {
	_, err := New("", "title", "desc", "cat", -0.01, testVec(), testVec(), testDim)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNew_VectorDimensionMismatch(t *testing.T) {
	short := []float32{0.1, 0.2, 0.3}

	t.Run("title vector", func(t *testing.T) {
		_, err := New("", "title", "desc", "cat", 1, short, testVec(), testDim)
		if !errors.Is(err, domain.ErrDimensionMismatch) {
			t.Fatalf("expected ErrDimensionMismatch, got %v", err)
		}
		var dme *domain.DimensionMismatchError
		if !errors.As(err, &dme) {
			t.Fatal("expected DimensionMismatchError")
		}
		if dme.Got != 3 || dme.Want != testDim {
			t.Errorf("expected got=3 want=%d, got got=%d want=%d", testDim, dme.Got, dme.Want)
		}
	})

	t.Run("description vector", func(t *testing.T) {
		_, err := New("", "title", "desc", "cat", 1, testVec(), short, testDim)
		if !errors.Is(err, domain.ErrDimensionMismatch) {
			t.Fatalf("expected ErrDimensionMismatch, got %v", err)
		}
	})
}

func TestWithID(t *testing.T) {
	p := Reconstruct("", "title", "desc", "cat", 1, testVec(), testVec())
	withID := p.WithID("prod-7")

	if withID.ID() != "prod-7" {
		t.Errorf("expected prod-7, got %q", withID.ID())
	}
	if p.ID() != "" {
		t.Errorf("original product mutated: id %q", p.ID())
	}
}
