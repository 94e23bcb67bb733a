package request

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/prodsearch/internal/domain"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/mode"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("phone", "", nil, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Mode() != mode.Text {
		t.Errorf("expected default mode text, got %q", r.Mode())
	}
	if r.TopK() != DefaultTopK {
		t.Errorf("expected topK %d, got %d", DefaultTopK, r.TopK())
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("expected limit %d, got %d", DefaultLimit, r.Limit())
	}
}

func TestNew_EmptyQuery(t *testing.T) {
	for _, m := range []mode.Mode{mode.Text, mode.Semantic, mode.Hybrid} {
		t.Run(string(m), func(t *testing.T) {
			_, err := New("", m, []float32{1}, 0, 0)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNew_InvalidMode(t *testing.T) {
	_, err := New("phone", "fuzzy", nil, 0, 0)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNew_VectorRequired(t *testing.T) {
	for _, m := range []mode.Mode{mode.Semantic, mode.Hybrid} {
		t.Run(string(m), func(t *testing.T) {
			_, err := New("phone", m, nil, 0, 0)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation for missing vector, got %v", err)
			}
		})
	}

	// Text mode works without a vector.
	if _, err := New("phone", mode.Text, nil, 0, 0); err != nil {
		t.Fatalf("unexpected error for text mode: %v", err)
	}
}

func TestNew_Clamping(t *testing.T) {
	r, err := New("phone", mode.Semantic, []float32{1}, MaxTopK+100, MaxLimit+100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TopK() != MaxTopK {
		t.Errorf("expected topK clamped to %d, got %d", MaxTopK, r.TopK())
	}
	if r.Limit() != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, r.Limit())
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	long := make([]byte, MaxQueryLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := New(string(long), mode.Text, nil, 0, 0)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
