package request

import (
	"fmt"

	"github.com/kailas-cloud/prodsearch/internal/domain"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/mode"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 1024
	// DefaultTopK is the number of semantic candidates retrieved.
	DefaultTopK = 3
	MaxTopK     = 50
	// DefaultLimit is the total size of a hybrid result list.
	DefaultLimit = 5
	MaxLimit     = 50
)

// Request is a validated search query.
type Request struct {
	query      string
	searchMode mode.Mode
	vector     []float32
	topK       int
	limit      int
}

// New validates and normalizes search parameters.
// Defaults: mode=text, topK=3, limit=5. Semantic and hybrid modes require
// a query vector; there is no random fallback.
func New(query string, m mode.Mode, vector []float32, topK, limit int) (Request, error) {
	if query == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrValidation, MaxQueryLength)
	}
	if m == "" {
		m = mode.Text
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("%w: invalid search mode %q", domain.ErrValidation, m)
	}
	if m.RequiresVector() && len(vector) == 0 {
		return Request{}, fmt.Errorf("%w: query_vector is required for %s mode", domain.ErrValidation, m)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Request{
		query:      query,
		searchMode: m,
		vector:     vector,
		topK:       topK,
		limit:      limit,
	}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Mode returns the search strategy.
func (r *Request) Mode() mode.Mode { return r.searchMode }

// Vector returns the query vector (nil for text mode).
func (r *Request) Vector() []float32 { return r.vector }

// TopK returns the number of semantic candidates to retrieve.
func (r *Request) TopK() int { return r.topK }

// Limit returns the maximum size of a hybrid result list.
func (r *Request) Limit() int { return r.limit }
