package result

import "github.com/kailas-cloud/prodsearch/internal/domain/product"

// MatchField names the textual field a lexical match hit.
type MatchField string

// Lexical match field constants.
const (
	// MatchTitle means the query matched the product title.
	MatchTitle MatchField = "title"
	// MatchDescription means the query matched the description only.
	MatchDescription MatchField = "description"
	// MatchNone means the result came from vector ranking alone.
	MatchNone MatchField = ""
)

// Result is a single search hit.
type Result struct {
	product product.Product
	score   float64
	lexical bool
	matched MatchField
}

// New creates a vector-ranked search result.
func New(p product.Product, score float64) Result {
	return Result{product: p, score: score}
}

// NewLexical creates a lexical-match search result. The score may be zero
// when no query vector was supplied (text mode).
func NewLexical(p product.Product, score float64, matched MatchField) Result {
	return Result{product: p, score: score, lexical: true, matched: matched}
}

// Product returns the matched product.
func (r *Result) Product() product.Product { return r.product }

// ID returns the matched product identifier.
func (r *Result) ID() string { return r.product.ID() }

// Score returns the cosine similarity score.
func (r *Result) Score() float64 { return r.score }

// Lexical reports whether the hit came from a lexical match.
func (r *Result) Lexical() bool { return r.lexical }

// MatchedField returns which field the lexical match hit.
func (r *Result) MatchedField() MatchField { return r.matched }
