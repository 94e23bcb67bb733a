package search

import (
	"strings"

	"github.com/kailas-cloud/prodsearch/internal/domain/product"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/result"
)

// lexicalMatch pairs a matching product with the field the query hit.
type lexicalMatch struct {
	product product.Product
	field   result.MatchField
}

// matchLexical returns all products whose title or description contains the
// query as a case-insensitive substring, in catalog enumeration order.
// A title hit wins over a description hit for the recorded match field.
func matchLexical(query string, products []product.Product) []lexicalMatch {
	folded := strings.ToLower(query)

	var matches []lexicalMatch
	for _, p := range products {
		switch {
		case strings.Contains(strings.ToLower(p.Title()), folded):
			matches = append(matches, lexicalMatch{product: p, field: result.MatchTitle})
		case strings.Contains(strings.ToLower(p.Description()), folded):
			matches = append(matches, lexicalMatch{product: p, field: result.MatchDescription})
		}
	}
	return matches
}

// rankMatches orders lexical matches by match-field priority: title matches
// first, description-only matches after, catalog order within each band.
func rankMatches(matches []lexicalMatch) []lexicalMatch {
	ranked := make([]lexicalMatch, 0, len(matches))
	for _, m := range matches {
		if m.field == result.MatchTitle {
			ranked = append(ranked, m)
		}
	}
	for _, m := range matches {
		if m.field == result.MatchDescription {
			ranked = append(ranked, m)
		}
	}
	return ranked
}
