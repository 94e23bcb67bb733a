package search

import "github.com/kailas-cloud/prodsearch/internal/domain/search/result"

// combineHybrid merges lexical and vector-ranked results: lexical matches
// first (already in match-priority order), then the top fillK vector results
// not already included, deduplicated by product id and truncated to limit.
// ranked is the full catalog ranking; lexical entries carry their cosine
// score looked up from it, so every hybrid hit is scored.
func combineHybrid(lex []lexicalMatch, ranked []result.Result, fillK, limit int) []result.Result {
	scores := make(map[string]float64, len(ranked))
	for i := range ranked {
		scores[ranked[i].ID()] = ranked[i].Score()
	}

	fill := ranked
	if fillK > 0 && len(fill) > fillK {
		fill = fill[:fillK]
	}

	merged := make([]result.Result, 0, limit)
	seen := make(map[string]struct{}, limit)

	for _, m := range lex {
		if len(merged) == limit {
			return merged
		}
		id := m.product.ID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, result.NewLexical(m.product, scores[id], m.field))
	}

	for _, r := range fill {
		if len(merged) == limit {
			break
		}
		if _, dup := seen[r.ID()]; dup {
			continue
		}
		seen[r.ID()] = struct{}{}
		merged = append(merged, r)
	}

	return merged
}
