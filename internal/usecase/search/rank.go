package search

import (
	"math"
	"sort"

	"github.com/kailas-cloud/prodsearch/internal/domain"
	"github.com/kailas-cloud/prodsearch/internal/domain/product"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/result"
)

// VectorField selects which product embedding the ranker compares against.
type VectorField string

// Vector field constants.
const (
	// FieldTitle ranks against the title embedding.
	FieldTitle VectorField = "title"
	// FieldDescription ranks against the description embedding.
	FieldDescription VectorField = "description"
	// FieldAverage ranks against the component-wise mean of both embeddings.
	FieldAverage VectorField = "average"
)

// rankBySimilarity scores every product by cosine similarity against the
// query vector and returns them in descending score order, ties broken by
// catalog insertion order (stable sort). Truncates to topK when topK > 0.
func rankBySimilarity(
	queryVector []float32, products []product.Product, field VectorField, dim, topK int,
) ([]result.Result, error) {
	if len(queryVector) != dim {
		return nil, domain.NewDimensionMismatch(len(queryVector), dim)
	}

	ranked := make([]result.Result, 0, len(products))
	for i := range products {
		score := cosine(queryVector, productVector(&products[i], field))
		ranked = append(ranked, result.New(products[i], score))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked, nil
}

// productVector picks the embedding the ranker compares against.
// FieldAverage allocates; the other fields return the stored slice.
func productVector(p *product.Product, field VectorField) []float32 {
	switch field {
	case FieldDescription:
		return p.DescriptionVector()
	case FieldAverage:
		title, desc := p.TitleVector(), p.DescriptionVector()
		avg := make([]float32, len(title))
		for i := range avg {
			avg[i] = (title[i] + desc[i]) / 2
		}
		return avg
	default:
		return p.TitleVector()
	}
}

// cosine computes the cosine similarity of two equal-length vectors.
// Zero-magnitude inputs score 0 rather than NaN.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
