package embedding

import (
	"hash/fnv"
	"math"
)

// HashVector maps text deterministically onto the unit sphere in R^dim.
// Components are drawn in [-1, 1] from an xorshift stream seeded by the
// FNV-1a hash of the text, then L2-normalized. Equal inputs always produce
// equal vectors, which keeps seeding and tests reproducible.
func HashVector(text string, dim int) []float32 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	state := h.Sum64()
	if state == 0 {
		state = 0x9e3779b97f4a7c15
	}

	vec := make([]float32, dim)
	var sumSquares float64
	for i := range vec {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		// Map the top 53 bits to [-1, 1).
		v := float64(state>>11)/float64(1<<52) - 1
		vec[i] = float32(v)
		sumSquares += v * v
	}

	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return vec
	}
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec
}
