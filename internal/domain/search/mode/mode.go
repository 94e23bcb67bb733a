package mode

// Mode is the search strategy.
type Mode string

// Search mode constants.
const (
	// Text matches the query as a case-insensitive substring of title or description.
	Text Mode = "text"
	// Semantic ranks products by cosine similarity against the query vector.
	Semantic Mode = "semantic"
	// Hybrid combines text matches with semantic ranking.
	Hybrid Mode = "hybrid"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Text || m == Semantic || m == Hybrid
}

// RequiresVector reports whether the mode needs a query vector.
func (m Mode) RequiresVector() bool {
	return m == Semantic || m == Hybrid
}
