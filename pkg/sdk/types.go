package sdk

// Product is a catalog entry returned by the SDK.
type Product struct {
	ID          string
	Title       string
	Description string
	Category    string
	Price       float64
}

// AddProductParams holds the fields of a new product.
type AddProductParams struct {
	Title       string
	Description string
	Category    string
	Price       float64
}

// SearchParams holds search parameters. Mode is one of "text", "semantic",
// "hybrid" (default "text"). Semantic and hybrid require QueryVector.
type SearchParams struct {
	Query       string
	Mode        string
	QueryVector []float32
	TopK        int
	Limit       int
}

// SearchResult is a single scored hit.
type SearchResult struct {
	Product      Product
	Score        float64
	LexicalMatch bool
	MatchedField string
}
