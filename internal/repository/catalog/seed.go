package catalog

import (
	"context"

	"github.com/kailas-cloud/prodsearch/internal/domain/product"
)

type seedEntry struct {
	title       string
	description string
	category    string
	price       float64
}

var seedEntries = []seedEntry{
	{
		title:       "iPhone 15 Pro",
		description: "Apple smartphone with titanium design, A17 Pro chip and 48MP camera",
		category:    "electronics",
		price:       999.00,
	},
	{
		title:       "Samsung 4K TV",
		description: "55-inch Crystal UHD smart TV with HDR and built-in streaming apps",
		category:    "electronics",
		price:       549.99,
	},
	{
		title:       "MacBook Air M3",
		description: "Thin and light laptop with the Apple M3 chip and all-day battery life",
		category:    "computers",
		price:       1099.00,
	},
	{
		title:       "Sony WH-1000XM5",
		description: "Wireless noise cancelling headphones with 30 hour battery",
		category:    "audio",
		price:       349.99,
	},
	{
		title:       "Kindle Paperwhite",
		description: "Waterproof e-reader with a glare-free 6.8-inch display",
		category:    "electronics",
		price:       139.99,
	},
	{
		title:       "Dyson V15 Detect",
		description: "Cordless vacuum cleaner with laser dust detection",
		category:    "home",
		price:       649.99,
	},
	{
		title:       "Levi's 501 Original Jeans",
		description: "Classic straight fit denim jeans with button fly",
		category:    "clothing",
		price:       69.50,
	},
	{
		title:       "Nike Air Max 270",
		description: "Lifestyle running shoes with visible Air cushioning",
		category:    "footwear",
		price:       149.99,
	},
}

// Seed fills the store with the sample catalog. The vectorize function
// supplies an embedding for each textual field (hash-derived in the default
// setup, so seeding stays deterministic).
func (r *Repo) Seed(ctx context.Context, vectorize func(text string) []float32) error {
	for _, e := range seedEntries {
		p := product.Reconstruct(
			"", e.title, e.description, e.category, e.price,
			vectorize(e.title), vectorize(e.description),
		)
		if _, err := r.Add(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
