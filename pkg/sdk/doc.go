// Package sdk embeds the prodsearch hybrid retrieval engine in-process:
// an in-memory product catalog with lexical, semantic, and hybrid search,
// without the HTTP layer.
//
//	client, err := sdk.New(sdk.WithDimensions(512), sdk.WithSeed())
//	if err != nil { ... }
//	results, err := client.Search(ctx, sdk.SearchParams{Query: "iphone", Mode: "text"})
package sdk
