// Package storefront embeds the catalog-grounded shopping assistant in a Go program.
//
// The client opens (or creates) a SQLite product catalog, interprets shopping
// requests against it and asks a language model for a recommendation.
//
//	client, _ := storefront.New(ctx,
//	    storefront.WithCatalogPath("shopping.db"),
//	    storefront.WithOllama("http://localhost:11434", "llama3.2"),
//	)
//	defer client.Close()
//
//	_, _ = client.Products().Add(ctx, storefront.Product{Name: "Dell XPS 15", Price: 1599.99, Category: "Laptops"})
//	rec, _ := client.Recommend(ctx, "alice", "I need a laptop under $1700")
//	fmt.Println(rec.Response)
//
// Preview runs the same pipeline without the language model, which is handy
// for checking what the model would be shown:
//
//	p, _ := client.Preview(ctx, "phone between $800 and $1200")
//	fmt.Println(p.Context)
package storefront
