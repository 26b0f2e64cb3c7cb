// Package model maps model identifiers to context windows and pricing,
// recommends models for estimated prompt sizes, and tracks usage costs.
//
// The builtin catalog is a static table initialized at process start;
// lookups never mutate it. Unknown identifiers degrade to a conservative
// default context window (100000 tokens) and zero cost rather than failing.
//
// # Lookups
//
//	window := model.ContextWindowFor("claude-sonnet-4")  // 200000
//	window := model.ContextWindowFor("unknown")          // 100000 (default)
//	info, ok := model.Lookup("gpt-4o-mini")
//
// Dated and aliased identifiers normalize to their family's catalog key:
//
//	model.Normalize("claude-sonnet-4-20250514")  // "claude-sonnet-4"
//
// # Cost Estimation
//
//	cost := model.EstimateCost(text, "claude-sonnet-4")
//	est := model.EstimateForModel(text, "claude-sonnet-4")  // tokens and cost
//
// # Recommendation
//
// Recommend picks the smallest context window that holds the estimate
// plus a safety margin, or the largest window with a warning reason when
// nothing is big enough:
//
//	rec := model.RecommendText(text, model.DefaultMargin)
//	fmt.Println(rec.Model, rec.Reason)
//
// A Recommender carries a custom catalog, margin, or counter for repeated
// use:
//
//	r := model.NewRecommender(
//	    model.WithCatalog(catalog),
//	    model.WithMargin(0.25),
//	)
//
// # Custom Catalogs
//
// LoadCatalog layers a YAML file over the builtin table:
//
//	catalog, err := model.LoadCatalog("models.yaml")
//
// CatalogSchema returns the JSON Schema of that file format.
//
// # Usage Tracking
//
//	tracker := model.NewUsageTracker()
//	tracker.Record("claude-sonnet-4", 1000, 500)  // input, output tokens
//	cost := tracker.EstimatedCost()
package model
