// Package tokens estimates token counts for LLM prompt text.
//
// Estimation blends two heuristics: the rule-of-thumb that approximately
// 4 characters equals 1 token for English text, and the word count, which
// guards against under-counting text made of many short words. The larger
// of the two wins. Estimates are monotonic in text length and require no
// model-specific tokenizer.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	est := tokens.NewEstimator()
//	count := est.Count("Hello, world!")        // ~3 tokens
//	fits := est.FitsInLimit("text", 1000)      // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.Estimate("Hello, world!")
//
// A custom character-to-token ratio tightens or loosens the estimate:
//
//	est := tokens.NewEstimatorWithRatio(3.5)
//
// Estimators are stateless and safe for concurrent use. Model context
// windows and pricing live in the model package; chunking against a token
// budget lives in the chunk package.
package tokens
