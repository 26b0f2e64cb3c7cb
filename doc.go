// Package promptkit splits text into token-budgeted chunks for LLM
// prompt preparation.
//
// Each subpackage can be used independently:
//
//   - tokens: heuristic token counting (~4 chars/token)
//   - model: context window catalog, pricing, recommendation, usage tracking
//   - chunk: token-budgeted segmentation with boundary modes and overlap
//   - truncate: token-aware text truncation strategies
//
// # Quick Start
//
// Token counting:
//
//	import "github.com/promptkit/promptkit/tokens"
//	count := tokens.Estimate("Hello, World!")
//
// Chunking:
//
//	import "github.com/promptkit/promptkit/chunk"
//	chunks, _ := chunk.Split(text, chunk.Options{MaxTokens: 500, Boundary: chunk.Sentences})
//
// Model-aware chunking:
//
//	chunks, _ := chunk.SplitForModel(text, "claude-sonnet-4", 10)
//
// Cost estimation:
//
//	import "github.com/promptkit/promptkit/model"
//	est := model.EstimateForModel(text, "gpt-4o")
//
// # Design Philosophy
//
//   - Each package usable independently
//   - Sensible defaults with full configurability
//   - Interfaces for extensibility, concrete types for simplicity
//   - Token counts are planning approximations, never billing figures
package promptkit
