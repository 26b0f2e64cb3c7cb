// Package chunk splits text into token-budgeted chunks for LLM prompts.
//
// Splitting is a single greedy pass: text is divided into units (words,
// sentences, or raw characters), units accumulate into a chunk while the
// estimated token count stays within the budget, and each new chunk can
// re-seed trailing units of the previous one to preserve context across
// the split. Chunks keep document order; overlapping regions duplicate
// content on purpose.
//
// # Basic Usage
//
//	chunks, err := chunk.Split(text, chunk.Options{MaxTokens: 500})
//
// Sentence boundaries keep chunks readable:
//
//	chunks, err := chunk.Split(text, chunk.Options{
//	    MaxTokens: 500,
//	    Boundary:  chunk.Sentences,
//	    Overlap:   2, // repeat the last 2 sentences in the next chunk
//	})
//
// # Model-Aware Chunking
//
// SplitForModel derives the budget from a model's context window,
// reserving a quarter for the reply, and converts an overlap percentage
// to an absolute count:
//
//	chunks, err := chunk.SplitForModel(text, "claude-sonnet-4", 10)
//
// BudgetFor exposes the derivation for callers that build their own
// options.
//
// # Statistics
//
//	stats := chunk.Stats(chunks)
//	fmt.Println(stats.TotalChunks, stats.AverageTokens)
//
// An empty chunk sequence reports identity sentinels (MinTokens +Inf,
// MaxTokens -Inf, AverageTokens NaN); branch on TotalChunks first.
//
// # Guarantees
//
// Empty input produces no chunks. Input that fits the budget produces
// exactly one chunk. A single unit larger than the whole budget is
// emitted as its own oversized chunk, never cut mid-unit and never
// looping. Only a non-positive MaxTokens is an error
// (ErrInvalidMaxTokens); every other degenerate input degrades to a
// documented fallback.
package chunk
