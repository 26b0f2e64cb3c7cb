// Package truncate cuts text down to a token budget when the caller
// wants one piece that fits rather than all pieces.
//
// # Strategies
//
// Three strategies select which part of the text survives:
//
//   - End: keep the head, drop the tail (default)
//   - Start: keep the tail, drop the head
//   - Middle: keep head and tail around an elision marker
//
// # Basic Usage
//
// Create a truncator and cut text to a budget:
//
//	tr := truncate.New(truncate.End)
//	result, err := tr.Truncate(longText, 100)
//
// Or use the package-level form:
//
//	result, err := truncate.Truncate(longText, 100, truncate.Middle)
//
// Text that already fits is returned unchanged. A budget of zero or
// less returns ErrInvalidMaxTokens.
//
// # Smart Truncation
//
// Smart prefers clean break points, backing up from the hard cut to a
// sentence terminator or word boundary:
//
//	result, err := truncate.Smart(article, 200)
//
// # Custom Token Counter
//
// Budgets are measured with the estimating counter from the tokens
// package (~4 chars/token). Provide a custom counter for different
// accounting:
//
//	tr := truncate.New(truncate.End).WithCounter(myCounter)
//
// # Character Helpers
//
// ToLines and ToLength truncate by line and rune counts for display
// purposes, without token accounting.
package truncate
