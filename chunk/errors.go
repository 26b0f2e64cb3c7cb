package chunk

import "errors"

// ErrInvalidMaxTokens indicates a non-positive MaxTokens option.
// It is the only error the segmentation path returns: every other
// degenerate input (empty text, oversized overlap, unknown model) is
// resolved by a documented fallback instead of failing.
var ErrInvalidMaxTokens = errors.New("max tokens must be positive")
