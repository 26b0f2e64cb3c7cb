package truncate

import (
	"errors"
	"fmt"

	"github.com/promptkit/promptkit/tokens"
)

// ErrInvalidMaxTokens is returned when a truncation budget is zero or
// negative.
var ErrInvalidMaxTokens = errors.New("max tokens must be positive")

// Strategy selects which part of the text survives truncation.
type Strategy int

const (
	// End keeps the head of the text and drops the tail (default).
	End Strategy = iota

	// Start keeps the tail of the text and drops the head.
	Start

	// Middle keeps the head and tail, dropping content in between.
	Middle
)

// String returns the flag-friendly name of the strategy.
func (s Strategy) String() string {
	switch s {
	case End:
		return "end"
	case Start:
		return "start"
	case Middle:
		return "middle"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a name like "end" into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "end":
		return End, nil
	case "start":
		return Start, nil
	case "middle":
		return Middle, nil
	default:
		return End, fmt.Errorf("unknown truncation strategy %q", s)
	}
}

// DefaultEndSuffix is appended when content is dropped from the end.
const DefaultEndSuffix = "..."

// DefaultStartSuffix is prepended when content is dropped from the start.
const DefaultStartSuffix = "..."

// DefaultMiddleSuffix marks the elided span in middle truncation.
const DefaultMiddleSuffix = "\n...[content truncated]...\n"

// Truncator cuts text down to a token budget.
type Truncator struct {
	counter  tokens.Counter
	strategy Strategy
	suffix   string
}

// New creates a truncator with the given strategy and that strategy's
// default suffix.
func New(strategy Strategy) *Truncator {
	suffix := DefaultEndSuffix
	switch strategy {
	case Start:
		suffix = DefaultStartSuffix
	case Middle:
		suffix = DefaultMiddleSuffix
	}
	return &Truncator{
		counter:  tokens.NewEstimator(),
		strategy: strategy,
		suffix:   suffix,
	}
}

// WithCounter sets a custom token counter.
func (t *Truncator) WithCounter(counter tokens.Counter) *Truncator {
	t.counter = counter
	return t
}

// WithSuffix sets a custom marker for the dropped content.
func (t *Truncator) WithSuffix(suffix string) *Truncator {
	t.suffix = suffix
	return t
}

// Truncate reduces text until it fits within maxTokens, counting the
// suffix against the budget. Text that already fits is returned
// unchanged.
func (t *Truncator) Truncate(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		return "", fmt.Errorf("max tokens %d: %w", maxTokens, ErrInvalidMaxTokens)
	}
	if t.counter.FitsInLimit(text, maxTokens) {
		return text, nil
	}

	switch t.strategy {
	case Start:
		return t.truncateStart(text, maxTokens), nil
	case Middle:
		return t.truncateMiddle(text, maxTokens), nil
	default:
		return t.truncateEnd(text, maxTokens), nil
	}
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Suffix returns the truncator's elision marker.
func (t *Truncator) Suffix() string {
	return t.suffix
}
