package tokens

import (
	"strings"
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4.0

// Counter estimates token counts for text.
// Implementations must be safe for concurrent use.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// Estimator estimates tokens from character and word counts.
// The character-based figure (runes divided by CharsPerToken) is
// reconciled with the word count, taking whichever is larger. Short
// texts with many small words are driven by the word count; long
// unbroken runs of characters are driven by the character count.
type Estimator struct {
	// CharsPerToken is the average characters per token.
	// Default is 4, which works well for English text.
	CharsPerToken float64
}

// NewEstimator creates a token estimator with default settings.
func NewEstimator() *Estimator {
	return &Estimator{
		CharsPerToken: DefaultCharsPerToken,
	}
}

// NewEstimatorWithRatio creates a token estimator with a custom ratio.
// If charsPerToken is <= 0, the default ratio (4.0) is used.
func NewEstimatorWithRatio(charsPerToken float64) *Estimator {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &Estimator{
		CharsPerToken: charsPerToken,
	}
}

// Count estimates the number of tokens in the given text.
// The estimate is monotonic in text length: appending characters
// never decreases it. Actual token counts vary by tokenizer.
func (e *Estimator) Count(text string) int {
	// Count runes (Unicode code points) rather than bytes for better accuracy
	runeCount := utf8.RuneCountInString(text)
	byChars := int(float64(runeCount)/e.CharsPerToken + 0.5)

	byWords := len(strings.Fields(text))
	if byWords > byChars {
		return byWords
	}
	return byChars
}

// FitsInLimit returns true if the text fits within the token limit.
func (e *Estimator) FitsInLimit(text string, limit int) bool {
	return e.Count(text) <= limit
}

// Estimate is a convenience function using the default estimator.
func Estimate(text string) int {
	return NewEstimator().Count(text)
}
