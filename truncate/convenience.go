package truncate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Truncate cuts text to the token budget using the given strategy and
// its default suffix.
func Truncate(text string, maxTokens int, strategy Strategy) (string, error) {
	return New(strategy).Truncate(text, maxTokens)
}

// Smart truncates from the end but prefers clean break points: it backs
// up from the hard cut to the nearest sentence terminator, then to a
// word boundary, before giving up and cutting mid-word. A cut on a
// sentence terminator keeps the terminator as the ending; any other cut
// appends the suffix.
func (t *Truncator) Smart(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		return "", fmt.Errorf("max tokens %d: %w", maxTokens, ErrInvalidMaxTokens)
	}

	if t.counter.FitsInLimit(text, maxTokens) {
		return text, nil
	}

	budget := maxTokens - t.counter.Count(t.suffix)
	if budget <= 0 {
		return t.suffix, nil
	}

	runes := []rune(text)
	keep := t.fitPrefix(runes, budget)
	if keep == 0 {
		return t.suffix, nil
	}

	// Never back up past half of what fits.
	floor := keep / 2

	for i := keep - 1; i > floor; i-- {
		if runes[i] == '.' || runes[i] == '!' || runes[i] == '?' {
			return string(runes[:i+1]), nil
		}
	}

	for i := keep - 1; i > floor; i-- {
		if runes[i] == ' ' || runes[i] == '\n' {
			return string(runes[:i]) + t.suffix, nil
		}
	}

	return string(runes[:keep]) + t.suffix, nil
}

// Smart truncates with the default estimator and "..." suffix.
func Smart(text string, maxTokens int) (string, error) {
	return New(End).Smart(text, maxTokens)
}

// ToLines truncates text to a maximum number of lines.
func ToLines(text string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}

	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}

	return strings.Join(lines[:maxLines], "\n") + "\n..."
}

// ToLength truncates text to a maximum number of runes, so multi-byte
// characters are never split.
func ToLength(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	if maxLen < 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}
