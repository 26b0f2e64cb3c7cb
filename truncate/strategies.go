package truncate

import "strings"

// fitPrefix returns the largest n such that runes[:n] fits within the
// token budget.
func (t *Truncator) fitPrefix(runes []rune, budget int) int {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if t.counter.FitsInLimit(string(runes[:mid]), budget) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}

// fitSuffix returns the smallest start index i such that runes[i:] fits
// within the token budget.
func (t *Truncator) fitSuffix(runes []rune, budget int) int {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high) / 2
		if t.counter.FitsInLimit(string(runes[mid:]), budget) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}

func (t *Truncator) truncateEnd(text string, maxTokens int) string {
	budget := maxTokens - t.counter.Count(t.suffix)
	if budget <= 0 {
		return t.suffix
	}

	runes := []rune(text)
	keep := t.fitPrefix(runes, budget)
	if keep == 0 {
		return t.suffix
	}
	return string(runes[:keep]) + t.suffix
}

func (t *Truncator) truncateStart(text string, maxTokens int) string {
	budget := maxTokens - t.counter.Count(t.suffix)
	if budget <= 0 {
		return t.suffix
	}

	runes := []rune(text)
	from := t.fitSuffix(runes, budget)
	if from >= len(runes) {
		return t.suffix
	}
	return t.suffix + string(runes[from:])
}

// truncateMiddle gives half the budget to the head, then hands whatever
// the head did not use to the tail.
func (t *Truncator) truncateMiddle(text string, maxTokens int) string {
	budget := maxTokens - t.counter.Count(t.suffix)
	if budget <= 0 {
		return t.suffix
	}

	runes := []rune(text)
	head := t.fitPrefix(runes, budget/2)

	tailBudget := budget - t.counter.Count(string(runes[:head]))
	if tailBudget < 0 {
		tailBudget = 0
	}
	rest := runes[head:]
	from := t.fitSuffix(rest, tailBudget)

	var sb strings.Builder
	sb.WriteString(string(runes[:head]))
	sb.WriteString(t.suffix)
	if from < len(rest) {
		sb.WriteString(string(rest[from:]))
	}
	return sb.String()
}
