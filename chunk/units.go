package chunk

import (
	"strings"
	"unicode"
)

// splitWords splits text into whitespace-separated words.
func splitWords(text string) []string {
	return strings.Fields(text)
}

// splitSentences splits text into sentences. A sentence ends at a run of
// '.', '!' or '?' followed by whitespace or the end of the text; the
// terminators stay with their sentence. Text with no terminator is one
// sentence.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)

	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && isTerminator(runes[j]) {
			j++
		}
		if j < len(runes) && !unicode.IsSpace(runes[j]) {
			// Mid-word punctuation like "3.5" or "e.g.x" does not end
			// a sentence.
			i = j - 1
			continue
		}
		if s := strings.TrimSpace(string(runes[start:j])); s != "" {
			sentences = append(sentences, s)
		}
		start = j
		i = j - 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
