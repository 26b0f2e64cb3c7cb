package chunk

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/promptkit/promptkit/tokens"
)

func TestSplit_InvalidMaxTokens(t *testing.T) {
	tests := []struct {
		name      string
		maxTokens int
	}{
		{
			name:      "zero",
			maxTokens: 0,
		},
		{
			name:      "negative",
			maxTokens: -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := Split("some text", Options{MaxTokens: tt.maxTokens})
			if !errors.Is(err, ErrInvalidMaxTokens) {
				t.Errorf("expected ErrInvalidMaxTokens, got %v", err)
			}
			if chunks != nil {
				t.Errorf("expected nil chunks on error, got %v", chunks)
			}
		})
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "empty string",
			text: "",
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := Split(tt.text, Options{MaxTokens: 100})
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if len(chunks) != 0 {
				t.Errorf("expected no chunks, got %v", chunks)
			}
		})
	}
}

func TestSplit_SingleChunkWhenFits(t *testing.T) {
	chunks, err := Split("Hello World", Options{MaxTokens: 100})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) != 1 || chunks[0] != "Hello World" {
		t.Errorf("expected [Hello World], got %v", chunks)
	}
}

func TestSplit_SingleChunkTrimmed(t *testing.T) {
	chunks, err := Split("  Hello World  \n", Options{MaxTokens: 100})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) != 1 || chunks[0] != "Hello World" {
		t.Errorf("expected trimmed [Hello World], got %v", chunks)
	}
}

func TestSplit_Words(t *testing.T) {
	text := "one two three four five six seven eight"

	chunks, err := Split(text, Options{MaxTokens: 3})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	expected := []string{"one two three", "four five six", "seven eight"}
	if len(chunks) != len(expected) {
		t.Fatalf("got %d chunks %v, expected %d", len(chunks), chunks, len(expected))
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk[%d] = %q, expected %q", i, chunks[i], expected[i])
		}
	}
}

func TestSplit_WordsRoundTrip(t *testing.T) {
	text := "one two three four five six seven eight"

	chunks, err := Split(text, Options{MaxTokens: 3})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	// With no overlap, rejoining the chunks reconstructs the text modulo
	// whitespace normalization.
	rejoined := strings.Join(chunks, " ")
	normalized := strings.Join(strings.Fields(text), " ")
	if rejoined != normalized {
		t.Errorf("rejoined = %q, expected %q", rejoined, normalized)
	}
}

func TestSplit_WordOverlap(t *testing.T) {
	text := "one two three four five six seven eight"

	plain, err := Split(text, Options{MaxTokens: 3})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	overlapped, err := Split(text, Options{MaxTokens: 3, Overlap: 1})
	if err != nil {
		t.Fatalf("Split with overlap: %v", err)
	}

	if len(overlapped) < len(plain) {
		t.Errorf("overlap reduced chunk count: %d < %d", len(overlapped), len(plain))
	}

	// Each chunk opens with the final word of its predecessor.
	for i := 1; i < len(overlapped); i++ {
		prevWords := strings.Fields(overlapped[i-1])
		last := prevWords[len(prevWords)-1]
		if !strings.HasPrefix(overlapped[i], last) {
			t.Errorf("chunk[%d] = %q does not start with %q carried from chunk[%d]",
				i, overlapped[i], last, i-1)
		}
	}
}

func TestSplit_NegativeOverlap(t *testing.T) {
	text := "one two three four five six seven eight"

	plain, err := Split(text, Options{MaxTokens: 3})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	negative, err := Split(text, Options{MaxTokens: 3, Overlap: -5})
	if err != nil {
		t.Fatalf("Split with negative overlap: %v", err)
	}

	if len(plain) != len(negative) {
		t.Fatalf("negative overlap changed chunk count: %d vs %d", len(negative), len(plain))
	}
	for i := range plain {
		if plain[i] != negative[i] {
			t.Errorf("chunk[%d] differs: %q vs %q", i, negative[i], plain[i])
		}
	}
}

func TestSplit_OverlapExceedsChunk(t *testing.T) {
	// Overlap far larger than any chunk still terminates and never emits
	// an overlap-only chunk.
	text := "one two three four five six seven eight"

	chunks, err := Split(text, Options{MaxTokens: 3, Overlap: 100})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) < 3 {
		t.Errorf("expected at least 3 chunks, got %v", chunks)
	}
	for i, chunk := range chunks {
		if chunk == "" {
			t.Errorf("chunk[%d] is empty", i)
		}
	}
}

func TestSplit_Sentences(t *testing.T) {
	text := "This is the first sentence. This is the second sentence. " +
		"This is the third sentence. This is the fourth sentence."

	chunks, err := Split(text, Options{MaxTokens: 15, Boundary: Sentences})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %v", chunks)
	}
	for i, chunk := range chunks {
		if !strings.HasSuffix(chunk, ".") {
			t.Errorf("chunk[%d] = %q does not end at a sentence boundary", i, chunk)
		}
	}

	// Two sentences fit a 15-token budget, three do not.
	first := "This is the first sentence. This is the second sentence."
	if chunks[0] != first {
		t.Errorf("chunk[0] = %q, expected %q", chunks[0], first)
	}
}

func TestSplit_SentenceOverlap(t *testing.T) {
	text := "This is the first sentence. This is the second sentence. " +
		"This is the third sentence. This is the fourth sentence."

	plain, err := Split(text, Options{MaxTokens: 15, Boundary: Sentences})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	overlapped, err := Split(text, Options{MaxTokens: 15, Boundary: Sentences, Overlap: 1})
	if err != nil {
		t.Fatalf("Split with overlap: %v", err)
	}

	if len(overlapped) < len(plain) {
		t.Errorf("overlap reduced chunk count: %d < %d", len(overlapped), len(plain))
	}
	if len(overlapped) < 2 {
		t.Fatalf("expected at least 2 chunks, got %v", overlapped)
	}
	if !strings.HasPrefix(overlapped[1], "This is the second sentence.") {
		t.Errorf("chunk[1] = %q should re-seed the previous sentence", overlapped[1])
	}
}

func TestSplit_Characters(t *testing.T) {
	chunks, err := Split("abcdefghijklmnopqrstuvwxyz", Options{MaxTokens: 5, Boundary: Characters})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	// Window is 5 tokens * 4 chars per token = 20 runes.
	expected := []string{"abcdefghijklmnopqrst", "uvwxyz"}
	if len(chunks) != len(expected) {
		t.Fatalf("got %d chunks %v, expected %d", len(chunks), chunks, len(expected))
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk[%d] = %q, expected %q", i, chunks[i], expected[i])
		}
	}
	for i, chunk := range chunks {
		if n := utf8.RuneCountInString(chunk); n > 20 {
			t.Errorf("chunk[%d] has %d runes, budget allows 20", i, n)
		}
	}
}

func TestSplit_CharactersOverlap(t *testing.T) {
	chunks, err := Split("abcdefghijklmnopqrstuvwxyz", Options{
		MaxTokens: 5,
		Boundary:  Characters,
		Overlap:   5,
	})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	// Window 20 runes, step 15: the second window re-reads 5 runes.
	expected := []string{"abcdefghijklmnopqrst", "pqrstuvwxyz"}
	if len(chunks) != len(expected) {
		t.Fatalf("got %d chunks %v, expected %d", len(chunks), chunks, len(expected))
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk[%d] = %q, expected %q", i, chunks[i], expected[i])
		}
	}
}

func TestSplit_CharactersUnicode(t *testing.T) {
	// 14 runes of multi-byte text, 1-token budget: 4-rune windows.
	text := "日本語のテキストを分割します"

	chunks, err := Split(text, Options{MaxTokens: 1, Boundary: Characters})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	if len(chunks) != 4 {
		t.Fatalf("got %d chunks %v, expected 4", len(chunks), chunks)
	}
	for i, chunk := range chunks {
		if n := utf8.RuneCountInString(chunk); n > 4 {
			t.Errorf("chunk[%d] = %q has %d runes, expected at most 4", i, chunk, n)
		}
	}
	if rejoined := strings.Join(chunks, ""); rejoined != text {
		t.Errorf("rejoined = %q, expected original text", rejoined)
	}
}

func TestSplit_OversizedUnit(t *testing.T) {
	// A single word that exceeds the whole budget becomes its own chunk.
	text := "supercalifragilisticexpialidocious tiny"

	chunks, err := Split(text, Options{MaxTokens: 2})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	expected := []string{"supercalifragilisticexpialidocious", "tiny"}
	if len(chunks) != len(expected) {
		t.Fatalf("got %d chunks %v, expected %d", len(chunks), chunks, len(expected))
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Errorf("chunk[%d] = %q, expected %q", i, chunks[i], expected[i])
		}
	}
}

func TestSplit_BudgetRespected(t *testing.T) {
	est := tokens.NewEstimator()
	text := strings.Repeat("Hello world. ", 30)

	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "words",
			opts: Options{MaxTokens: 10},
		},
		{
			name: "sentences",
			opts: Options{MaxTokens: 10, Boundary: Sentences},
		},
		{
			name: "characters",
			opts: Options{MaxTokens: 10, Boundary: Characters},
		},
		{
			name: "words with overlap",
			opts: Options{MaxTokens: 10, Overlap: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := Split(text, tt.opts)
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if len(chunks) < 2 {
				t.Fatalf("expected multiple chunks, got %v", chunks)
			}
			for i, chunk := range chunks {
				if n := est.Count(chunk); n > tt.opts.MaxTokens {
					t.Errorf("chunk[%d] estimates %d tokens, budget is %d: %q",
						i, n, tt.opts.MaxTokens, chunk)
				}
			}
		})
	}
}

func TestSplit_OrderPreserved(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta"

	chunks, err := Split(text, Options{MaxTokens: 3})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	// Every word must appear, in document order.
	rejoined := strings.Join(chunks, " ")
	idx := 0
	for _, word := range strings.Fields(text) {
		next := strings.Index(rejoined[idx:], word)
		if next < 0 {
			t.Fatalf("word %q missing or out of order in chunks %v", word, chunks)
		}
		idx += next + len(word)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "simple sentences",
			text:     "First one. Second one! Third one?",
			expected: []string{"First one.", "Second one!", "Third one?"},
		},
		{
			name:     "no terminator",
			text:     "no terminator at all",
			expected: []string{"no terminator at all"},
		},
		{
			name:     "trailing fragment",
			text:     "Done. And then",
			expected: []string{"Done.", "And then"},
		},
		{
			name:     "terminator run",
			text:     "Wait... Really?! Yes.",
			expected: []string{"Wait...", "Really?!", "Yes."},
		},
		{
			name:     "decimal point does not split",
			text:     "Version 3.5 shipped. It works.",
			expected: []string{"Version 3.5 shipped.", "It works."},
		},
		{
			name:     "empty",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitSentences(tt.text)
			if len(result) != len(tt.expected) {
				t.Fatalf("got %d sentences %v, expected %d", len(result), result, len(tt.expected))
			}
			for i := range tt.expected {
				if result[i] != tt.expected[i] {
					t.Errorf("sentence[%d] = %q, expected %q", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Boundary
		wantErr  bool
	}{
		{
			name:     "words",
			input:    "words",
			expected: Words,
		},
		{
			name:     "uppercase sentences",
			input:    "SENTENCES",
			expected: Sentences,
		},
		{
			name:     "chars short form",
			input:    "chars",
			expected: Characters,
		},
		{
			name:    "unknown",
			input:   "paragraphs",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseBoundary(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseBoundary(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBoundary(%q): %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseBoundary(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestBoundary_String(t *testing.T) {
	tests := []struct {
		boundary Boundary
		expected string
	}{
		{Words, "words"},
		{Sentences, "sentences"},
		{Characters, "characters"},
		{Boundary(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.boundary.String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func BenchmarkSplit_Words(b *testing.B) {
	text := strings.Repeat("Hello world this is benchmark text. ", 200)

	b.ResetTimer()
	for range b.N {
		Split(text, Options{MaxTokens: 50})
	}
}

func BenchmarkSplit_Sentences(b *testing.B) {
	text := strings.Repeat("Hello world this is benchmark text. ", 200)

	b.ResetTimer()
	for range b.N {
		Split(text, Options{MaxTokens: 50, Boundary: Sentences})
	}
}
