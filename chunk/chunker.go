package chunk

import (
	"fmt"
	"strings"

	"github.com/promptkit/promptkit/tokens"
)

// Boundary selects the unit granularity chunks are built from.
type Boundary int

const (
	// Words splits on whitespace (default).
	Words Boundary = iota

	// Sentences splits after sentence terminators.
	Sentences

	// Characters splits into fixed-size rune windows with no regard for
	// language boundaries.
	Characters
)

// String returns the boundary name.
func (b Boundary) String() string {
	switch b {
	case Words:
		return "words"
	case Sentences:
		return "sentences"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// ParseBoundary converts a boundary name to its Boundary value.
// Accepts "words", "sentences", "characters", and the short form "chars".
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "words", "word":
		return Words, nil
	case "sentences", "sentence":
		return Sentences, nil
	case "characters", "chars", "char":
		return Characters, nil
	default:
		return Words, fmt.Errorf("unknown boundary %q", s)
	}
}

// Options controls how text is split.
type Options struct {
	// MaxTokens is the estimated token budget per chunk. Must be positive.
	MaxTokens int

	// Boundary is the unit granularity. The zero value splits on words.
	Boundary Boundary

	// Overlap is the number of trailing units from each chunk re-seeded
	// into the next one, preserving context across the split. Negative
	// values are treated as 0.
	Overlap int
}

// Chunker splits text into token-budgeted chunks.
type Chunker struct {
	counter tokens.Counter
}

// New creates a chunker using the default token estimator.
func New() *Chunker {
	return &Chunker{
		counter: tokens.NewEstimator(),
	}
}

// WithCounter sets a custom token counter.
func (c *Chunker) WithCounter(counter tokens.Counter) *Chunker {
	c.counter = counter
	return c
}

// ratio returns the counter's characters-per-token ratio, used to size
// character-mode windows. Custom counters fall back to the default ratio.
func (c *Chunker) ratio() float64 {
	if e, ok := c.counter.(*tokens.Estimator); ok {
		return e.CharsPerToken
	}
	return tokens.DefaultCharsPerToken
}

// Split divides text into ordered chunks whose estimated token counts
// stay at or below opts.MaxTokens. Empty or all-whitespace text yields no
// chunks. Text that already fits the budget is returned as a single
// trimmed chunk. A single unit that alone exceeds the budget becomes its
// own oversized chunk rather than being cut mid-unit.
func (c *Chunker) Split(text string, opts Options) ([]string, error) {
	if opts.MaxTokens <= 0 {
		return nil, fmt.Errorf("max tokens %d: %w", opts.MaxTokens, ErrInvalidMaxTokens)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	if c.counter.Count(text) <= opts.MaxTokens {
		return []string{trimmed}, nil
	}

	overlap := opts.Overlap
	if overlap < 0 {
		overlap = 0
	}

	switch opts.Boundary {
	case Sentences:
		return c.assemble(splitSentences(text), opts.MaxTokens, overlap), nil
	case Characters:
		return c.windows(trimmed, opts.MaxTokens, overlap), nil
	default:
		return c.assemble(splitWords(text), opts.MaxTokens, overlap), nil
	}
}

// assemble greedily packs units into chunks. Each chunk starts with up to
// overlap trailing units of the previous chunk, consumes at least one
// fresh unit, and grows while the estimate stays within the budget.
func (c *Chunker) assemble(units []string, maxTokens, overlap int) []string {
	var chunks []string
	var seed []string

	i := 0
	for i < len(units) {
		cur := append([]string(nil), seed...)
		text := strings.Join(cur, " ")

		// Shrink the seed from the front until the next fresh unit fits
		// alongside it. A chunk must never be overlap alone.
		for len(cur) > 0 && c.counter.Count(text+" "+units[i]) > maxTokens {
			cur = cur[1:]
			text = strings.Join(cur, " ")
		}

		if text == "" {
			text = units[i]
		} else {
			text += " " + units[i]
		}
		cur = append(cur, units[i])
		i++

		for i < len(units) {
			candidate := text + " " + units[i]
			if c.counter.Count(candidate) > maxTokens {
				break
			}
			text = candidate
			cur = append(cur, units[i])
			i++
		}

		if chunk := strings.TrimSpace(text); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if overlap > 0 && i < len(units) {
			take := overlap
			if take > len(cur) {
				take = len(cur)
			}
			seed = cur[len(cur)-take:]
		} else {
			seed = nil
		}
	}
	return chunks
}

// windows slices text into fixed-size rune windows. The window holds
// maxTokens worth of characters at the counter's ratio; overlap is a rune
// count, clamped so the window always advances.
func (c *Chunker) windows(text string, maxTokens, overlap int) []string {
	window := int(float64(maxTokens) * c.ratio())
	if window < 1 {
		window = 1
	}
	if overlap >= window {
		overlap = window - 1
	}
	step := window - overlap

	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + window
		if end > len(runes) {
			end = len(runes)
		}
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// Split divides text into chunks using the default estimator.
func Split(text string, opts Options) ([]string, error) {
	return New().Split(text, opts)
}
