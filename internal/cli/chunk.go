package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptkit/promptkit/chunk"
	"github.com/promptkit/promptkit/internal/ui"
	"github.com/promptkit/promptkit/tokens"
)

// chunkFlags are the segmentation inputs shared by chunk, stats, and
// watch.
type chunkFlags struct {
	maxTokens      int
	modelName      string
	boundary       string
	overlap        int
	overlapPercent float64
}

func (f *chunkFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.maxTokens, "max-tokens", 0, "token budget per chunk")
	cmd.Flags().StringVarP(&f.modelName, "model", "m", "", "derive the budget from a model's context window")
	cmd.Flags().StringVarP(&f.boundary, "boundary", "b", "words", "boundary mode: words, sentences, or chars")
	cmd.Flags().IntVar(&f.overlap, "overlap", 0, "units of overlap between consecutive chunks")
	cmd.Flags().Float64Var(&f.overlapPercent, "overlap-percent", -1, "overlap as a percentage of the budget (model mode; default from config)")

	cmd.MarkFlagsMutuallyExclusive("max-tokens", "model")
	cmd.MarkFlagsMutuallyExclusive("overlap", "overlap-percent")
}

// active reports whether any budget source was given.
func (f *chunkFlags) active() bool {
	return f.maxTokens != 0 || f.modelName != ""
}

// split segments the text according to the flags, returning the chunks
// and the chunker used (for follow-up stats).
func (f *chunkFlags) split(env *runEnv, text string) ([]string, *chunk.Chunker, error) {
	boundary, err := chunk.ParseBoundary(f.boundary)
	if err != nil {
		return nil, nil, err
	}

	chunker := chunk.New().WithCounter(env.counter)

	opts := chunk.Options{Boundary: boundary, Overlap: f.overlap}
	if f.modelName != "" {
		pct := f.overlapPercent
		if pct < 0 {
			pct = env.cfg.OverlapPercent
		}
		if pct > 100 {
			pct = 100
		}
		budget := chunk.NewBudget(env.catalog.ContextWindow(f.modelName))
		opts.MaxTokens = budget.Input
		opts.Overlap = int(float64(budget.Input) * pct / 100)
	} else {
		if f.maxTokens == 0 {
			return nil, nil, fmt.Errorf("either --max-tokens or --model is required")
		}
		opts.MaxTokens = f.maxTokens
	}

	chunks, err := chunker.Split(text, opts)
	if err != nil {
		return nil, nil, err
	}
	return chunks, chunker, nil
}

// chunkJSON is the machine-readable form of one chunk.
type chunkJSON struct {
	Index  int    `json:"index"`
	Tokens int    `json:"tokens"`
	Text   string `json:"text"`
}

func chunksToJSON(chunks []string, counter tokens.Counter) []chunkJSON {
	out := make([]chunkJSON, len(chunks))
	for i, c := range chunks {
		out[i] = chunkJSON{Index: i + 1, Tokens: counter.Count(c), Text: c}
	}
	return out
}

func newChunkCmd() *cobra.Command {
	flags := &chunkFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "chunk [file]",
		Short: "Split a text into chunks that fit a token budget",
		Long: `Split a text into ordered chunks, each fitting a token budget, with
word, sentence, or character boundaries and configurable overlap.

The budget comes from --max-tokens, or from a model's context window
with --model (75% of the window is budgeted for input).

Reads the named file, or stdin when the argument is "-" or absent.

Examples:
  promptkit chunk notes.txt --max-tokens 500
  promptkit chunk notes.txt --max-tokens 500 --boundary sentences --overlap 1
  promptkit chunk book.txt --model claude-sonnet-4 --overlap-percent 5
  promptkit chunk notes.txt --max-tokens 500 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv()
			if err != nil {
				return err
			}

			text, err := readInput(args)
			if err != nil {
				return err
			}

			chunks, chunker, err := flags.split(env, text)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(chunksToJSON(chunks, env.counter), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			stats := chunker.Stats(chunks)
			for i, c := range chunks {
				header := fmt.Sprintf("--- chunk %d/%d (%d tokens) ---", i+1, len(chunks), env.counter.Count(c))
				fmt.Println(ui.StyleChunkHeader.Render(header))
				fmt.Println(c)
				fmt.Println()
			}
			summary := fmt.Sprintf("%d chunks, %d tokens total", stats.TotalChunks, stats.TotalTokens)
			fmt.Println(ui.StyleChunkMeta.Render(summary))

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit chunks as a JSON array")

	return cmd
}
