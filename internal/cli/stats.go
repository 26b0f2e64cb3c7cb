package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/promptkit/promptkit/chunk"
	"github.com/promptkit/promptkit/internal/ui"
)

// statsJSON mirrors chunk.ChunkStats with nullable fields, since the
// empty-input sentinels (infinities, NaN) have no JSON encoding.
type statsJSON struct {
	TotalChunks   int      `json:"total_chunks"`
	TotalTokens   int      `json:"total_tokens"`
	MinTokens     *float64 `json:"min_tokens"`
	MaxTokens     *float64 `json:"max_tokens"`
	AverageTokens *float64 `json:"average_tokens"`
}

func statsToJSON(s chunk.ChunkStats) statsJSON {
	out := statsJSON{
		TotalChunks: s.TotalChunks,
		TotalTokens: s.TotalTokens,
	}
	if s.TotalChunks > 0 {
		out.MinTokens = &s.MinTokens
		out.MaxTokens = &s.MaxTokens
		out.AverageTokens = &s.AverageTokens
	}
	return out
}

// statValue renders a stats field, with "-" standing in for the
// empty-input sentinels. prec -1 prints the shortest exact form.
func statValue(v float64, empty bool, prec int) string {
	if empty {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func newStatsCmd() *cobra.Command {
	flags := &chunkFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Chunk a text and summarize the token distribution",
		Long: `Split a text into chunks and print summary statistics: chunk count,
total tokens, and the minimum, maximum, and average tokens per chunk.

Reads the named file, or stdin when the argument is "-" or absent.

Examples:
  promptkit stats notes.txt --max-tokens 500
  promptkit stats book.txt --model gpt-4o --boundary sentences --json`,
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

			stats := chunker.Stats(chunks)

			if asJSON {
				out, err := json.MarshalIndent(statsToJSON(stats), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			empty := stats.TotalChunks == 0
			fmt.Println(ui.KV("chunks", strconv.Itoa(stats.TotalChunks)))
			fmt.Println(ui.KV("total tokens", strconv.Itoa(stats.TotalTokens)))
			fmt.Println(ui.KV("min tokens", statValue(stats.MinTokens, empty, -1)))
			fmt.Println(ui.KV("max tokens", statValue(stats.MaxTokens, empty, -1)))
			fmt.Println(ui.KV("average tokens", statValue(stats.AverageTokens, empty, 1)))

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit stats as JSON")

	return cmd
}
