package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptkit/promptkit/truncate"
)

func newTruncateCmd() *cobra.Command {
	var maxTokens int
	var strategy string
	var suffix string

	cmd := &cobra.Command{
		Use:   "truncate [file]",
		Short: "Cut a text down to a token budget",
		Long: `Truncate a text so it fits a token budget. Strategies: end (keep the
head), start (keep the tail), middle (keep head and tail around an
elision marker), smart (end truncation that backs up to a sentence or
word boundary).

The truncated text is written to stdout. Reads the named file, or stdin
when the argument is "-" or absent.

Examples:
  promptkit truncate log.txt --max-tokens 1000
  promptkit truncate log.txt --max-tokens 1000 --strategy middle
  promptkit truncate article.txt --max-tokens 400 --strategy smart`,
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

			var out string
			if strategy == "smart" {
				out, err = truncate.New(truncate.End).WithCounter(env.counter).Smart(text, maxTokens)
			} else {
				st, parseErr := truncate.ParseStrategy(strategy)
				if parseErr != nil {
					return parseErr
				}
				tr := truncate.New(st).WithCounter(env.counter)
				if suffix != "" {
					tr = tr.WithSuffix(suffix)
				}
				out, err = tr.Truncate(text, maxTokens)
			}
			if err != nil {
				return err
			}

			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "token budget (required)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "end", "truncation strategy: end, start, middle, or smart")
	cmd.Flags().StringVar(&suffix, "suffix", "", "custom marker for dropped content")
	_ = cmd.MarkFlagRequired("max-tokens")

	return cmd
}
