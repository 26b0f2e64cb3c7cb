package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptkit/promptkit/internal/ui"
)

func newEstimateCmd() *cobra.Command {
	var modelName string

	cmd := &cobra.Command{
		Use:   "estimate [file]",
		Short: "Estimate token count and cost for a text",
		Long: `Estimate how many tokens a text will consume and what sending it as
input would cost for a model.

Reads the named file, or stdin when the argument is "-" or absent.

Examples:
  promptkit estimate prompt.txt
  cat prompt.txt | promptkit estimate --model gpt-4o`,
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

			if modelName == "" {
				modelName = env.cfg.DefaultModel
			}

			count := env.counter.Count(text)
			window := env.catalog.ContextWindow(modelName)
			cost := env.catalog.CostForTokens(count, modelName)

			fmt.Println(ui.KV("tokens", fmt.Sprintf("%d", count)))
			fmt.Println(ui.KV("model", modelName))
			fmt.Println(ui.KV("context window", fmt.Sprintf("%d", window)))
			fmt.Println(ui.KV("input cost", fmt.Sprintf("$%.6f", cost)))

			if count > window {
				fmt.Println(ui.StyleWarning.Render("text exceeds the model's context window"))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&modelName, "model", "m", "", "model to price against (default from config)")

	return cmd
}
