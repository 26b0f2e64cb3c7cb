package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptkit/promptkit/internal/ui"
	"github.com/promptkit/promptkit/model"
)

func newRecommendCmd() *cobra.Command {
	var margin float64

	cmd := &cobra.Command{
		Use:   "recommend [file]",
		Short: "Recommend the smallest model whose context window fits a text",
		Long: `Pick the cheapest model with the smallest context window that holds
the text plus a safety margin. When nothing fits, the largest available
window is returned with a warning.

Reads the named file, or stdin when the argument is "-" or absent.

Examples:
  promptkit recommend book.txt
  promptkit recommend book.txt --margin 0.2`,
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

			m := margin
			if m < 0 {
				m = env.cfg.Margin
			}

			rec := model.NewRecommender(
				model.WithCatalog(env.catalog),
				model.WithMargin(m),
				model.WithCounter(env.counter),
			)
			r := rec.RecommendText(text)

			fmt.Println(ui.StyleLabel.Render("model:"), ui.StyleModel.Render(r.Model))
			fmt.Println(ui.KV("required capacity", fmt.Sprintf("%d tokens", r.Tokens)))
			fmt.Println(ui.StyleLabel.Render("reason:"), r.Reason)

			return nil
		},
	}

	cmd.Flags().Float64Var(&margin, "margin", -1, "safety margin as a fraction of the token count (default from config)")

	return cmd
}
