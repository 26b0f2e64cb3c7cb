package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptkit/promptkit/internal/ui"
	"github.com/promptkit/promptkit/model"
)

func newModelsCmd() *cobra.Command {
	var schema bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List known models with context windows and pricing",
		Long: `Print the model catalog: context window and input/output pricing per
million tokens. A custom catalog given with --catalog (or in the config
file) is layered over the built-in entries.

--schema prints the JSON Schema that custom catalog files must satisfy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema {
				out, err := model.CatalogSchema()
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			env, err := newRunEnv()
			if err != nil {
				return err
			}

			header := fmt.Sprintf("%-22s %12s %10s %10s", "MODEL", "CONTEXT", "$/M IN", "$/M OUT")
			fmt.Println(ui.StyleHeader.Render(header))
			for _, name := range env.catalog.Names() {
				info, ok := env.catalog.Lookup(name)
				if !ok {
					continue
				}
				fmt.Printf("%-22s %12d %10.2f %10.2f\n",
					name, info.ContextWindow, info.Pricing.InputPerMillion, info.Pricing.OutputPerMillion)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&schema, "schema", false, "print the JSON Schema for catalog files")

	return cmd
}
