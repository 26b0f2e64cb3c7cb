// Package cli defines the Cobra command tree for the promptkit CLI.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptkit/promptkit/internal/config"
	"github.com/promptkit/promptkit/internal/ui"
	"github.com/promptkit/promptkit/model"
	"github.com/promptkit/promptkit/tokens"
)

var (
	// version, commit, date are set via -ldflags at build time.
	version = "dev"
	commit  = "unknown"
	date    = "unknown"

	// Persistent flags.
	noColor     bool
	catalogPath string
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "promptkit",
	Short: "Token-budgeted text segmentation for LLM prompts",
	Long: `Promptkit estimates how many tokens a text will consume, what it will
cost for a given model, and splits it into chunks that fit a token budget
with word, sentence, or character boundaries and configurable overlap.

All token counts are heuristic approximations (roughly 4 characters per
token), intended for budget planning rather than billing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(v, c, d string) {
	version, commit, date = v, c, d
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.StyleError.Render("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a custom model catalog (YAML)")

	rootCmd.AddCommand(
		newEstimateCmd(),
		newChunkCmd(),
		newStatsCmd(),
		newModelsCmd(),
		newRecommendCmd(),
		newTruncateCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("promptkit %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// runEnv bundles what every command needs: the effective config, the
// model catalog, and a token counter honoring chars_per_token.
type runEnv struct {
	cfg     config.Config
	catalog *model.Catalog
	counter tokens.Counter
}

func newRunEnv() (*runEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if noColor || cfg.NoColor {
		ui.DisableColor()
	}

	path := catalogPath
	if path == "" {
		path = cfg.Catalog
	}
	catalog := model.Builtin()
	if path != "" {
		catalog, err = model.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
	}

	return &runEnv{
		cfg:     cfg,
		catalog: catalog,
		counter: tokens.NewEstimatorWithRatio(cfg.CharsPerToken),
	}, nil
}

// readInput returns the text for a command: the named file, or stdin
// when the argument is absent or "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
