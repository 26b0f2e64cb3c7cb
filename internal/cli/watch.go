package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/promptkit/promptkit/internal/ui"
)

func newWatchCmd() *cobra.Command {
	flags := &chunkFlags{}
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Watch a file and re-estimate on every change",
		Long: `Start a long-running watcher that re-estimates token count (and cost
and chunk count, when a model or budget is given) every time the file
changes.

Changes are debounced so that rapid saves are batched into one report.

Press Ctrl-C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRunEnv()
			if err != nil {
				return err
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			// Watch the directory rather than the file itself: editors
			// often save by writing a temp file and renaming it over the
			// original, which would drop a watch on the file.
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
			}

			debounce := time.Duration(debounceMs) * time.Millisecond
			fmt.Printf("Watching %s (debounce %s). Press Ctrl-C to stop.\n", path, debounce)

			report := func() {
				data, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "  read error: %v\n", err)
					return
				}
				text := string(data)

				count := env.counter.Count(text)
				ts := time.Now().Format("15:04:05")
				line := fmt.Sprintf("[%s] tokens=%d", ts, count)

				if flags.modelName != "" {
					cost := env.catalog.CostForTokens(count, flags.modelName)
					line += fmt.Sprintf(" cost=$%.6f", cost)
				}
				if flags.active() {
					chunks, _, err := flags.split(env, text)
					if err != nil {
						fmt.Fprintf(os.Stderr, "  %v\n", err)
						return
					}
					line += fmt.Sprintf(" chunks=%d", len(chunks))
				}

				fmt.Println(line)
			}

			report()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			timer := time.NewTimer(debounce)
			timer.Stop() // Don't fire immediately.

			for {
				select {
				case <-sigCh:
					fmt.Println("\nStopping watcher.")
					return nil

				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != path {
						continue
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
						timer.Reset(debounce)
					}
					if event.Has(fsnotify.Remove) {
						fmt.Println(ui.StyleWarning.Render("file removed; waiting for it to reappear"))
					}

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(os.Stderr, "  watch error: %v\n", err)

				case <-timer.C:
					report()
				}
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&debounceMs, "debounce", 300, "debounce interval in milliseconds")

	return cmd
}
