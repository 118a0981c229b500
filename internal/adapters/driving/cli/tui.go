package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	contentfile "github.com/canon-labs/scriptura-cli/internal/adapters/driven/content/file"
	"github.com/canon-labs/scriptura-cli/internal/adapters/driving/tui"
	"github.com/canon-labs/scriptura-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Scriptura.

Results update live as you type; keystrokes are debounced so only the
most recent query within the settle window is resolved.

Controls:
  ↑/↓    - Navigate results
  Esc    - Clear query
  Ctrl+C - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Rebuild on corpus changes while the TUI is running.
	if src, ok := contentSource.(*contentfile.Source); ok && settingsStore.Settings().Corpus.Watch {
		watcher, err := contentfile.NewWatcher(src.Path(), func() {
			if err := searchService.Rebuild(ctx); err != nil {
				logger.Warn("Rebuild failed: %v", err)
			}
		})
		if err != nil {
			logger.Warn("Corpus watching disabled: %v", err)
		} else {
			defer watcher.Close()
			go watcher.Run(ctx) //nolint:errcheck
		}
	}

	model := tui.New(searchService)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
