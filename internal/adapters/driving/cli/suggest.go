package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [prefix]",
	Short: "Show autocomplete suggestions for a query prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	results, err := searchService.Suggest(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if len(results) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}

	for i := range results {
		item := results[i].Item
		cmd.Printf("  %s (%s)\n", item.Title, item.Type)
	}
	return nil
}
