package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the indexed corpus",
	Long: `Resolves a free-text query into a ranked list of books, chapters,
categories, and entities. Matching is case-insensitive and tolerates
small typos within a bounded edit distance.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default 50)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := context.Background()
	opts := domain.SearchOptions{
		Limit: searchLimit,
	}

	results, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputResultsJSON(cmd, results)
	}

	outputResultsTable(cmd, results)
	return nil
}

func outputResultsJSON(cmd *cobra.Command, results []domain.ScoredResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsTable(cmd *cobra.Command, results []domain.ScoredResult) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		item := results[i].Item
		cmd.Printf("  [%d] %s (%s, %.0f)\n", i+1, item.Title, item.Type, results[i].Score)
		if item.Subtitle != "" {
			cmd.Printf("      %s\n", item.Subtitle)
		}
		cmd.Printf("      %s\n", item.URL)
		cmd.Println()
	}
}
