package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index and cache statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	stats, err := searchService.Stats(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNotIndexed) {
			cmd.Println("Index not built yet.")
			return nil
		}
		return fmt.Errorf("stats failed: %w", err)
	}

	cmd.Println("Index:")
	for _, recordType := range []domain.RecordType{
		domain.RecordTypeBook,
		domain.RecordTypeChapter,
		domain.RecordTypeCategory,
		domain.RecordTypeEntity,
	} {
		cmd.Printf("  %-10s %d\n", recordType, stats.ItemCounts[recordType])
	}
	cmd.Println("Cache:")
	cmd.Printf("  hits       %d\n", stats.CacheHits)
	cmd.Printf("  misses     %d\n", stats.CacheMisses)
	return nil
}
