package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canon-labs/scriptura-cli/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long: `Expose search and suggest as MCP tools. By default the server
speaks over stdio; pass --http to serve over HTTP instead.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve MCP over HTTP on this address (e.g. :8080)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{Search: searchService})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	if mcpHTTPAddr != "" {
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}
	return server.Run(cmd.Context())
}
