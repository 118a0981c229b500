// Package cli implements the scriptura command-line interface.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/canon-labs/scriptura-cli/internal/adapters/driven/config/file"
	contentfile "github.com/canon-labs/scriptura-cli/internal/adapters/driven/content/file"
	contentsqlite "github.com/canon-labs/scriptura-cli/internal/adapters/driven/content/sqlite"
	"github.com/canon-labs/scriptura-cli/internal/core/ports/driven"
	"github.com/canon-labs/scriptura-cli/internal/core/ports/driving"
	"github.com/canon-labs/scriptura-cli/internal/core/services"
	"github.com/canon-labs/scriptura-cli/internal/logger"
	"github.com/canon-labs/scriptura-cli/internal/search"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

var (
	verbose    bool
	configDir  string
	corpusPath string
	dbPath     string

	// Wired during PersistentPreRunE; package commands consume these.
	settingsStore *configfile.Store
	searchService driving.SearchService
	contentSource driven.ContentSource
	closeSource   func() error
)

var rootCmd = &cobra.Command{
	Use:   "scriptura",
	Short: "Search books, chapters, categories, and entities of the canon",
	Long: `Scriptura indexes canon content records into an in-memory corpus and
resolves free-text queries with layered scoring: exact, prefix, and
substring title matches, token overlap, bounded fuzzy matching, and
domain synonym expansion.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if closeSource != nil {
			return closeSource()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.scriptura)")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "JSON corpus file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite corpus database path")
}

// initServices wires the content source, engine, and search service
// before any command runs.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Name() == "version" {
		return nil
	}

	store, err := configfile.NewStore(configDir)
	if err != nil {
		return err
	}
	settingsStore = store

	settings := store.Settings()
	if settings.Verbose && !verbose {
		logger.SetVerbose(true)
	}

	source, err := resolveSource(settings)
	if err != nil {
		return err
	}
	contentSource = source

	engine := search.NewEngine(store.SearchConfig())
	svc := services.NewSearchService(source, engine)

	// A missing or unreadable corpus is not fatal: the engine serves
	// empty results until a corpus appears.
	if err := svc.Rebuild(context.Background()); err != nil {
		logger.Warn("Initial index build failed: %v", err)
	}

	searchService = svc
	return nil
}

// resolveSource picks the content source: --db, then --corpus, then
// the configured database or corpus path, then the default corpus
// location.
func resolveSource(settings configfile.Settings) (driven.ContentSource, error) {
	database := dbPath
	if database == "" {
		database = settings.Corpus.Database
	}
	if database != "" {
		src, err := contentsqlite.NewSource(database)
		if err != nil {
			return nil, err
		}
		closeSource = src.Close
		return src, nil
	}

	path := corpusPath
	if path == "" {
		path = settings.Corpus.Path
	}
	if path == "" {
		path = defaultCorpusPath()
	}
	return contentfile.NewSource(path), nil
}

func defaultCorpusPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "corpus.json"
	}
	return filepath.Join(home, ".scriptura", "corpus.json")
}
