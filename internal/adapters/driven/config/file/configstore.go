package file

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/canon-labs/scriptura-cli/internal/search"
)

// Settings is the on-disk configuration shape.
type Settings struct {
	Verbose bool           `toml:"verbose"`
	Corpus  CorpusSettings `toml:"corpus"`
	Search  SearchSettings `toml:"search"`
}

// CorpusSettings selects the content source.
type CorpusSettings struct {
	// Path is the JSON corpus file path.
	Path string `toml:"path"`

	// Database is the SQLite corpus path; takes precedence over Path
	// when both are set.
	Database string `toml:"database"`

	// Watch enables rebuild-on-change for the JSON corpus.
	Watch bool `toml:"watch"`
}

// SearchSettings tunes the engine. Zero values fall back to engine
// defaults.
type SearchSettings struct {
	MaxResults      int                 `toml:"max_results"`
	SuggestLimit    int                 `toml:"suggest_limit"`
	CacheCapacity   int                 `toml:"cache_capacity"`
	DebounceDelayMS int                 `toml:"debounce_delay_ms"`
	StopWords       []string            `toml:"stop_words"`
	Synonyms        map[string][]string `toml:"synonyms"`
}

// Store is a file-based settings store using TOML.
type Store struct {
	mu       sync.RWMutex
	filePath string
	settings Settings
}

// NewStore creates a TOML settings store. If configDir is empty, it
// defaults to ~/.scriptura.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".scriptura")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &Store{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Load reads settings from the TOML file. A missing file leaves the
// zero settings in place.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.settings = Settings{}
			return nil
		}
		return err
	}

	var loaded Settings
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	s.settings = loaded
	return nil
}

// Save persists the current settings to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(s.settings)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the current settings.
func (s *Store) SetSettings(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.filePath
}

// SearchConfig maps the stored search settings onto an engine config.
func (s *Store) SearchConfig() search.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := search.Config{
		MaxResults:    s.settings.Search.MaxResults,
		SuggestLimit:  s.settings.Search.SuggestLimit,
		CacheCapacity: s.settings.Search.CacheCapacity,
		StopWords:     s.settings.Search.StopWords,
		Synonyms:      s.settings.Search.Synonyms,
	}
	if ms := s.settings.Search.DebounceDelayMS; ms > 0 {
		cfg.DebounceDelay = time.Duration(ms) * time.Millisecond
	}
	return cfg
}
