package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Settings{}, store.Settings())
}

func TestStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	store.SetSettings(Settings{
		Verbose: true,
		Corpus: CorpusSettings{
			Path:  "/data/corpus.json",
			Watch: true,
		},
		Search: SearchSettings{
			MaxResults:      25,
			SuggestLimit:    5,
			DebounceDelayMS: 200,
			StopWords:       []string{"verse"},
			Synonyms:        map[string][]string{"shalom": {"peace"}},
		},
	})
	require.NoError(t, store.Save())

	reloaded, err := NewStore(dir)
	require.NoError(t, err)

	settings := reloaded.Settings()
	assert.True(t, settings.Verbose)
	assert.Equal(t, "/data/corpus.json", settings.Corpus.Path)
	assert.True(t, settings.Corpus.Watch)
	assert.Equal(t, 25, settings.Search.MaxResults)
	assert.Equal(t, []string{"verse"}, settings.Search.StopWords)
	assert.Equal(t, map[string][]string{"shalom": {"peace"}}, settings.Search.Synonyms)
}

func TestStore_SaveRestrictsPermissions(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_LoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("verbose = [broken"), 0600))

	_, err := NewStore(dir)
	assert.Error(t, err)
}

func TestStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestStore_SearchConfig(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	store.SetSettings(Settings{
		Search: SearchSettings{
			MaxResults:      25,
			SuggestLimit:    5,
			CacheCapacity:   100,
			DebounceDelayMS: 200,
			StopWords:       []string{"verse"},
		},
	})

	cfg := store.SearchConfig()
	assert.Equal(t, 25, cfg.MaxResults)
	assert.Equal(t, 5, cfg.SuggestLimit)
	assert.Equal(t, 100, cfg.CacheCapacity)
	assert.Equal(t, 200*time.Millisecond, cfg.DebounceDelay)
	assert.Equal(t, []string{"verse"}, cfg.StopWords)
}

func TestStore_SearchConfig_ZeroDelayLeftUnset(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	cfg := store.SearchConfig()
	assert.Equal(t, time.Duration(0), cfg.DebounceDelay)
}
