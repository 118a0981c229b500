package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T) *Source {
	t.Helper()
	source, err := NewSource(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { source.Close() })
	return source
}

func TestSource_MigratesFreshDatabase(t *testing.T) {
	source := newTestSource(t)

	snap, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Empty())
}

func TestSource_Snapshot(t *testing.T) {
	source := newTestSource(t)

	_, err := source.DB().Exec(
		`INSERT INTO books (id, name, testament, category, abbreviations, summary)
		 VALUES ('b1', 'Genesis', 'Old', 'Law', '["Gen","Ge"]', 'Creation and the patriarchs.')`)
	require.NoError(t, err)
	_, err = source.DB().Exec(
		`INSERT INTO chapters (id, book, number, summary, themes)
		 VALUES ('c1', 'Genesis', 1, 'God creates.', '["creation"]')`)
	require.NoError(t, err)
	_, err = source.DB().Exec(
		`INSERT INTO categories (id, name, description, books)
		 VALUES ('g1', 'Law', 'The five books of Moses.', '["Genesis"]')`)
	require.NoError(t, err)
	_, err = source.DB().Exec(
		`INSERT INTO entities (id, name, kind, testament, role, location, aliases, description, reference_count, categories)
		 VALUES ('e1', 'David', 'person', 'Old', 'king', 'Jerusalem', '["Son of Jesse"]', 'Second king of Israel.', 100, '["Kings"]')`)
	require.NoError(t, err)

	snap, err := source.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Books, 1)
	assert.Equal(t, "Genesis", snap.Books[0].Name)
	assert.Equal(t, []string{"Gen", "Ge"}, snap.Books[0].Abbreviations)

	require.Len(t, snap.Chapters, 1)
	assert.Equal(t, 1, snap.Chapters[0].Number)
	assert.Equal(t, []string{"creation"}, snap.Chapters[0].Themes)

	require.Len(t, snap.Categories, 1)
	assert.Equal(t, []string{"Genesis"}, snap.Categories[0].Books)

	require.Len(t, snap.Entities, 1)
	assert.Equal(t, 100, snap.Entities[0].ReferenceCount)
	assert.Equal(t, []string{"Son of Jesse"}, snap.Entities[0].Aliases)
}

func TestSource_SnapshotPreservesInsertionOrder(t *testing.T) {
	source := newTestSource(t)

	for _, name := range []string{"Genesis", "Exodus", "Leviticus"} {
		_, err := source.DB().Exec(
			`INSERT INTO books (id, name) VALUES (?, ?)`, "b-"+name, name)
		require.NoError(t, err)
	}

	snap, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Books, 3)
	assert.Equal(t, "Genesis", snap.Books[0].Name)
	assert.Equal(t, "Exodus", snap.Books[1].Name)
	assert.Equal(t, "Leviticus", snap.Books[2].Name)
}

func TestSource_ToleratesMalformedListColumns(t *testing.T) {
	source := newTestSource(t)

	_, err := source.DB().Exec(
		`INSERT INTO books (id, name, abbreviations) VALUES ('b1', 'Genesis', 'not json')`)
	require.NoError(t, err)

	snap, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Books, 1)
	assert.Equal(t, "Genesis", snap.Books[0].Name)
	assert.Nil(t, snap.Books[0].Abbreviations)
}

func TestSource_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")

	first, err := NewSource(path)
	require.NoError(t, err)
	_, err = first.DB().Exec(`INSERT INTO books (id, name) VALUES ('b1', 'Ruth')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewSource(path)
	require.NoError(t, err)
	defer second.Close()

	snap, err := second.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Books, 1)
}

func TestDecodeList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, decodeList(`["a","b"]`))
	assert.Nil(t, decodeList(""))
	assert.Nil(t, decodeList("null"))
	assert.Nil(t, decodeList("{broken"))
	assert.Empty(t, decodeList("[]"))
}
