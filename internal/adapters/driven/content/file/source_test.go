package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSource_Snapshot(t *testing.T) {
	path := writeCorpus(t, `{
		"books": [{"id": "b1", "name": "Genesis", "testament": "Old"}],
		"chapters": [{"id": "c1", "book": "Genesis", "number": 1}],
		"categories": [{"id": "g1", "name": "Law"}],
		"entities": [{"id": "e1", "name": "David", "kind": "person", "reference_count": 100}]
	}`)
	source := NewSource(path)

	snap, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Books, 1)
	assert.Equal(t, "Genesis", snap.Books[0].Name)
	require.Len(t, snap.Chapters, 1)
	assert.Equal(t, 1, snap.Chapters[0].Number)
	require.Len(t, snap.Categories, 1)
	require.Len(t, snap.Entities, 1)
	assert.Equal(t, 100, snap.Entities[0].ReferenceCount)
}

func TestSource_Snapshot_MissingSections(t *testing.T) {
	path := writeCorpus(t, `{"books": [{"id": "b1", "name": "Ruth"}]}`)
	source := NewSource(path)

	snap, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Books, 1)
	assert.Empty(t, snap.Chapters)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Entities)
}

func TestSource_Snapshot_MissingFile(t *testing.T) {
	source := NewSource(filepath.Join(t.TempDir(), "nope.json"))

	_, err := source.Snapshot(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_Snapshot_MalformedJSON(t *testing.T) {
	path := writeCorpus(t, `{"books": [`)
	source := NewSource(path)

	_, err := source.Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing corpus")
}

func TestSource_Snapshot_RereadsFile(t *testing.T) {
	path := writeCorpus(t, `{"books": [{"id": "b1", "name": "Ruth"}]}`)
	source := NewSource(path)

	snap, err := source.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Books, 1)

	require.NoError(t, os.WriteFile(path, []byte(
		`{"books": [{"id": "b1", "name": "Ruth"}, {"id": "b2", "name": "Esther"}]}`,
	), 0o644))

	snap, err = source.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Books, 2)
}

func TestSource_Path(t *testing.T) {
	assert.Equal(t, "/tmp/corpus.json", NewSource("/tmp/corpus.json").Path())
}
