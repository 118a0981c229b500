package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynonymTable_Expand(t *testing.T) {
	table := NewSynonymTable(nil)

	assert.Contains(t, table.Expand("god"), "lord")
	assert.Contains(t, table.Expand("psalm"), "song")
}

func TestSynonymTable_Expand_UnknownToken(t *testing.T) {
	table := NewSynonymTable(nil)

	assert.Empty(t, table.Expand("goliath"))
}

func TestSynonymTable_Expand_ExactKeyOnly(t *testing.T) {
	table := NewSynonymTable(nil)

	// No fuzzy matching on keys: a near-miss expands to nothing.
	assert.Empty(t, table.Expand("gods"))
	assert.Empty(t, table.Expand("GOD"))
}

func TestSynonymTable_ExtraEntries(t *testing.T) {
	table := NewSynonymTable(map[string][]string{
		"god":    {"elohim"},
		"shalom": {"peace"},
	})

	assert.Contains(t, table.Expand("god"), "lord")
	assert.Contains(t, table.Expand("god"), "elohim")
	assert.Equal(t, []string{"peace"}, table.Expand("shalom"))
}
