package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("The Song of Songs, which is Solomon's!")
	assert.Equal(t, []string{"song", "songs", "which", "solomon"}, tokens)
}

func TestTokenizer_Tokenize_EmptyInput(t *testing.T) {
	tok := NewTokenizer()

	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("   \t\n"))
}

func TestTokenizer_Tokenize_DropsShortTokens(t *testing.T) {
	tok := NewTokenizer()

	// Single characters survive neither as letters nor digits.
	tokens := tok.Tokenize("a b c David 7 x")
	assert.Equal(t, []string{"david"}, tokens)
}

func TestTokenizer_Tokenize_DropsStopWords(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("the king of israel and the prophet")
	assert.Equal(t, []string{"king", "israel", "prophet"}, tokens)
}

func TestTokenizer_Tokenize_ReplacesPunctuation(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("David's son; Solomon-King (wise)")
	assert.Equal(t, []string{"david", "son", "solomon", "king", "wise"}, tokens)
}

func TestTokenizer_Tokenize_ExtraStopWords(t *testing.T) {
	tok := NewTokenizer("chapter", "Verse")

	tokens := tok.Tokenize("chapter three verse nine")
	assert.Equal(t, []string{"three", "nine"}, tokens)
}

func TestTokenizer_Tokenize_Deterministic(t *testing.T) {
	tok := NewTokenizer()

	first := tok.Tokenize("Moses parted the Red Sea")
	second := tok.Tokenize("Moses parted the Red Sea")
	assert.Equal(t, first, second)
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "david king", NormalizeQuery("  DaViD   King \t"))
	assert.Equal(t, "", NormalizeQuery("    "))
	assert.Equal(t, "david's psalm", NormalizeQuery("David's Psalm"))
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("king david of israel", "david"))
	assert.True(t, containsWord("david's psalm", "david"))
	assert.True(t, containsWord("david", "david"))
	assert.False(t, containsWord("davidson", "david"))
	assert.False(t, containsWord("king dav of israel", "david"))
	assert.False(t, containsWord("anything", ""))
}
