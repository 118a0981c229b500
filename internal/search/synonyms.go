package search

// defaultSynonyms maps canonical domain terms to equivalent phrasings.
// Curated at build time, not learned. Lookup is by exact token
// equality only; no fuzzy matching is applied to the keys.
var defaultSynonyms = map[string][]string{
	"god":       {"lord", "yahweh", "jehovah", "almighty"},
	"jesus":     {"christ", "messiah", "savior"},
	"spirit":    {"ghost", "comforter"},
	"law":       {"torah", "commandments"},
	"prophet":   {"seer", "oracle"},
	"king":      {"ruler", "monarch"},
	"priest":    {"levite", "intercessor"},
	"temple":    {"sanctuary", "tabernacle"},
	"covenant":  {"promise", "testament"},
	"sin":       {"transgression", "iniquity"},
	"psalm":     {"song", "hymn"},
	"gospel":    {"good news", "evangel"},
	"apostle":   {"disciple", "emissary"},
	"israel":    {"jacob", "israelites"},
	"exodus":    {"departure", "deliverance"},
	"sacrifice": {"offering", "atonement"},
	"angel":     {"messenger", "heavenly host"},
	"satan":     {"devil", "adversary", "serpent"},
	"church":    {"congregation", "assembly"},
	"wisdom":    {"understanding", "discernment"},
}

// SynonymTable maps canonical lowercase terms to domain synonyms.
type SynonymTable struct {
	entries map[string][]string
}

// NewSynonymTable creates a table with the built-in entries plus any
// extras. Extra entries with an existing key extend that key's list.
func NewSynonymTable(extra map[string][]string) *SynonymTable {
	entries := make(map[string][]string, len(defaultSynonyms)+len(extra))
	for k, v := range defaultSynonyms {
		entries[k] = v
	}
	for k, v := range extra {
		entries[k] = append(entries[k], v...)
	}
	return &SynonymTable{entries: entries}
}

// Expand returns the synonyms for a token, or nil when the token is
// not a canonical term. The token must already be lowercase.
func (s *SynonymTable) Expand(token string) []string {
	return s.entries[token]
}
