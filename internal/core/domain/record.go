package domain

// RecordType identifies the kind of content record an indexed item
// was built from. Each type gets its own index and boost rules.
type RecordType string

const (
	// RecordTypeBook is a top-level work (e.g. Genesis).
	RecordTypeBook RecordType = "book"

	// RecordTypeChapter is a single chapter within a book.
	RecordTypeChapter RecordType = "chapter"

	// RecordTypeCategory is a topical grouping of books.
	RecordTypeCategory RecordType = "category"

	// RecordTypeEntity is a named person, place, tribe, or title.
	RecordTypeEntity RecordType = "entity"
)

// BookRecord describes one book of the canon.
// All fields except Name are optional; missing fields simply
// contribute nothing to the search text.
type BookRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Testament     string   `json:"testament"`
	Category      string   `json:"category"`
	Abbreviations []string `json:"abbreviations"`
	Summary       string   `json:"summary"`
}

// ChapterRecord describes one chapter of a book.
type ChapterRecord struct {
	ID      string   `json:"id"`
	Book    string   `json:"book"`
	Number  int      `json:"number"`
	Summary string   `json:"summary"`
	Themes  []string `json:"themes"`
}

// CategoryRecord describes a topical grouping of books.
type CategoryRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Testament   string   `json:"testament"`
	Description string   `json:"description"`
	Books       []string `json:"books"`
}

// EntityRecord describes a named entity referenced by the text.
type EntityRecord struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Kind           string   `json:"kind"` // person, place, tribe, title
	Testament      string   `json:"testament"`
	Role           string   `json:"role"`
	Location       string   `json:"location"`
	Aliases        []string `json:"aliases"`
	Description    string   `json:"description"`
	ReferenceCount int      `json:"reference_count"`
	Categories     []string `json:"categories"`
}

// Snapshot is one complete view of the content supplier's records.
// The indexer consumes a snapshot wholesale; there is no incremental
// upsert or delete.
type Snapshot struct {
	Books      []BookRecord
	Chapters   []ChapterRecord
	Categories []CategoryRecord
	Entities   []EntityRecord
}

// Empty reports whether the snapshot carries no records at all.
func (s *Snapshot) Empty() bool {
	return s == nil ||
		len(s.Books)+len(s.Chapters)+len(s.Categories)+len(s.Entities) == 0
}
