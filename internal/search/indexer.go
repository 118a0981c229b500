package search

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
)

// Index is a named, ordered collection of indexed items of one record
// type. Built once per snapshot and immutable afterwards.
type Index struct {
	Type  domain.RecordType
	Items []domain.IndexedItem
}

// Indexer transforms content records into indexed items. It composes
// each item's SearchText from the record's relevant string fields and
// assigns the per-type relevance boost.
type Indexer struct {
	rules BoostRules
}

// NewIndexer creates an indexer with the given boost rules.
func NewIndexer(rules BoostRules) *Indexer {
	return &Indexer{rules: rules}
}

// BuildAll builds one index per record type from a snapshot. A nil
// snapshot or an absent record section yields an empty index for that
// type, never an error. Records arriving without an id are assigned
// one so the corpus-wide id uniqueness invariant holds.
func (ix *Indexer) BuildAll(snap *domain.Snapshot) []*Index {
	if snap == nil {
		snap = &domain.Snapshot{}
	}
	return []*Index{
		ix.buildBooks(snap.Books),
		ix.buildChapters(snap.Chapters),
		ix.buildCategories(snap.Categories),
		ix.buildEntities(snap.Entities),
	}
}

func (ix *Indexer) buildBooks(records []domain.BookRecord) *Index {
	idx := &Index{Type: domain.RecordTypeBook, Items: make([]domain.IndexedItem, 0, len(records))}
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		idx.Items = append(idx.Items, domain.IndexedItem{
			ID:          orGeneratedID(r.ID),
			Type:        domain.RecordTypeBook,
			Title:       r.Name,
			Subtitle:    subtitleOf(r.Testament, r.Category),
			Description: r.Summary,
			URL:         "/books/" + slugify(r.Name),
			SearchText: composeSearchText(
				r.Name, r.Testament, r.Category, r.Summary,
				strings.Join(r.Abbreviations, " "),
			),
			Boost: ix.rules.Book,
		})
	}
	return idx
}

func (ix *Indexer) buildChapters(records []domain.ChapterRecord) *Index {
	idx := &Index{Type: domain.RecordTypeChapter, Items: make([]domain.IndexedItem, 0, len(records))}
	for _, r := range records {
		if r.Book == "" || r.Number <= 0 {
			continue
		}
		title := fmt.Sprintf("%s %d", r.Book, r.Number)
		idx.Items = append(idx.Items, domain.IndexedItem{
			ID:          orGeneratedID(r.ID),
			Type:        domain.RecordTypeChapter,
			Title:       title,
			Subtitle:    "Chapter " + strconv.Itoa(r.Number),
			Description: r.Summary,
			URL:         "/books/" + slugify(r.Book) + "/" + strconv.Itoa(r.Number),
			SearchText: composeSearchText(
				title, r.Summary, strings.Join(r.Themes, " "),
			),
			Boost: ix.rules.Chapter,
		})
	}
	return idx
}

func (ix *Indexer) buildCategories(records []domain.CategoryRecord) *Index {
	idx := &Index{Type: domain.RecordTypeCategory, Items: make([]domain.IndexedItem, 0, len(records))}
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		idx.Items = append(idx.Items, domain.IndexedItem{
			ID:          orGeneratedID(r.ID),
			Type:        domain.RecordTypeCategory,
			Title:       r.Name,
			Subtitle:    subtitleOf(r.Testament, "category"),
			Description: r.Description,
			URL:         "/categories/" + slugify(r.Name),
			SearchText: composeSearchText(
				r.Name, r.Testament, r.Description,
				strings.Join(r.Books, " "),
			),
			Boost: ix.rules.Category,
		})
	}
	return idx
}

func (ix *Indexer) buildEntities(records []domain.EntityRecord) *Index {
	idx := &Index{Type: domain.RecordTypeEntity, Items: make([]domain.IndexedItem, 0, len(records))}
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		idx.Items = append(idx.Items, domain.IndexedItem{
			ID:          orGeneratedID(r.ID),
			Type:        domain.RecordTypeEntity,
			Title:       r.Name,
			Subtitle:    subtitleOf(r.Kind, r.Testament),
			Description: r.Description,
			URL:         "/entities/" + slugify(r.Name),
			SearchText: composeSearchText(
				r.Name, r.Kind, r.Testament, r.Role, r.Location,
				r.Description, strings.Join(r.Aliases, " "),
				strings.Join(r.Categories, " "),
			),
			Boost:          ix.entityBoost(r.Kind, r.ReferenceCount),
			Testament:      r.Testament,
			Kind:           r.Kind,
			Role:           r.Role,
			Location:       r.Location,
			ReferenceCount: r.ReferenceCount,
			Categories:     r.Categories,
		})
	}
	return idx
}

// entityBoost combines the kind baseline, a capped logarithmic
// reference-count term, and the importance band bonus.
func (ix *Indexer) entityBoost(kind string, refs int) float64 {
	base, ok := ix.rules.EntityKindBase[strings.ToLower(kind)]
	if !ok {
		base = ix.rules.EntityDefaultBase
	}

	refTerm := math.Log10(float64(refs)+1) * ix.rules.ReferenceWeight
	if refTerm > ix.rules.ReferenceCap {
		refTerm = ix.rules.ReferenceCap
	}

	return base + refTerm + ix.bandBonus(refs)
}

func (ix *Indexer) bandBonus(refs int) float64 {
	for _, band := range ix.rules.Bands {
		if refs >= band.MinReferences {
			return band.Bonus
		}
	}
	return 0
}

// composeSearchText joins the non-empty fields and normalises the
// result to lowercase with single spaces.
func composeSearchText(fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return normalizeText(strings.Join(parts, " "))
}

func subtitleOf(primary, secondary string) string {
	switch {
	case primary != "" && secondary != "":
		return primary + " · " + secondary
	case primary != "":
		return primary
	default:
		return secondary
	}
}

func orGeneratedID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// slugify builds a URL path segment from a display name.
func slugify(name string) string {
	return strings.Join(strings.Fields(foldText(name)), "-")
}
