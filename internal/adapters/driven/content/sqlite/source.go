// Package sqlite provides a content source backed by a local SQLite
// database. The database stores records, not search indexes; indexing
// stays in memory.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/canon-labs/scriptura-cli/internal/adapters/driven/content/sqlite/migrations"
	"github.com/canon-labs/scriptura-cli/internal/core/domain"
	"github.com/canon-labs/scriptura-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ContentSource = (*Source)(nil)

// Source reads content records from a SQLite corpus database.
type Source struct {
	db   *sql.DB
	path string
}

// NewSource opens (or creates) the corpus database at dbPath and runs
// migrations.
func NewSource(dbPath string) (*Source, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Source{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Source) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Source) Path() string {
	return s.path
}

// DB exposes the underlying handle for seeding in tests and tools.
func (s *Source) DB() *sql.DB {
	return s.db
}

// migrate applies every embedded .sql file in lexical order.
func (s *Source) migrate(migrationFS fs.FS) error {
	files, err := fs.Glob(migrationFS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, name := range files {
		script, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
	}
	return nil
}

// Snapshot loads every record table. Rows with unparsable list columns
// keep their scalar fields; the lists are treated as absent.
func (s *Source) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	if err := s.loadBooks(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadChapters(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadCategories(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadEntities(ctx, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *Source) loadBooks(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, testament, category, abbreviations, summary FROM books ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.BookRecord
		var abbreviations string
		if err := rows.Scan(&r.ID, &r.Name, &r.Testament, &r.Category, &abbreviations, &r.Summary); err != nil {
			return fmt.Errorf("scanning book: %w", err)
		}
		r.Abbreviations = decodeList(abbreviations)
		snap.Books = append(snap.Books, r)
	}
	return rows.Err()
}

func (s *Source) loadChapters(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, book, number, summary, themes FROM chapters ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying chapters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.ChapterRecord
		var themes string
		if err := rows.Scan(&r.ID, &r.Book, &r.Number, &r.Summary, &themes); err != nil {
			return fmt.Errorf("scanning chapter: %w", err)
		}
		r.Themes = decodeList(themes)
		snap.Chapters = append(snap.Chapters, r)
	}
	return rows.Err()
}

func (s *Source) loadCategories(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, testament, description, books FROM categories ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.CategoryRecord
		var books string
		if err := rows.Scan(&r.ID, &r.Name, &r.Testament, &r.Description, &books); err != nil {
			return fmt.Errorf("scanning category: %w", err)
		}
		r.Books = decodeList(books)
		snap.Categories = append(snap.Categories, r)
	}
	return rows.Err()
}

func (s *Source) loadEntities(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, testament, role, location, aliases, description, reference_count, categories
		 FROM entities ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying entities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.EntityRecord
		var aliases, categories string
		if err := rows.Scan(&r.ID, &r.Name, &r.Kind, &r.Testament, &r.Role, &r.Location,
			&aliases, &r.Description, &r.ReferenceCount, &categories); err != nil {
			return fmt.Errorf("scanning entity: %w", err)
		}
		r.Aliases = decodeList(aliases)
		r.Categories = decodeList(categories)
		snap.Entities = append(snap.Entities, r)
	}
	return rows.Err()
}

// decodeList parses a JSON string array column. Malformed values are
// treated as absent.
func decodeList(raw string) []string {
	if raw == "" || raw == "null" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}
