// Package search maintains a SQLite FTS5 index over the loaded notes.
package search

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/notedown-dev/notedown/internal/content"
)

//go:embed schema.sql
var schemaSQL string

// Result is one search hit.
type Result struct {
	Slug    string
	Section string
	Title   string
	Snippet string // body excerpt with <mark> around matched terms
}

// Index is the full-text search index.
type Index struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an unopened index.
func New(logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.Default()
	}
	return &Index{logger: logger}
}

// Open opens the index database. Use ":memory:" for an in-memory index,
// which is the default for the dev server.
func (ix *Index) Open(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open search index: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping search index: %w", err)
	}
	// A single connection keeps the in-memory database alive and makes
	// rebuilds atomic from the readers' point of view.
	db.SetMaxOpenConns(1)

	ix.db = db
	return nil
}

// Close closes the index database.
func (ix *Index) Close() error {
	if ix.db != nil {
		return ix.db.Close()
	}
	return nil
}

// InitSchema creates the FTS table if it does not exist.
func (ix *Index) InitSchema() error {
	if ix.db == nil {
		return fmt.Errorf("search index not opened")
	}
	if _, err := ix.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize search schema: %w", err)
	}
	return nil
}

// Rebuild replaces the index contents with the given library.
func (ix *Index) Rebuild(lib *content.Library) error {
	if ix.db == nil {
		return fmt.Errorf("search index not opened")
	}

	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin index rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM notes`); err != nil {
		return fmt.Errorf("failed to clear search index: %w", err)
	}

	for _, doc := range lib.Docs() {
		_, err := tx.Exec(
			`INSERT INTO notes (slug, section, title, body) VALUES (?, ?, ?, ?)`,
			doc.Slug, doc.Section, doc.Title, doc.Raw,
		)
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", doc.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit index rebuild: %w", err)
	}

	ix.logger.Debug("search index rebuilt", "docs", lib.Len())
	return nil
}

// Query runs a full-text query and returns ranked results.
func (ix *Index) Query(q string, limit int) ([]Result, error) {
	if ix.db == nil {
		return nil, fmt.Errorf("search index not opened")
	}
	if limit <= 0 {
		limit = 20
	}

	match := buildMatchExpr(q)
	if match == "" {
		return nil, nil
	}

	rows, err := ix.db.Query(
		`SELECT slug, section, title,
		        snippet(notes, 3, '<mark>', '</mark>', '…', 14)
		 FROM notes
		 WHERE notes MATCH ?
		 ORDER BY bm25(notes)
		 LIMIT ?`,
		match, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Slug, &r.Section, &r.Title, &r.Snippet); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// buildMatchExpr quotes each query term so user input can't inject
// FTS5 operators; terms are implicitly ANDed.
func buildMatchExpr(q string) string {
	fields := strings.Fields(q)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, `"`, "")
		if f == "" {
			continue
		}
		terms = append(terms, `"`+f+`"`)
	}
	return strings.Join(terms, " ")
}
