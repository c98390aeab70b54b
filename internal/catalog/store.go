// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog indexes the error records of a Scheme in a SQLite
// database so they can be searched after a run.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/swerr/pkg/types"
)

// DefaultFileName is the database file the sqlite converter writes.
const DefaultFileName = "swerr.db"

const defaultMaxResults = 20

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	path       string
	maxResults int
}

// Open opens or creates the catalog at path and ensures its schema exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path, maxResults: defaultMaxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// OpenExisting opens a catalog that must already exist on disk.
func OpenExisting(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return Open(path)
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS project (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT,
			description TEXT,
			version TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			source_file TEXT,
			source_line INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS error_tags (
			error_id INTEGER NOT NULL REFERENCES errors(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			raw TEXT NOT NULL,
			PRIMARY KEY (error_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_errors_name ON errors(name)`,
		`CREATE INDEX IF NOT EXISTS idx_error_tags_name ON error_tags(name)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one catalog ingest.
type IngestSummary struct {
	Errors int
	Tags   int
}

// Ingest replaces the catalog contents with scheme in one transaction.
// Ingesting the same scheme twice leaves the same catalog.
func (s *Store) Ingest(ctx context.Context, scheme *types.Scheme) (IngestSummary, error) {
	var summary IngestSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM error_tags`, `DELETE FROM errors`, `DELETE FROM project`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return summary, fmt.Errorf("clearing catalog: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO project (id, name, description, version) VALUES (1, ?, ?, ?)`,
		scheme.Name, scheme.Description, scheme.Version,
	); err != nil {
		return summary, fmt.Errorf("inserting project: %w", err)
	}

	errStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO errors (position, name, description, source_file, source_line)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return summary, fmt.Errorf("preparing error insert: %w", err)
	}
	defer errStmt.Close()

	tagStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO error_tags (error_id, position, name, raw) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return summary, fmt.Errorf("preparing tag insert: %w", err)
	}
	defer tagStmt.Close()

	for i, rec := range scheme.Errors {
		res, err := errStmt.ExecContext(ctx, i, rec.Name, rec.Description, rec.SourceFile, rec.SourceLine)
		if err != nil {
			return summary, fmt.Errorf("inserting error %s: %w", rec.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return summary, fmt.Errorf("reading id of error %s: %w", rec.Name, err)
		}
		summary.Errors++

		for j, tag := range rec.Tags {
			if _, err := tagStmt.ExecContext(ctx, id, j, tag.Name, tag.Raw); err != nil {
				return summary, fmt.Errorf("inserting tag %s of %s: %w", tag.Name, rec.Name, err)
			}
			summary.Tags++
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing catalog: %w", err)
	}
	return summary, nil
}
