// Package storage persists the finance document. The whole document is one
// JSON blob held in a single-row SQLite table: load reads it back in full,
// save overwrites it in full. There is no incremental persistence, matching
// the document-in/document-out mutation model.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/joshsymonds/neon-finance/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS document (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	data       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// DocumentStore is the SQLite-backed document store.
type DocumentStore struct {
	db   *sql.DB
	path string
}

// NewDocumentStore opens (creating if needed) the document database at the
// given path.
func NewDocumentStore(path string) (*DocumentStore, error) {
	if path == "" {
		return nil, errors.New("database path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single-writer workload; more connections just contend.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DocumentStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *DocumentStore) Close() error {
	return s.db.Close()
}

// Load returns the persisted document. A missing row seeds the store with
// the default document; an unreadable blob falls back to the seed without
// overwriting what is on disk, so the corrupt payload survives until the
// next save.
func (s *DocumentStore) Load(ctx context.Context) (model.Document, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM document WHERE id = 1`).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		seed := Seed()
		if err := s.Save(ctx, seed); err != nil {
			return model.Document{}, fmt.Errorf("failed to persist seed document: %w", err)
		}
		slog.Info("No document found, seeded defaults", "path", s.path)
		return seed, nil
	case err != nil:
		return model.Document{}, fmt.Errorf("failed to load document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		slog.Warn("Stored document is unreadable, falling back to seed", "error", err)
		return Seed(), nil
	}
	return doc, nil
}

// Save durably replaces the entire persisted document.
func (s *DocumentStore) Save(ctx context.Context, doc model.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO document (id, data, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		string(data))
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
