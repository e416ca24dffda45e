package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Items table. Ids collate NOCASE so that the primary key and
		// every lookup share one case-insensitive identity policy.
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT COLLATE NOCASE PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL DEFAULT 1,
			priority TEXT NOT NULL DEFAULT 'low'
				CHECK (priority IN ('low', 'medium', 'high', 'highest')),
			url TEXT DEFAULT NULL
		)`,

		// Notes table. AUTOINCREMENT keeps ids monotonic and never
		// reused, so note creation order is the id order.
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			content TEXT NOT NULL DEFAULT ''
		)`,

		// Item-note junction table. Cascades are handled by the
		// repository, not by foreign key clauses.
		`CREATE TABLE IF NOT EXISTS item_notes (
			item_id TEXT COLLATE NOCASE NOT NULL,
			note_id INTEGER NOT NULL,
			PRIMARY KEY (item_id, note_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_item_notes_note ON item_notes(note_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
