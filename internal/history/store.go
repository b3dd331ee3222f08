// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a ledger of generation runs in a local SQLite
// database, one row per successfully written deck.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/deckgen/pkg/types"
)

const dbFile = "deckgen.db"

// Store manages the run ledger database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the ledger database at dir/deckgen.db,
// creating the schema if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		slides_root TEXT NOT NULL,
		output_path TEXT NOT NULL,
		slides INTEGER NOT NULL,
		tables_rendered INTEGER NOT NULL,
		images_placed INTEGER NOT NULL,
		output_sha256 TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one run into the ledger and returns its row ID.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, slides_root, output_path, slides, tables_rendered, images_placed, output_sha256)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.SlidesRoot, rec.OutputPath, rec.Slides, rec.Tables, rec.Images, rec.OutputSHA,
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent runs, newest first, capped at limit.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, slides_root, output_path, slides, tables_rendered, images_placed, output_sha256
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var rec types.RunRecord
		var started string
		if err := rows.Scan(&rec.ID, &started, &rec.SlidesRoot, &rec.OutputPath,
			&rec.Slides, &rec.Tables, &rec.Images, &rec.OutputSHA); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		records = append(records, rec)
	}
	return records, rows.Err()
}
