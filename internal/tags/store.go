// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd006-caching R3 (persistent tag cache).
package tags

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/petar-djukic/repomap/pkg/types"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS tags (
	path    TEXT PRIMARY KEY,
	size    INTEGER NOT NULL,
	mtime   INTEGER NOT NULL,
	data    BLOB NOT NULL
);
`

// SQLiteStore persists extracted tags across sessions in a single-file
// SQLite database, keyed on (path, signature). Every method degrades to
// a no-op on database errors so a corrupt or unwritable cache file never
// breaks map construction.
type SQLiteStore struct {
	db *sql.DB
}

// OpenStore opens or creates the tag database at dbPath.
func OpenStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open tag store: %w", err)
	}

	// WAL keeps concurrent readers cheap.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tag store schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the stored tags for path if the signature matches.
func (s *SQLiteStore) Get(path string, sig types.FileSignature) ([]types.Tag, bool) {
	var (
		size, mtime int64
		data        []byte
	)
	err := s.db.QueryRow(
		"SELECT size, mtime, data FROM tags WHERE path = ?", path,
	).Scan(&size, &mtime, &data)
	if err != nil {
		return nil, false
	}
	if size != sig.Size || mtime != sig.ModTime {
		return nil, false
	}

	var tags []types.Tag
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, false
	}
	return tags, true
}

// Put stores tags for path, replacing any previous row.
func (s *SQLiteStore) Put(path string, sig types.FileSignature, tags []types.Tag) {
	data, err := json.Marshal(tags)
	if err != nil {
		return
	}
	s.db.Exec(
		"INSERT OR REPLACE INTO tags (path, size, mtime, data) VALUES (?, ?, ?, ?)",
		path, sig.Size, sig.ModTime, data,
	)
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
