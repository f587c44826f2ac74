package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteStore persists key-value entries to a local SQLite database so state
// survives process restarts.
type SqliteStore struct {
	// read handle, sized for concurrent readers
	readDB *sqlx.DB
	// sqlite needs a single writer
	writeDB *sqlx.DB
}

// OpenSqlite opens (and if necessary creates) the database at path and
// ensures the schema exists.
func OpenSqlite(path string) (*SqliteStore, error) {
	if path == "" {
		return nil, errors.New("storage: database path not set")
	}

	readDB, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open read handle: %w", err)
	}
	readDB.SetMaxOpenConns(max(4, runtime.NumCPU()))

	writeDB, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		readDB.Close()
		return nil, fmt.Errorf("open write handle: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS state (
key TEXT NOT NULL PRIMARY KEY,
value BLOB NOT NULL,
updated DATETIME NOT NULL)`
	if _, err := writeDB.Exec(schema); err != nil {
		readDB.Close()
		writeDB.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SqliteStore{readDB: readDB, writeDB: writeDB}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM state WHERE key=? LIMIT 1`

	var value []byte
	if err := s.readDB.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select state %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous entry.
func (s *SqliteStore) Put(ctx context.Context, key string, value []byte) error {
	const query = `REPLACE INTO state (key, value, updated) VALUES (?, ?, ?)`

	if _, err := s.writeDB.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert state %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry under key. Deleting an absent key is not an error.
func (s *SqliteStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM state WHERE key=?`

	if _, err := s.writeDB.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// Close releases both database handles.
func (s *SqliteStore) Close() error {
	rerr := s.readDB.Close()
	werr := s.writeDB.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}
