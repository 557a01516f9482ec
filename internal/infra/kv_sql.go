package infra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/Vovarama1992/planbmusic/internal/ports"
	_ "modernc.org/sqlite"
)

// SQLKV keeps the key-value table in an embedded SQLite database.
type SQLKV struct {
	db *sql.DB
}

// OpenSQLiteKV opens (or creates) the database at path. ":memory:" is
// pinned to a single connection so every query sees the same database.
func OpenSQLiteKV(ctx context.Context, path string) (*SQLKV, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	kv := NewSQLKV(db)
	if err := kv.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return kv, nil
}

func NewSQLKV(db *sql.DB) *SQLKV {
	return &SQLKV{db: db}
}

func (s *SQLKV) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv_store (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

func (s *SQLKV) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return []byte(value), nil
}

func (s *SQLKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

func (s *SQLKV) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}

func (s *SQLKV) GetByPrefix(ctx context.Context, prefix string) ([]ports.KVEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM kv_store WHERE substr(key, 1, ?) = ? ORDER BY key`,
		utf8.RuneCountInString(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("kv scan: %w", err)
	}
	defer rows.Close()

	var out []ports.KVEntry
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("kv scan row: %w", err)
		}
		out = append(out, ports.KVEntry{Key: key, Value: []byte(value)})
	}
	return out, rows.Err()
}
