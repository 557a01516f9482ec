package infra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Vovarama1992/planbmusic/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresKV struct {
	pool *pgxpool.Pool
}

func NewPostgresKV(pool *pgxpool.Pool) *PostgresKV {
	return &PostgresKV{pool: pool}
}

func (s *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value::text FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return []byte(value), nil
}

func (s *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := s.pool.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

func (s *PostgresKV) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}

func (s *PostgresKV) GetByPrefix(ctx context.Context, prefix string) ([]ports.KVEntry, error) {
	query := `
		SELECT key, value::text
		FROM kv_store
		WHERE key LIKE $1 ESCAPE '\'
		ORDER BY key
	`
	rows, err := s.pool.Query(ctx, query, likePrefix(prefix))
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

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
