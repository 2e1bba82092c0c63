package repository

import (
	"context"
	"database/sql"
	"time"
)

const postgresDDL = `CREATE TABLE IF NOT EXISTS deck_kv (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresStore keeps slots in the deck_kv table. The caller owns db and
// must have loaded the lib/pq driver (see database.NewPostgres).
type PostgresStore struct {
	sqlStore
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{sqlStore{
		db:       db,
		getQuery: `SELECT value FROM deck_kv WHERE key = $1`,
		setQuery: `INSERT INTO deck_kv (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		delQuery:  `DELETE FROM deck_kv WHERE key = $1`,
		ddl:       postgresDDL,
		nowSource: time.Now,
	}}
}

// Migrate creates the deck_kv table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return s.migrate(ctx)
}
