package repository

import (
	"context"
	"database/sql"
	"time"
)

const sqliteDDL = `CREATE TABLE IF NOT EXISTS deck_kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// SQLiteStore keeps slots in a local file, the single-founder default.
type SQLiteStore struct {
	sqlStore
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{sqlStore{
		db:       db,
		getQuery: `SELECT value FROM deck_kv WHERE key = ?`,
		setQuery: `INSERT INTO deck_kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		delQuery:  `DELETE FROM deck_kv WHERE key = ?`,
		ddl:       sqliteDDL,
		nowSource: time.Now,
	}}
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return s.migrate(ctx)
}
