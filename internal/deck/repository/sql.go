package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// sqlStore is the deck_kv table shared by the Postgres and SQLite backends.
// Only the placeholder style and DDL differ between them.
type sqlStore struct {
	db        *sql.DB
	getQuery  string
	setQuery  string
	delQuery  string
	ddl       string
	nowSource func() time.Time
}

func (s *sqlStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.ddl); err != nil {
		return fmt.Errorf("create deck_kv: %w", err)
	}
	return nil
}

func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var value []byte
	err := s.db.QueryRowContext(ctx, s.getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.setQuery, key, value, s.nowSource().UTC()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *sqlStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.delQuery, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
