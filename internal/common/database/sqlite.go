// internal/common/database/sqlite.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pitchdeck/internal/common/config"

	_ "modernc.org/sqlite"
)

// SQLiteClient wraps a file-backed SQLite handle.
type SQLiteClient struct {
	DB *sql.DB
}

// NewSQLite opens (creating if needed) the database file at cfg.Path and
// pings it.
func NewSQLite(cfg config.SQLiteConfig) (*SQLiteClient, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	cleanPath := filepath.Clean(cfg.Path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5000
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", cleanPath, busy)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer at a time; SQLite serialises writes anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &SQLiteClient{DB: db}, nil
}

func (c *SQLiteClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *SQLiteClient) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func (c *SQLiteClient) GetDB() *sql.DB {
	return c.DB
}
