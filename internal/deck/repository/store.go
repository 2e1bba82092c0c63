package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by a Store when nothing is stored under a key.
var ErrKeyNotFound = errors.New("key not found")

// Store is the byte-level slot storage the repository persists into. Each
// Set replaces the whole value atomically.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
