// cmd/worker-manager/storage.go
package main

import (
	"context"
	"fmt"

	"pitchdeck/internal/common/config"
	"pitchdeck/internal/common/database"
	"pitchdeck/internal/deck/repository"
)

// backend is the opened deck store plus what the health endpoint and
// shutdown need from it.
type backend struct {
	store repository.Store
	ping  func(context.Context) error
	close func() error
}

func (b *backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

func openBackend(ctx context.Context, cfg config.StorageConfig) (*backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return &backend{
			store: repository.NewMemoryStore(),
			ping:  func(context.Context) error { return nil },
		}, nil

	case config.BackendRedis:
		client, err := database.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}
		return &backend{
			store: repository.NewRedisStore(client.GetClient()),
			ping:  client.Ping,
			close: client.Close,
		}, nil

	case config.BackendPostgres:
		client, err := database.NewPostgres(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		store := repository.NewPostgresStore(client.GetDB())
		if err := store.Migrate(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}
		return &backend{store: store, ping: client.Ping, close: client.Close}, nil

	case config.BackendSQLite:
		client, err := database.NewSQLite(cfg.SQLite)
		if err != nil {
			return nil, err
		}
		store := repository.NewSQLiteStore(client.GetDB())
		if err := store.Migrate(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}
		return &backend{store: store, ping: client.Ping, close: client.Close}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
