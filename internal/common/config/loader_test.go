package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
workers:
  score-deck:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "pitchdeck", cfg.Storage.KeyPrefix)
	assert.Equal(t, 10, cfg.Camunda.MaxJobsActive)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":9090", cfg.Metrics.Address)

	w := GetWorkerConfig(cfg, "score-deck")
	assert.True(t, w.Enabled)
	assert.Equal(t, 5, w.MaxJobsActive)
	assert.Equal(t, 3, w.MaxRetries)
}

func TestLoadFromFile_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_DECK_DB", "/tmp/decks.db")
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
storage:
  backend: SQLite
  sqlite:
    path: ${TEST_DECK_DB}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/decks.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, 5000, cfg.Storage.SQLite.BusyTimeout)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		storage     StorageConfig
		broker      string
		expectedErr string
	}{
		{name: "memory", storage: StorageConfig{Backend: BackendMemory}, broker: "zeebe:26500"},
		{name: "missing broker", storage: StorageConfig{Backend: BackendMemory}, expectedErr: "camunda.broker_address"},
		{name: "redis without address", storage: StorageConfig{Backend: BackendRedis}, broker: "zeebe:26500", expectedErr: "storage.redis.address"},
		{name: "postgres without host", storage: StorageConfig{Backend: BackendPostgres}, broker: "zeebe:26500", expectedErr: "storage.postgres.host"},
		{
			name:    "postgres complete",
			storage: StorageConfig{Backend: BackendPostgres, Postgres: PostgresConfig{Host: "db", Database: "decks", User: "app"}},
			broker:  "zeebe:26500",
		},
		{name: "sqlite without path", storage: StorageConfig{Backend: BackendSQLite}, broker: "zeebe:26500", expectedErr: "storage.sqlite.path"},
		{name: "unknown backend", storage: StorageConfig{Backend: "localstorage"}, broker: "zeebe:26500", expectedErr: "not one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Camunda: CamundaConfig{BrokerAddress: tt.broker}, Storage: tt.storage}
			err := validateConfig(cfg)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestIsWorkerEnabled(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{"delete-deck": {Enabled: false}}}
	assert.False(t, IsWorkerEnabled(cfg, "delete-deck"))
	assert.True(t, IsWorkerEnabled(cfg, "score-deck"))
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "app", Password: "pw", Database: "decks", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=decks sslmode=disable", p.GetDSN())
}
