// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig               `mapstructure:"app"`
	Camunda  CamundaConfig           `mapstructure:"camunda"`
	Storage  StorageConfig           `mapstructure:"storage"`
	Registry RegistryConfig          `mapstructure:"registry"`
	Workers  map[string]WorkerConfig `mapstructure:"workers"`
	Logging  LoggingConfig           `mapstructure:"logging"`
	Metrics  MetricsConfig           `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// StorageConfig picks the deck repository backend. Only the chosen backend's
// section needs to be filled in.
type StorageConfig struct {
	Backend   string         `mapstructure:"backend"`
	KeyPrefix string         `mapstructure:"key_prefix"`
	Redis     RedisConfig    `mapstructure:"redis"`
	Postgres  PostgresConfig `mapstructure:"postgres"`
	SQLite    SQLiteConfig   `mapstructure:"sqlite"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SQLiteConfig struct {
	Path        string `mapstructure:"path"`
	BusyTimeout int    `mapstructure:"busy_timeout"` // milliseconds
}

// RegistryConfig points at an optional activity registry file. Empty means
// the built-in catalog.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig controls the health/metrics HTTP listener.
type MetricsConfig struct {
	Address string `mapstructure:"address"`
}
