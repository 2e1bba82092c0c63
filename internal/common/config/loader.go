// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	// STORAGE_BACKEND overrides storage.backend, and so on.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return finish(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// loadEnvFile tries .env in the working directory, its parents, and the
// module root.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	pg := &cfg.Storage.Postgres
	if pg.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			pg.User = val
		}
	}
	if pg.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			pg.Password = val
		}
	}
	if cfg.Storage.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Storage.Redis.Password = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "pitchdeck-workers"
	}

	// Camunda defaults
	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Camunda.Timeout == 0 {
		cfg.Camunda.Timeout = 30000
	}
	if cfg.Camunda.RequestTimeout == 0 {
		cfg.Camunda.RequestTimeout = 30000
	}

	// Storage defaults
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendMemory
	}
	cfg.Storage.Backend = strings.ToLower(cfg.Storage.Backend)
	if cfg.Storage.KeyPrefix == "" {
		cfg.Storage.KeyPrefix = "pitchdeck"
	}
	if cfg.Storage.Postgres.Port == 0 {
		cfg.Storage.Postgres.Port = 5432
	}
	if cfg.Storage.Postgres.MaxConnections == 0 {
		cfg.Storage.Postgres.MaxConnections = 10
	}
	if cfg.Storage.Postgres.MaxIdle == 0 {
		cfg.Storage.Postgres.MaxIdle = 2
	}
	if cfg.Storage.Postgres.SSLMode == "" {
		cfg.Storage.Postgres.SSLMode = "disable"
	}
	if cfg.Storage.SQLite.BusyTimeout == 0 {
		cfg.Storage.SQLite.BusyTimeout = 5000
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9090"
	}

	for key, worker := range cfg.Workers {
		if worker.MaxJobsActive == 0 {
			worker.MaxJobsActive = 5
		}
		if worker.Timeout == 0 {
			worker.Timeout = 30000
		}
		if worker.MaxRetries == 0 {
			worker.MaxRetries = 3
		}
		cfg.Workers[key] = worker
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda.broker_address is required")
	}

	s := cfg.Storage
	switch s.Backend {
	case BackendMemory:
	case BackendRedis:
		if s.Redis.Address == "" {
			return fmt.Errorf("storage.redis.address is required")
		}
	case BackendPostgres:
		if s.Postgres.Host == "" {
			return fmt.Errorf("storage.postgres.host is required")
		}
		if s.Postgres.Database == "" {
			return fmt.Errorf("storage.postgres.database is required")
		}
		if s.Postgres.User == "" {
			return fmt.Errorf("storage.postgres.user is required")
		}
	case BackendSQLite:
		if s.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path is required")
		}
	default:
		return fmt.Errorf("storage.backend %q is not one of memory, redis, postgres, sqlite", s.Backend)
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetWorkerConfig retrieves worker-specific configuration with fallback to defaults
func GetWorkerConfig(cfg *Config, workerName string) WorkerConfig {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker
	}

	return WorkerConfig{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30000,
		MaxRetries:    3,
	}
}

// IsWorkerEnabled checks if a specific worker is enabled
func IsWorkerEnabled(cfg *Config, workerName string) bool {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker.Enabled
	}
	return true
}
