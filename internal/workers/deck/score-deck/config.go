// internal/workers/deck/score-deck/config.go
package scoredeck

import (
	"time"

	"pitchdeck/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

// LoadConfig reads the worker's timeout from the workers section, falling
// back to 5s.
func LoadConfig(appCfg *config.Config) *Config {
	cfg := &Config{Timeout: 5 * time.Second}
	if appCfg == nil {
		return cfg
	}
	if wc := config.GetWorkerConfig(appCfg, TaskType); wc.Timeout > 0 {
		cfg.Timeout = config.GetDuration(wc.Timeout)
	}
	return cfg
}
