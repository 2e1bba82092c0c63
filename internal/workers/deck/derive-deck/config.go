// internal/workers/deck/derive-deck/config.go
package derivedeck

import (
	"time"

	"pitchdeck/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig(appCfg *config.Config) *Config {
	cfg := &Config{Timeout: 5 * time.Second}
	if appCfg != nil {
		if wc := config.GetWorkerConfig(appCfg, TaskType); wc.Timeout > 0 {
			cfg.Timeout = config.GetDuration(wc.Timeout)
		}
	}
	return cfg
}
