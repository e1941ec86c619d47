package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	ServerBaseURL  string        `env:"RESCUEPOINT_SERVER_URL"`
	DatabasePath   string        `env:"RESCUEPOINT_DB_PATH"`
	RequestTimeout time.Duration `env:"RESCUEPOINT_REQUEST_TIMEOUT"`
	PositionFix    string        `env:"RESCUEPOINT_POSITION_FIX"`
	Debug          *bool         `env:"RESCUEPOINT_DEBUG"`
}

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the corresponding fields alone.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.PositionFix != "" {
		cfg.PositionFix = ec.PositionFix
	}
	if ec.Debug != nil {
		cfg.Debug = *ec.Debug
	}
}
