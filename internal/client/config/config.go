// Package config assembles the runtime settings of the RescuePoint client.
// Sources are applied in order: defaults, JSON file, environment variables,
// command-line flags; later sources win.
package config

import "time"

// Config holds runtime settings for the RescuePoint CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - DatabasePath: sqlite file holding the persisted session store.
//   - RequestTimeout: per-request timeout applied to the HTTP transport.
//   - PositionFix: optional "lat,lng" pair used as the device position
//     source; empty means no source is available.
//   - Debug: switches the logger to development output.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
	PositionFix    string
	Debug          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "rescuepoint.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
