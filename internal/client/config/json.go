package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fahadsheikh/rescuepoint/internal/flagx"
	"github.com/fahadsheikh/rescuepoint/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	PositionFix    string         `json:"position_fix"`
	Debug          *bool          `json:"debug"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. With no flag it does nothing. Read or unmarshal errors
// panic; startup configuration has no sane fallback.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.PositionFix != "" {
		cfg.PositionFix = jc.PositionFix
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
