package config

import (
	"encoding/json"
	"os"

	"github.com/avanags/fitpulse/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config afterwards.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	TokenDBPath   string `json:"token_db_path"`
	LogLevel      string `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. No flag, no JSON stage. Read or unmarshal errors
// panic; the intended order is defaults -> env -> parseJson -> parseFlags.
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
	if jc.TokenDBPath != "" {
		cfg.TokenDBPath = jc.TokenDBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
