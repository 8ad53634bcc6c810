// Package config loads client settings in layers: built-in defaults, then
// environment (including a .env file), then an optional JSON file, then
// command-line flags. Later layers win.
package config

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the backend REST API.
//   - TokenDBPath: path of the local sqlite database holding the session token.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	ServerBaseURL string
	TokenDBPath   string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"
	c.TokenDBPath = "fitpulse.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
