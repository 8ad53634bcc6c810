package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", cfg.ServerBaseURL)
	assert.Equal(t, "fitpulse.db", cfg.TokenDBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("FITPULSE_SERVER_URL", "http://api.example.com")
	t.Setenv("FITPULSE_LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://api.example.com", cfg.ServerBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "fitpulse.db", cfg.TokenDBPath)
}

func TestEmptyEnvValueKeepsDefault(t *testing.T) {
	t.Setenv("FITPULSE_SERVER_URL", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:5000", cfg.ServerBaseURL)
}
