package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a .env file
// first if one exists in the working directory. A missing .env is not an
// error; explicit environment variables win over the file either way.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.ServerBaseURL = getEnv("FITPULSE_SERVER_URL", cfg.ServerBaseURL)
	cfg.TokenDBPath = getEnv("FITPULSE_TOKEN_DB", cfg.TokenDBPath)
	cfg.LogLevel = getEnv("FITPULSE_LOG_LEVEL", cfg.LogLevel)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
