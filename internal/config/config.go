// Package config loads process configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values.
type Config struct {
	// PubChem retrieval
	PubChemURL  string
	HTTPTimeout time.Duration

	// Batch computation
	Workers int

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables, after merging a
// .env file from the working directory when present (existing variables
// win over the file).
func Load() Config {
	_ = godotenv.Load()

	return Config{
		PubChemURL:  getEnv("TOPOCHEM_PUBCHEM_URL", "https://pubchem.ncbi.nlm.nih.gov/rest/pug"),
		HTTPTimeout: getDuration("TOPOCHEM_HTTP_TIMEOUT", 5*time.Second),
		Workers:     getInt("TOPOCHEM_WORKERS", 1),
		LogFile:     getEnv("TOPOCHEM_LOG_FILE", "/tmp/topochem.log"),
		LogLevel:    parseLogLevel(getEnv("TOPOCHEM_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}

	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}

	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
