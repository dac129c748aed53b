// Package config loads server configuration from the environment. A
// .env file in the working directory is picked up automatically.
package config

import (
	"os"
	"strings"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

// Config holds the server settings.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8000".
	Addr string
	// DataDir is the directory for the badger database. Empty means
	// the platform default data directory.
	DataDir string
	// CORSOrigins lists the allowed CORS origins.
	CORSOrigins []string
	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment, filling in defaults
// for anything unset.
func Load() *Config {
	return &Config{
		Addr:        getenv("CHESSMASTER_ADDR", ":8000"),
		DataDir:     os.Getenv("CHESSMASTER_DATA_DIR"),
		CORSOrigins: splitList(getenv("CHESSMASTER_CORS_ORIGINS", "*")),
		LogLevel:    getenv("CHESSMASTER_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
