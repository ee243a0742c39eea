package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port           string
	SQLiteFilename string
}

// Load reads configuration from the environment, falling back to the
// defaults baked into the service.
func Load() Config {
	return Config{
		Port:           fallback(os.Getenv("PORT"), "3000"),
		SQLiteFilename: fallback(os.Getenv("SQLITE_FILENAME"), "./mydb.sqlite"),
	}
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
