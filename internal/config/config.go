package config

import "os"

type Config struct {
	DatabasePath string
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded by the caller) > default.
// Query logging is controlled separately by DB_DEBUG, read by the store.
func Load() Config {
	return Config{
		DatabasePath: getEnv("PRAXIS_DB", "praxis.db"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
