package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries the process configuration, loaded once at startup.
type Config struct {
	Port     string
	Env      string
	DBPath   string
	LogLevel string
}

// Load reads configuration from the environment, with a .env file as
// fallback. The database defaults to gift_registry.db under the
// per-user config directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     GetEnv("PORT", "3000"),
		Env:      GetEnv("ENV", "development"),
		DBPath:   GetEnv("DB_PATH", defaultDBPath()),
		LogLevel: GetEnv("LOG_LEVEL", "info"),
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("data", "gift_registry.db")
	}
	return filepath.Join(dir, "gift-registry", "gift_registry.db")
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
