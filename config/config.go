package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yourusername/invoice-studio/store"
)

type Config struct {
	Port   string
	DBPath string
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:   os.Getenv("PORT"),
		DBPath: getEnvOrDefault("DB_PATH", "invoices.db"),
	}, nil
}

// InitStore opens the embedded invoice database at the configured path.
func InitStore(cfg *Config) (*store.Store, error) {
	s, err := store.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open invoice database: %w", err)
	}
	return s, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
