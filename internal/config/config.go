package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	ServerPort  string
	LogLevel    string
	LogFormat   string
	Env         string
}

// Load reads configuration from the environment, taking a .env file
// into account when one is present. Missing keys fall back to local
// development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL",
			"host=localhost user=postgres password=postgres dbname=fadebook port=5432 sslmode=disable"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "console"),
		Env:        getEnv("APP_ENV", "development"),
	}
}

func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
