package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadEnv loads a .env file when present. Missing files are fine: in
// production everything comes from real environment variables.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found")
	}
}

// GetEnv returns a required environment variable and aborts when it is unset.
func GetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Str("key", key).Msg("environment variable is not set")
	}
	return value
}

// GetEnvDefault returns the variable's value or fallback when unset.
func GetEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvIntDefault returns the variable parsed as int, or fallback when unset
// or unparsable.
func GetEnvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("not an integer, using default")
		return fallback
	}
	return n
}
