package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	// HTTP
	Port           string
	AllowedOrigins []string

	// Feed broker
	BrokerURL            string
	Topic                string
	ConnectRetryInterval time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first when
// present, for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "10000"),
		AllowedOrigins: []string{getEnv("ALLOWED_ORIGIN", "*")},

		BrokerURL:            getEnv("FEED_BROKER_URL", "tcp://localhost:1883"),
		Topic:                getEnv("FEED_TOPIC", "darwin/pport/json"),
		ConnectRetryInterval: time.Duration(getEnvInt("FEED_RETRY_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
