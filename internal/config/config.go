package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads a .env file when present. Variables already set in the
// environment take precedence.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
		return
	}
	log.Println(".env file loaded")
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnvOrDefault returns a positive integer from the environment, falling
// back to defaultValue on absence or parse failure.
func GetIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("Invalid %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}

	return value
}

func Port() string {
	return GetEnvOrDefault("PORT", "8080")
}
