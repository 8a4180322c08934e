package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env if present; otherwise the process environment is used
// as-is.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️ No .env file found, using system environment")
	} else {
		log.Println("✅ .env loaded")
	}
}

// Get returns the env variable or a fallback.
func Get(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
