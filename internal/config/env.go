package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFile loads environment variables from .env/.env.local files.
// It attempts each supported filename in order and stops at the first
// successfully parsed file. Existing process environment variables are not
// overwritten (godotenv.Load never overrides).
func loadEnvFile() error {
	envPaths := []string{".env", ".env.local"}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no .env file found")
}
