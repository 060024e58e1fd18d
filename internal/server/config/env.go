package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from the process environment. A .env file
// in the working directory is loaded first if present; real environment
// variables take precedence over it (godotenv does not overwrite).
//
// Recognized variables:
//
//	ADDRESS        HTTP bind address (e.g., ":3000")
//	DATABASE_DSN   PostgreSQL DSN
//	JWT_SECRET     token signing secret
//	TOKEN_VALIDITY token lifetime, Go duration syntax (e.g., "24h")
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
}
