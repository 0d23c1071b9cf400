package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port           string
	Env            string
	JWTSecret      string
	BackendBaseURL string
	BackendTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	timeout := 15 * time.Second
	if raw := os.Getenv("BACKEND_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %v", err)
		}
		timeout = parsed
	}

	config := &Config{
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		BackendBaseURL: os.Getenv("BACKEND_BASE_URL"),
		BackendTimeout: timeout,
	}

	if config.Port == "" {
		config.Port = "8080"
	}

	return config, nil
}
