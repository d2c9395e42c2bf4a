package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration (the secret the auth provider signs access tokens with)
	JWTSecret string

	// LLM configuration
	LLMAPIKey string
	LLMAPIURL string
	LLMModel  string

	// Logging configuration
	LogLevel  string
	LogPretty bool
}

// Load creates a new Config instance with values from environment variables.
// Secrets additionally support a *_FILE variant pointing at a file (Docker
// secrets style).
func Load() (*Config, error) {
	cfg := &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBName:      getEnv("DB_NAME", "fridgechef"),
		DBSSLMode:   getEnv("DB_SSL_MODE", "disable"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisURL:  os.Getenv("REDIS_URL"),

		LLMAPIURL: getEnv("LLM_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		LLMModel:  getEnv("LLM_MODEL", "deepseek-chat"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnv("LOG_PRETTY", "false") == "true",
	}

	var err error
	if cfg.DBPassword, err = getSecret("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.RedisPassword, err = getSecret("REDIS_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.JWTSecret, err = getSecret("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.LLMAPIKey, err = getSecret("LLM_API_KEY"); err != nil {
		return nil, err
	}

	cfg.RedisDB = 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that required configuration is present.
func Validate(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	return nil
}

// DSN builds the database connection string. DATABASE_URL wins when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getSecret reads a secret from KEY, falling back to the file named by
// KEY_FILE.
func getSecret(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	if path := os.Getenv(key + "_FILE"); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file for %s: %w", key, err)
		}
		return strings.TrimSpace(string(content)), nil
	}
	return "", nil
}
