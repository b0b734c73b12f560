package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultServerPort    = "8000"
	DefaultOpenAIAPIURL  = "https://api.openai.com/v1/chat/completions"
	DefaultOpenAITimeout = 60 * time.Second
	DefaultLogLevel      = "info"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	Environment Environment

	// Upstream chat-completion API
	OpenAIAPIKey  string
	OpenAIAPIURL  string
	OpenAITimeout time.Duration

	LogLevel string
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance with values from environment variables or secrets.
// A .env file in the working directory is loaded first when present; variables already set
// in the process environment win.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", DefaultServerPort),
		ServerHost:  os.Getenv("SERVER_HOST"),
		Environment: GetEnvironment(),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
	}

	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.OpenAIAPIKey = apiKey
	cfg.OpenAIAPIURL = getEnv("OPENAI_API_URL", DefaultOpenAIAPIURL)

	cfg.OpenAITimeout = DefaultOpenAITimeout
	if raw := os.Getenv("OPENAI_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid OPENAI_TIMEOUT %q: %w", raw, err)
		}
		cfg.OpenAITimeout = d
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadAPIKey resolves the API credential from, in order, OPENAI_API_KEY,
// the file named by OPENAI_API_KEY_FILE, and the openai_api_key Docker secret.
func loadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		return key, nil
	}

	if keyFile := os.Getenv("OPENAI_API_KEY_FILE"); keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("API key file is empty")
		}
		return key, nil
	}

	return readSecret("openai_api_key"), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
