package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultBaseURL = "http://localhost:5678"

// Config holds the n8n connection settings. It is built once in main and
// passed down explicitly; nothing reads it from ambient globals.
type Config struct {
	BaseURL string
	APIKey  string
	Debug   bool
}

// InitConfig loads .env (when present) and reads the n8n settings from
// the environment. A missing N8N_API_KEY is a hard error: the caller is
// expected to exit before the MCP transport is established.
func InitConfig(logger *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No .env file found; falling back to system environment variables")
		} else {
			logger.Error("Config file load error", zap.Error(err))
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		logger.Debug("Successfully loaded .env file")
	}

	baseURL := os.Getenv("N8N_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
		logger.Warn("N8N_API_URL not set; using default", zap.String("base_url", defaultBaseURL))
	}
	baseURL = strings.TrimRight(baseURL, "/")

	apiKey := os.Getenv("N8N_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("N8N_API_KEY environment variable is required")
	}
	logger.Debug("Loaded n8n credentials", zap.String("api_key", maskKey(apiKey)))

	return &Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Debug:   isTruthy(os.Getenv("N8N_MCP_DEBUG")),
	}, nil
}

func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
