package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the client needs to reach the backend and to keep
// its local state. All remote data lives behind the HTTP API; the state
// directory only ever contains the session database and the debug log.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StateDir       string
	LogLevel       string
}

// Load reads configuration from .env first, then config.yaml, with
// environment variables taking precedence. Missing files are fine; a missing
// base URL is not.
func Load() (*Config, error) {
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	if err := viper.ReadInConfig(); err != nil {
		viper.SetConfigFile("config.yaml")
		_ = viper.ReadInConfig()
	}

	baseURL := viper.GetString("API_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL not set in environment, .env or config.yaml")
	}

	stateDir := viper.GetString("STATE_DIR")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		stateDir = filepath.Join(home, ".pgctl")
	}
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, fmt.Errorf("state directory is not writable: %w", err)
	}

	return &Config{
		APIBaseURL:     baseURL,
		RequestTimeout: time.Duration(viper.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		StateDir:       stateDir,
		LogLevel:       viper.GetString("LOG_LEVEL"),
	}, nil
}
