// Package config loads CLI configuration from env and an optional .env file
// using Viper.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds raceadmin CLI configuration loaded from the environment.
type Config struct {
	// BaseURL is the admin backend origin (e.g. https://api.example.com/api/v1).
	BaseURL string `mapstructure:"RACEADMIN_BASE_URL"`
	// CredentialsURL is where the durable credential snapshot lives.
	CredentialsURL string `mapstructure:"RACEADMIN_CREDENTIALS"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `mapstructure:"RACEADMIN_LOG_LEVEL"`
}

// Load reads .env (if present), then builds and validates Config from the
// environment. Missing .env is ignored; env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	home, _ := os.UserHomeDir()
	v.SetDefault("RACEADMIN_BASE_URL", "")
	v.SetDefault("RACEADMIN_CREDENTIALS", filepath.Join(home, ".raceadmin", "credentials.json"))
	v.SetDefault("RACEADMIN_LOG_LEVEL", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("config: RACEADMIN_BASE_URL must be set")
	}
	return &cfg, nil
}
