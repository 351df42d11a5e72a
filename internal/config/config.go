// Package config loads server settings from an optional YAML file with
// environment-variable overrides. A .env file in the working directory is
// honored for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Data loading
	DataDir   string
	WatchData bool

	// Records query
	DefaultPageSize int
	MaxPageSize     int

	// Upload limits
	MaxUploadBytes int64
}

// fileConfig mirrors Config for the optional YAML file. Every field is
// overridable by environment.
type fileConfig struct {
	Port            string `yaml:"port"`
	APIKey          string `yaml:"api_key"`
	DataDir         string `yaml:"data_dir"`
	WatchData       *bool  `yaml:"watch_data"`
	DefaultPageSize int    `yaml:"default_page_size"`
	MaxPageSize     int    `yaml:"max_page_size"`
	MaxUploadBytes  int64  `yaml:"max_upload_bytes"`
}

// Load builds the configuration: defaults, then the YAML file named by
// EXAMDASH_CONFIG (if set and readable), then environment variables.
func Load() Config {
	// Best-effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	cfg := Config{
		Port:            "8090",
		DataDir:         "./data",
		WatchData:       true,
		DefaultPageSize: 10,
		MaxPageSize:     200,
		MaxUploadBytes:  10485760, // 10MB
	}

	if path := os.Getenv("EXAMDASH_CONFIG"); path != "" {
		applyFile(&cfg, path)
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.APIKey = envOr("EXAMDASH_API_KEY", cfg.APIKey)
	cfg.DataDir = envOr("DATA_DIR", cfg.DataDir)
	cfg.WatchData = envBool("WATCH_DATA", cfg.WatchData)
	cfg.DefaultPageSize = envInt("DEFAULT_PAGE_SIZE", cfg.DefaultPageSize)
	cfg.MaxPageSize = envInt("MAX_PAGE_SIZE", cfg.MaxPageSize)
	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("EXAMDASH_API_KEY is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	return nil
}

func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.APIKey != "" {
		cfg.APIKey = fc.APIKey
	}
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.WatchData != nil {
		cfg.WatchData = *fc.WatchData
	}
	if fc.DefaultPageSize > 0 {
		cfg.DefaultPageSize = fc.DefaultPageSize
	}
	if fc.MaxPageSize > 0 {
		cfg.MaxPageSize = fc.MaxPageSize
	}
	if fc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = fc.MaxUploadBytes
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
