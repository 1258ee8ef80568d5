package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds process settings shared by the server and the CLIs.
type Config struct {
	Port           string `koanf:"port"`
	DatabaseURL    string `koanf:"database_url"`
	SeedPath       string `koanf:"seed_path"`
	LogLevel       string `koanf:"log_level"`
	AppEnv         string `koanf:"app_env"`
	MetricsEnabled bool   `koanf:"metrics_enabled"`
	// Defaults applied by the HTTP API when a request leaves the field out.
	DefaultMaxHours  int    `koanf:"default_max_hours"`
	DefaultStartTime string `koanf:"default_start_time"`
}

// Load reads an optional YAML file at path and then applies environment
// overrides (PORT, DATABASE_URL, LOG_LEVEL, ...). A .env file in the working
// directory is loaded into the environment first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	k.Set("metrics_enabled", true)

	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil, fmt.Errorf("load config: unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.SeedPath == "" {
		c.SeedPath = "data/seeds/seed.json"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultMaxHours == 0 {
		c.DefaultMaxHours = 8
	}
	if c.DefaultStartTime == "" {
		c.DefaultStartTime = "09:00"
	}
}

// Validate checks field ranges. DatabaseURL is checked by RequireDatabase
// since the snapshot CLI runs without one.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.DefaultMaxHours < 1 || c.DefaultMaxHours > 24 {
		return fmt.Errorf("default_max_hours must be between 1 and 24, got %d", c.DefaultMaxHours)
	}
	return nil
}

// RequireDatabase reports a missing DATABASE_URL.
func (c Config) RequireDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

// Get returns the environment variable key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
