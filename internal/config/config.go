// Package config loads wellmind's runtime configuration from the environment.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"wellmind/internal/storage"
)

// StoreKind selects the persistence backend.
type StoreKind string

const (
	StoreFile   StoreKind = "file"
	StoreSQLite StoreKind = "sqlite"
	StoreMemory StoreKind = "memory"
)

// Config controls where state lives and how the companion ticks.
type Config struct {
	DataDir       string        `env:"WELLMIND_DATA_DIR"`
	Store         StoreKind     `env:"WELLMIND_STORE"          envDefault:"file"`
	DBFile        string        `env:"WELLMIND_DB_FILE"        envDefault:"wellmind.db"`
	LogFile       string        `env:"WELLMIND_LOG_FILE"       envDefault:"wellmind.log"`
	DecayInterval time.Duration `env:"WELLMIND_DECAY_INTERVAL" envDefault:"1m"`
	CompanionName string        `env:"WELLMIND_COMPANION_NAME"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment, fills derived defaults and validates.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DataDir == "" {
		dir, err := storage.DefaultDataDir()
		if err != nil {
			return Config{}, fmt.Errorf("data dir: %w", err)
		}
		cfg.DataDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unusable settings.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown store %q: want file, sqlite or memory", c.Store)
	}
	if c.DecayInterval <= 0 {
		return fmt.Errorf("decay interval must be positive, got %s", c.DecayInterval)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data dir is required")
	}
	return nil
}

// DBPath returns the SQLite database location.
func (c Config) DBPath() string {
	return c.resolve(c.DBFile)
}

// LogPath returns the log file location.
func (c Config) LogPath() string {
	return c.resolve(c.LogFile)
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
