// ABOUTME: Configuration for the quicknotes storage backend and logging.
// ABOUTME: Handles XDG paths, YAML config loading, and validation.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"

	// DefaultKey is the key the whole note collection is stored under.
	DefaultKey = "notes"
)

// Config holds quicknotes settings.
type Config struct {
	// Backend selects the key-value store (badger, sqlite, redis, memory).
	Backend string `yaml:"backend" validate:"required,oneof=badger sqlite redis memory"`

	// Path is the badger directory or sqlite file. Empty means the XDG default.
	Path string `yaml:"path,omitempty"`

	// RedisAddr is host:port of the redis server.
	RedisAddr string `yaml:"redis_addr,omitempty" validate:"required_if=Backend redis"`

	// RedisDB is the redis logical database number.
	RedisDB int `yaml:"redis_db,omitempty" validate:"gte=0,lte=15"`

	// Key is the storage key for the note collection.
	Key string `yaml:"key" validate:"required,max=256"`

	// LogLevel is the diagnostic log level.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Backend:   BackendBadger,
		RedisAddr: "localhost:6379",
		Key:       DefaultKey,
		LogLevel:  "warn",
	}
}

var validate = validator.New()

// Validate checks the config for unsupported values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: field %s fails %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DataPath returns the storage location for file-based backends.
func (c *Config) DataPath() string {
	if c.Path != "" {
		return c.Path
	}
	switch c.Backend {
	case BackendSQLite:
		return filepath.Join(DataDir(), "quicknotes.db")
	default:
		return filepath.Join(DataDir(), "badger")
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quicknotes")
}

// ConfigPath returns the path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns the data directory path.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "quicknotes")
}

// Load reads the config at path, or ConfigPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Config path is user-controlled by design of the CLI
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, or ConfigPath when path is empty.
func Save(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Exists reports whether a config file exists at path (or ConfigPath).
func Exists(path string) bool {
	if path == "" {
		path = ConfigPath()
	}
	_, err := os.Stat(path)
	return err == nil
}
