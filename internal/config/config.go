// Package config loads server, database, CORS and logging settings from a YAML
// file, falling back to defaults, with environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig selects the SQLite driver and file
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// CORSConfig is the browser-origin allow-list
type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowCredentials bool     `yaml:"allow_credentials"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File is a log file path; empty means stderr
	File string `yaml:"file"`
}

// Environment variables that override file values
const (
	EnvConfigFile  = "TODOAPI_CONFIG"
	EnvAddr        = "TODOAPI_ADDR"
	EnvDBDriver    = "TODOAPI_DB_DRIVER"
	EnvDBPath      = "TODOAPI_DB_PATH"
	EnvCORSOrigins = "TODOAPI_CORS_ORIGINS"
	EnvLogLevel    = "TODOAPI_LOG_LEVEL"
	EnvLogFormat   = "TODOAPI_LOG_FORMAT"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   defaultDBPath(),
		},
		CORS: CORSConfig{
			AllowedOrigins:   []string{"http://localhost:19006"},
			AllowCredentials: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads config from $TODOAPI_CONFIG or the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvConfigFile)
	if configPath == "" {
		path, err := getConfigPath()
		if err != nil {
			cfg := Default()
			cfg.applyEnv()
			return cfg, cfg.Validate()
		}
		configPath = path
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path. A missing file yields defaults.
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", configPath, err)
	default:
		// unmarshalling over the defaults keeps unspecified values
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.New("server.shutdown_timeout must not be negative")
	}
	switch c.Database.Driver {
	case "sqlite", "sqlite3":
	default:
		return fmt.Errorf("database.driver %q is not supported (must be: sqlite, sqlite3)", c.Database.Driver)
	}
	if c.Database.Path == "" {
		return errors.New("database.path must not be empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not supported (must be: debug, info, warn, error)", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is not supported (must be: text, json)", c.Log.Format)
	}
	return nil
}

// ConfigPath returns the file Load reads when $TODOAPI_CONFIG is unset
func ConfigPath() (string, error) {
	return getConfigPath()
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvDBDriver); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		c.CORS.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todoapi", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todoapi", "config.yaml"), nil
}

// defaultDBPath is ~/.todoapi/todos.db, or ./todos.db without a home directory
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "todos.db"
	}
	return filepath.Join(home, ".todoapi", "todos.db")
}
