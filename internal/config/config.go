// Package config loads the todo service configuration.
//
// Values are resolved once at process start, lowest precedence first:
//
//  1. Built-in defaults (see Default)
//  2. An optional YAML or TOML file named by TODO_CONFIG
//  3. Environment variables, including those loaded from a .env file
//
// Environment:
//   - HOST: Listen host (default: "127.0.0.1")
//   - PORT: Listen port (default: 8080)
//   - LOG_LEVEL: debug, info, warn, error (default: "info")
//   - LOG_FORMAT: text, json, logfmt (default: "text")
//   - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: "5s")
//   - TODO_CONFIG: Path to a .yaml, .yml or .toml config file (optional)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dreamware/todo/internal/logging"
)

// Environment variable names
const (
	EnvHost            = "HOST"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvConfigFile      = "TODO_CONFIG"
)

// Config holds the process configuration
type Config struct {
	Host            string        `yaml:"host" toml:"host"`
	Port            int           `yaml:"port" toml:"port"`
	LogLevel        string        `yaml:"log_level" toml:"log_level"`
	LogFormat       string        `yaml:"log_format" toml:"log_format"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            8080,
		LogLevel:        "info",
		LogFormat:       "text",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load resolves the configuration from defaults, the optional config file,
// a .env file in the working directory and the process environment.
func Load() (Config, error) {
	return load(".env", os.LookupEnv)
}

func load(dotenv string, lookup func(string) (string, bool)) (Config, error) {
	// godotenv never overrides variables that are already set
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
	}

	cfg := Default()
	if path := getenv(lookup, EnvConfigFile, ""); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the values found in a YAML or TOML file onto cfg.
// The format is chosen by file extension; keys absent from the file keep
// their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parse toml config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	return nil
}

// ApplyEnv overlays environment values onto cfg.
// Empty variables are treated as unset.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	cfg.Host = getenv(lookup, EnvHost, cfg.Host)
	cfg.LogLevel = getenv(lookup, EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getenv(lookup, EnvLogFormat, cfg.LogFormat)

	if v := getenv(lookup, EnvPort, ""); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Port = port
	}
	if v := getenv(lookup, EnvShutdownTimeout, ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvShutdownTimeout, v, err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormatter(c.LogFormat); err != nil {
		return err
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Addr returns the listen address in host:port form
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func getenv(lookup func(string) (string, bool), k, def string) string {
	if v, ok := lookup(k); ok && v != "" {
		return v
	}
	return def
}
