// Package config loads gradecalc settings from an optional TOML file and
// GRADECALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all gradecalc configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls where generated workbooks go.
type OutputConfig struct {
	Dir    string `toml:"dir"`
	Open   bool   `toml:"open"`
	Preset string `toml:"preset"`
}

// LogConfig controls use-case logging.
type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	Format  string `toml:"format"`
}

// DefaultConfig returns a Config with sensible defaults. Logging is off.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Dir:    ".",
			Open:   false,
			Preset: "mat137",
		},
		Log: LogConfig{
			Enabled: false,
			Level:   "info",
			Format:  "text",
		},
	}
}

// Path returns the config file location: GRADECALC_CONFIG if set,
// otherwise ~/.gradecalc/config.toml.
func Path() string {
	if p := os.Getenv("GRADECALC_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".gradecalc", "config.toml")
	}
	return filepath.Join(home, ".gradecalc", "config.toml")
}

// Load reads configuration from Path(), falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GRADECALC_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("GRADECALC_OPEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Output.Open = b
		}
	}
	if v := os.Getenv("GRADECALC_PRESET"); v != "" {
		cfg.Output.Preset = v
	}
	if v := os.Getenv("GRADECALC_LOG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Enabled = b
		}
	}
	if v := os.Getenv("GRADECALC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GRADECALC_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level. Unknown names
// fall back to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// JSON reports whether logs should be written as JSON.
func (c LogConfig) JSON() bool {
	return strings.EqualFold(c.Format, "json")
}
