package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

// EnvPrefix is the prefix of environment overrides, e.g. LEARNPATH_LOG_FILE.
const EnvPrefix = "LEARNPATH_"

// Config holds all runtime settings.
type Config struct {
	LogFile       string `koanf:"log_file"`
	LogLevel      string `koanf:"log_level"`
	LogMaxSizeMB  int    `koanf:"log_max_size_mb"`
	LogMaxBackups int    `koanf:"log_max_backups"`

	// FixturesPath overrides the embedded fixture document when set.
	FixturesPath string `koanf:"fixtures_path"`

	// StartPath is the route the TUI opens on.
	StartPath string `koanf:"start_path"`

	DefaultWeeklyHours int    `koanf:"default_weekly_hours"`
	ShareBaseURL       string `koanf:"share_base_url"`
}

// DefaultConfig returns a Config with logging disabled and the embedded
// fixtures.
func DefaultConfig() Config {
	return Config{
		LogLevel:           "info",
		LogMaxSizeMB:       10,
		LogMaxBackups:      3,
		StartPath:          "/",
		DefaultWeeklyHours: domain.DefaultWeeklyHours,
		ShareBaseURL:       "https://learnpath.ai",
	}
}

func (c Config) defaults() map[string]any {
	return map[string]any{
		"log_file":             c.LogFile,
		"log_level":            c.LogLevel,
		"log_max_size_mb":      c.LogMaxSizeMB,
		"log_max_backups":      c.LogMaxBackups,
		"fixtures_path":        c.FixturesPath,
		"start_path":           c.StartPath,
		"default_weekly_hours": c.DefaultWeeklyHours,
		"share_base_url":       c.ShareBaseURL,
	}
}

// Load builds the configuration. path may be empty; a named file that does
// not exist is an error.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(DefaultConfig().defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Validate rejects settings that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.DefaultWeeklyHours < domain.MinWeeklyHours || c.DefaultWeeklyHours > domain.MaxWeeklyHours {
		errs = append(errs, fmt.Errorf("default_weekly_hours must be between %d and %d, got %d",
			domain.MinWeeklyHours, domain.MaxWeeklyHours, c.DefaultWeeklyHours))
	}
	if c.LogMaxSizeMB < 0 || c.LogMaxBackups < 0 {
		errs = append(errs, errors.New("log rotation limits must not be negative"))
	}
	if c.StartPath != "" && !strings.HasPrefix(c.StartPath, "/") {
		errs = append(errs, fmt.Errorf("start_path must begin with '/', got %q", c.StartPath))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
