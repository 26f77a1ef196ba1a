package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the config file location
const EnvConfigPath = "QD_CONFIG"

type Config struct {
	Review ReviewConfig `toml:"review"`
	Git    GitConfig    `toml:"git"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

type ReviewConfig struct {
	// Commits is the default -n
	Commits int `toml:"commits"`
	// LogCommits is the default -n when -l is given
	LogCommits int `toml:"log_commits"`
	// MaxDiffLines truncates per-file diffs in interactive mode
	MaxDiffLines int    `toml:"max_diff_lines"`
	QuitKey      string `toml:"quit_key"`
}

type GitConfig struct {
	Binary string `toml:"binary"`
}

type UIConfig struct {
	// Color is one of auto, always, never
	Color string `toml:"color"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Review: ReviewConfig{
			Commits:      1,
			LogCommits:   10,
			MaxDiffLines: 200,
			QuitKey:      "q",
		},
		Git: GitConfig{
			Binary: "git",
		},
		UI: UIConfig{
			Color: "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Path returns the config file location: $QD_CONFIG if set, else qd.toml
// in the user config directory
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return expandTilde(p), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "qd.toml"), nil
}

// Load reads the config from the default path
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		cfg := DefaultConfig()
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults;
// nothing is written back.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(expandTilde(path))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the rest of qd cannot work with
func (c *Config) Validate() error {
	var errs []error
	if c.Review.Commits < 1 {
		errs = append(errs, fmt.Errorf("review.commits must be at least 1, got %d", c.Review.Commits))
	}
	if c.Review.LogCommits < 1 {
		errs = append(errs, fmt.Errorf("review.log_commits must be at least 1, got %d", c.Review.LogCommits))
	}
	if c.Review.MaxDiffLines < 0 {
		errs = append(errs, fmt.Errorf("review.max_diff_lines must not be negative, got %d", c.Review.MaxDiffLines))
	}
	if strings.TrimSpace(c.Review.QuitKey) == "" {
		errs = append(errs, errors.New("review.quit_key must not be empty"))
	}
	switch c.UI.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("ui.color must be auto, always or never, got %q", c.UI.Color))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// QuitToken is the normalized quit key compared against prompt input
func (c *Config) QuitToken() string {
	return strings.ToLower(strings.TrimSpace(c.Review.QuitKey))
}

// LogLevel returns the slog level for Log.Level
func (c *Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", s)
	}
}

// Encode renders the config as TOML
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// SaveTo writes the config to path, creating parent directories
func (c *Config) SaveTo(path string) error {
	path = expandTilde(path)

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := c.Encode()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
