package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	MinScore    float64 `koanf:"min_score"`    // confidence floor for provider results (0.0-1.0, default: 0.5)
	PreferVideo bool    `koanf:"prefer_video"` // bias tie-break selection towards video results
	Lang        string  `koanf:"lang"`         // locale for intent/vocabulary resources (default: "en-us")
	LocaleDir   string  `koanf:"locale_dir"`   // root directory holding per-locale resources (default: "./locale")

	// Search fan-out settings
	Search SearchConfig `koanf:"search"`

	// GUI overrides display autodetection when set ("true"/"false"; empty = autodetect)
	GUI string `koanf:"gui"`

	// Providers answering search broadcasts
	Library LibraryConfig  `koanf:"library"`
	Remote  []RemoteConfig `koanf:"remote"`

	// Logging
	Log LogConfig `koanf:"log"`
}

// SearchConfig holds broadcast collection-window settings.
type SearchConfig struct {
	TimeoutSeconds float64 `koanf:"timeout_seconds"` // how long to collect provider responses (default: 5)
}

// LibraryConfig holds the local-library provider configuration.
type LibraryConfig struct {
	Enabled bool   `koanf:"enabled"`
	DBPath  string `koanf:"db_path"` // empty means the default XDG data path
}

// RemoteConfig holds one remote HTTP provider endpoint.
type RemoteConfig struct {
	Name   string `koanf:"name"`
	URL    string `koanf:"url"` // e.g., "http://localhost:8756"
	APIKey string `koanf:"apikey"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"`  // "debug", "info", "warn", "error" (default: "info")
	Format string `koanf:"format"` // "console" or "json" (default: "console")
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in paths
	cfg.LocaleDir = expandPath(cfg.LocaleDir)
	cfg.Library.DBPath = expandPath(cfg.Library.DBPath)

	// Normalize remote URLs (remove trailing slash)
	for i := range cfg.Remote {
		cfg.Remote[i].URL = strings.TrimSuffix(cfg.Remote[i].URL, "/")
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/ocp/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ocp", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Settings is the per-request configuration snapshot consumed by the
// resolution core. It is copied out of Config so concurrent requests never
// observe config mutation mid-flight.
type Settings struct {
	MinScore    float64
	PreferVideo bool
	Timeout     time.Duration
}

// GetSettings returns the request settings with defaults applied.
func (c *Config) GetSettings() Settings {
	s := Settings{
		MinScore:    c.MinScore,
		PreferVideo: c.PreferVideo,
		Timeout:     time.Duration(c.Search.TimeoutSeconds * float64(time.Second)),
	}

	// Apply defaults
	if s.MinScore <= 0 || s.MinScore > 1 {
		s.MinScore = 0.5
	}
	if s.Timeout <= 0 {
		s.Timeout = 5 * time.Second
	}

	return s
}

// GetLang returns the configured locale, defaulting to en-us.
func (c *Config) GetLang() string {
	if c.Lang == "" {
		return "en-us"
	}
	return strings.ToLower(c.Lang)
}

// GetLocaleDir returns the locale resource root, defaulting to ./locale.
func (c *Config) GetLocaleDir() string {
	if c.LocaleDir == "" {
		return "locale"
	}
	return c.LocaleDir
}

// GUIOverride reports whether display availability is forced by config.
// The second return is false when autodetection should be used.
func (c *Config) GUIOverride() (available, ok bool) {
	switch strings.ToLower(c.GUI) {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
