package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration file.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Session SessionConfig `toml:"session"`
	Limits  LimitsConfig  `toml:"limits"`
	Tracker TrackerConfig `toml:"tracker"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port           string   `toml:"port"`
	TrustedProxies []string `toml:"trusted_proxies"`
	StaticCacheAge string   `toml:"static_cache_age"` // e.g. "5m"
}

// DataConfig points at the static data files.
type DataConfig struct {
	LogPath        string `toml:"log_path"`        // daily results, JSON array
	DictionaryPath string `toml:"dictionary_path"` // {"words": [...]}
}

// SessionConfig contains view session settings.
type SessionConfig struct {
	Timeout      string `toml:"timeout"`        // idle time before a view session is dropped
	CookieMaxAge string `toml:"cookie_max_age"` // session cookie lifetime
}

// LimitsConfig contains per-client rate limits.
type LimitsConfig struct {
	RPS   int `toml:"rps"`
	Burst int `toml:"burst"`
}

// TrackerConfig contains defaults for the tracker page.
type TrackerConfig struct {
	LowestCount int    `toml:"lowest_count"`
	ChartTitle  string `toml:"chart_title"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			TrustedProxies: []string{"127.0.0.1"},
			StaticCacheAge: "5m",
		},
		Data: DataConfig{
			LogPath:        "data/wordle_log.json",
			DictionaryPath: "data/dictionary.json",
		},
		Session: SessionConfig{
			Timeout:      "2h",
			CookieMaxAge: "2h",
		},
		Limits: LimitsConfig{
			RPS:   5,
			Burst: 10,
		},
		Tracker: TrackerConfig{
			LowestCount: 5,
			ChartTitle:  "Wordle running average",
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseDurationOr parses s, falling back when it is empty or malformed.
func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logWarn("Invalid duration %q in config: %v, using default %v", s, err, fallback)
		return fallback
	}
	return d
}
