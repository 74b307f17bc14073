package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lazypower/octavia/internal/store"

	// Embedded zone database so Asia/Shanghai resolves on bare CI runners.
	_ "time/tzdata"
)

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = "octavia.yaml"

// Config holds all octavia configuration.
type Config struct {
	State    StateConfig    `yaml:"state"`
	History  HistoryConfig  `yaml:"history"`
	Readme   ReadmeConfig   `yaml:"readme"`
	Response ResponseConfig `yaml:"response"`
	Log      LogConfig      `yaml:"log"`
}

type StateConfig struct {
	Path     string `yaml:"path"`
	Timezone string `yaml:"timezone"` // IANA name used for last_updated
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type ReadmeConfig struct {
	Path      string `yaml:"path"`
	IssueBase string `yaml:"issue_base"` // new-issue URL; {title} is replaced
}

type ResponseConfig struct {
	Path string `yaml:"path"` // overridden by GITHUB_STEP_SUMMARY
}

type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
	File  string `yaml:"file"`  // optional extra sink
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		State: StateConfig{
			Path:     store.DefaultStatePath(),
			Timezone: "Asia/Shanghai",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    store.DefaultHistoryPath(),
		},
		Readme: ReadmeConfig{
			Path:      "README.md",
			IssueBase: "https://github.com/suwe12/Octocat-Simulator/issues/new?title={title}&body=You%20don't%20need%20to%20do%20anything,%20just%20click%20'create'",
		},
		Response: ResponseConfig{
			Path: "/tmp/response.md",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OCTAVIA_STATE"); v != "" {
		c.State.Path = v
	}
	if v := os.Getenv("OCTAVIA_TZ"); v != "" {
		c.State.Timezone = v
	}
	if v := os.Getenv("OCTAVIA_HISTORY"); v != "" {
		c.History.Path = v
	}
	if v := os.Getenv("OCTAVIA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("GITHUB_STEP_SUMMARY"); v != "" {
		c.Response.Path = v
	}
}

func (c *Config) normalize() {
	c.State.Path = strings.TrimSpace(c.State.Path)
	c.State.Timezone = strings.TrimSpace(c.State.Timezone)
	c.History.Path = strings.TrimSpace(c.History.Path)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	if c.State.Path == "" {
		return errors.New("state.path is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path is required when history is enabled")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	return nil
}

// Location resolves the state timezone. An empty name means UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.State.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.State.Timezone)
	if err != nil {
		return nil, fmt.Errorf("state.timezone %q: %w", c.State.Timezone, err)
	}
	return loc, nil
}
