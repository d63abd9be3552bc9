package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL   = "https://autograder.io/"
	DefaultTokenFile = ".agtoken"
	DefaultTimeout   = 30 * time.Second

	// EnvPath overrides the location of the config file.
	EnvPath = "AGIO_CONFIG"
)

// Group prompt modes.
const (
	GroupPromptSelect   = "select"
	GroupPromptUniqname = "uniqname"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	BaseURL     string        `yaml:"base_url,omitempty"`
	TokenFile   string        `yaml:"token_file,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	LogLevel    string        `yaml:"log_level,omitempty"`
	LogFormat   string        `yaml:"log_format,omitempty"`
	AccentColor string        `yaml:"accent_color,omitempty"`
	GroupPrompt string        `yaml:"group_prompt,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *AppConfig {
	return &AppConfig{
		BaseURL:     DefaultBaseURL,
		TokenFile:   DefaultTokenFile,
		Timeout:     DefaultTimeout,
		LogLevel:    "info",
		LogFormat:   "console",
		GroupPrompt: GroupPromptSelect,
	}
}

// Path returns $AGIO_CONFIG, or ~/.agio.yaml when it is unset.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".agio.yaml"), nil
}

// Load reads the configuration at path, or at Path() when path is empty.
// Missing settings, or a missing file, take their default values.
func Load(path string) (*AppConfig, error) {
	if path == "" {
		var err error
		if path, err = Path(); err != nil {
			return nil, err
		}
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, or to Path() when path is empty.
func Save(cfg *AppConfig, path string) error {
	if path == "" {
		var err error
		if path, err = Path(); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the enumerated settings.
func (c *AppConfig) Validate() error {
	if err := oneOf("log_level", c.LogLevel, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := oneOf("log_format", c.LogFormat, "console", "json"); err != nil {
		return err
	}
	if err := oneOf("group_prompt", c.GroupPrompt, GroupPromptSelect, GroupPromptUniqname); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

var setters = map[string]func(c *AppConfig, value string) error{
	"base_url":     func(c *AppConfig, v string) error { c.BaseURL = v; return nil },
	"token_file":   func(c *AppConfig, v string) error { c.TokenFile = v; return nil },
	"log_level":    func(c *AppConfig, v string) error { c.LogLevel = strings.ToLower(v); return nil },
	"log_format":   func(c *AppConfig, v string) error { c.LogFormat = strings.ToLower(v); return nil },
	"accent_color": func(c *AppConfig, v string) error { c.AccentColor = v; return nil },
	"group_prompt": func(c *AppConfig, v string) error { c.GroupPrompt = strings.ToLower(v); return nil },
	"timeout": func(c *AppConfig, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		c.Timeout = d
		return nil
	},
}

// Keys lists the settings accepted by Set.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns one setting by its YAML key and validates the result.
func (c *AppConfig) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	next := *c
	if err := set(&next, strings.TrimSpace(value)); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), value)
}
