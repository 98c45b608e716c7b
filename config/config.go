//go:build !solution

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"gitlab.com/slon/courseplanner/ingest"
)

const DefaultSource = "CS 300 ABCU_Advising_Program_Input.csv"

// Config is the planner configuration file.
type Config struct {
	Source    string `yaml:"source"`
	LogLevel  string `yaml:"log_level"`
	CacheSize int    `yaml:"cache_size"`
	SQLQuery  string `yaml:"sql_query,omitempty"`

	// MetricsFile, when set, receives the collected metrics in the text
	// exposition format on exit.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

func Default() Config {
	return Config{
		Source:    DefaultSource,
		LogLevel:  "warn",
		CacheSize: 16,
		SQLQuery:  ingest.DefaultQuery,
	}
}

// UnmarshalYAML fills keys missing from the document with defaults.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Config

	cfg := plain(Default())
	if err := unmarshal(&cfg); err != nil {
		return err
	}

	*c = Config(cfg)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("source must not be empty")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Load reads the YAML file at path. An empty path or an empty file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) == 0 {
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}
