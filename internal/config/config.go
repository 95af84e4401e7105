// Package config loads the settings of the pageviews command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PAGEVIEWS"

// Config is the complete command configuration. Output file names are not
// configurable; only the directory they are written to is.
type Config struct {
	ConfigFile string  `yaml:"-" envconfig:"CONFIG_FILE"`
	Input      string  `yaml:"input" envconfig:"INPUT" default:"fcc-forum-pageviews.csv"`
	OutputDir  string  `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"."`
	Logging    Logging `yaml:"logging" envconfig:"LOGGING"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level" envconfig:"LEVEL" default:"info"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Load reads PAGEVIEWS_* environment variables and then, when
// PAGEVIEWS_CONFIG_FILE names a YAML file, overlays the keys it sets.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if cfg.ConfigFile != "" {
		if err := loadFromFile(cfg.ConfigFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.New("input path must not be empty")
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
