package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const envConfigPath = "ELFINFO_CONFIG"

// Config represents the elfinfo configuration file (~/.config/elfinfo/config.yaml).
// Pointer fields distinguish "not set" from zero values.
type Config struct {
	// Output
	Format    string `yaml:"format"`
	Color     string `yaml:"color"`
	NoMmap    *bool  `yaml:"no_mmap"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string `yaml:"server_address"`
	MaxBodyBytes  *int64 `yaml:"max_body_bytes"`
	MaxResults    *int64 `yaml:"max_results"`
}

func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "elfinfo", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file yields a zero
// Config; a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// applyLoggingConfig applies config file defaults to logging and color flags
// that were not set on the command line.
func applyLoggingConfig(c *cli.Command, cfg Config, o *options) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		o.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		o.logFormat = cfg.LogFormat
	}
	if cfg.Color != "" && !c.IsSet("color") {
		o.color = cfg.Color
	}
}

func applyInspectConfig(c *cli.Command, cfg Config, o *options) {
	if cfg.Format != "" && !c.IsSet("format") {
		o.format = cfg.Format
	}
	if cfg.NoMmap != nil && !c.IsSet("no-mmap") {
		o.noMmap = *cfg.NoMmap
	}
}

func applyServeConfig(c *cli.Command, cfg Config, o *options) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		o.addr = cfg.ServerAddress
	}
	if cfg.MaxBodyBytes != nil && !c.IsSet("max-body") {
		o.maxBody = *cfg.MaxBodyBytes
	}
	if cfg.MaxResults != nil && !c.IsSet("max-results") {
		o.maxResults = *cfg.MaxResults
	}
}
