/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

// Package config loads the netroom YAML configuration.
//
// Config file locations (priority order):
//  1. the --config flag
//  2. $NETROOM_CONFIG
//  3. ./netroom.yaml
//  4. ~/.config/netroom/config.yaml
//
// A missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const EnvConfigPath = "NETROOM_CONFIG"

const (
	BackendReadline = "readline"
	BackendLiner    = "liner"
	BackendPlain    = "plain"
)

type Config struct {
	Prompt  string        `yaml:"prompt"`
	Console ConsoleConfig `yaml:"console"`
	Ping    PingConfig    `yaml:"ping"`
	Monitor MonitorConfig `yaml:"monitor"`
	Log     LogConfig     `yaml:"log"`
}

type ConsoleConfig struct {
	Backend     string `yaml:"backend"`
	HistoryFile string `yaml:"history_file"`
	ClearScreen *bool  `yaml:"clear_screen"`
}

type PingConfig struct {
	Delay *time.Duration `yaml:"delay"`
}

type MonitorConfig struct {
	Dashboard bool `yaml:"dashboard"`
}

type LogConfig struct {
	File   string `yaml:"file"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the config at path, or the first file found in the search
// order when path is empty.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return Default(), "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, path, nil
}

func FindConfigPath() string {
	candidates := []string{os.Getenv(EnvConfigPath), "netroom.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "netroom", "config.yaml"))
	}

	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

func (c *Config) applyDefaults() {
	if c.Prompt == "" {
		c.Prompt = "Select an option: "
	}
	if c.Console.Backend == "" {
		c.Console.Backend = BackendReadline
	}
	if c.Console.ClearScreen == nil {
		on := true
		c.Console.ClearScreen = &on
	}
	if c.Ping.Delay == nil {
		d := 2 * time.Second
		c.Ping.Delay = &d
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Console.Backend) {
	case BackendReadline, BackendLiner, BackendPlain:
	default:
		return fmt.Errorf("console.backend must be one of readline, liner, plain (got %q)", c.Console.Backend)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}

	if c.PingDelay() < 0 {
		return fmt.Errorf("ping.delay cannot be negative (got %s)", c.PingDelay())
	}

	return nil
}

func (c *Config) PingDelay() time.Duration {
	if c.Ping.Delay == nil {
		return 0
	}
	return *c.Ping.Delay
}

func (c *Config) ClearScreen() bool {
	return c.Console.ClearScreen == nil || *c.Console.ClearScreen
}
