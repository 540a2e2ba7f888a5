// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration for transcriptctl. Every
// field has a workable zero value, so a missing --config flag is not an
// error.
type Config struct {
	LogPath    string `yaml:"log_path"`
	LogLevel   string `yaml:"log_level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// defaultConfig returns the configuration used when no --config file is
// given.
func defaultConfig() Config {
	return Config{
		LogLevel:   "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// loadConfig reads and parses a YAML config file, falling back to
// defaultConfig for any field the file omits.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
