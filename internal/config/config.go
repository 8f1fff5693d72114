// Package config loads the optional minilang runtime configuration file,
// controlling REPL cosmetics that go-mix instead hard-codes as package
// vars in main/main.go (BANNER, PROMPT, LINE).
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a .minilangrc.yaml may override. Every field
// has a usable zero-config default (see Default), so a missing or partial
// file never prevents startup.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in configuration, used whenever no config
// file is found or a field is left unset in one that is.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Prompt:      ">> ",
		Color:       true,
		HistoryFile: filepath.Join(home, ".minilang_history"),
	}
}

// Load reads the YAML config at path. An empty path checks
// ~/.minilangrc.yaml; if that file does not exist, Load returns Default()
// with no error, since absence of a config file is expected, not
// exceptional. Any field left zero-valued in the file falls back to the
// corresponding Default() field.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".minilangrc.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return cfg, err
	}

	if overrides.Prompt != "" {
		cfg.Prompt = overrides.Prompt
	}
	if overrides.HistoryFile != "" {
		cfg.HistoryFile = overrides.HistoryFile
	}
	// Color has no "unset" value distinct from false in YAML, so a file
	// that sets `color: false` must be able to turn it off; only a
	// missing key should fall back to the default (true). yaml.v3
	// reports which keys were present via a second decode into a map.
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err == nil {
		if _, present := raw["color"]; present {
			cfg.Color = overrides.Color
		}
	}

	return cfg, nil
}
