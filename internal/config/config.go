// Package config loads the shell's on-disk YAML settings and its
// environment-derived values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the shell's persisted, user-editable settings file.
type Config struct {
	HistorySize  int    `yaml:"history_size"`
	PromptSuffix string `yaml:"prompt_suffix"`
	Debug        bool   `yaml:"debug"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		HistorySize:  1000,
		PromptSuffix: "$ ",
	}
}

// Dir returns the directory holding the shell's config file, creating
// no directories itself.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nu-shell"), nil
}

// Path returns the path to config.yaml under Dir.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads config.yaml if present, falling back to Default when it
// doesn't exist. A malformed file is reported as an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to config.yaml, creating Dir if necessary.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Env is the shell's environment-derived configuration: the variables
// spec.md §6 says the shell consumes, plus one operational knob of our
// own (NU_DEBUG).
type Env struct {
	Path      string `envconfig:"PATH"`
	Home      string `envconfig:"HOME"`
	HistFile  string `envconfig:"HISTFILE"`
	DebugFlag bool   `envconfig:"NU_DEBUG" default:"false"`
}

// LoadEnv reads the process environment into an Env, defaulting
// HISTFILE to $HOME/.nu_history when unset.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if env.HistFile == "" && env.Home != "" {
		env.HistFile = filepath.Join(env.Home, ".nu_history")
	}
	return &env, nil
}
