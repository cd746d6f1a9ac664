package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the parse command.
const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputXML  = "xml"
)

// Config holds the defaults of the parse command. Values from the config
// file are overridden by flags given on the command line.
type Config struct {
	Output   string `yaml:"output"`
	Indent   int    `yaml:"indent"`
	Strict   bool   `yaml:"strict"`
	MaxDepth int    `yaml:"max_depth"`
	Encoding string `yaml:"encoding"`
}

func defaultConfig() Config {
	return Config{Output: outputJSON, Indent: 2}
}

// loadConfig reads the YAML config at path on top of the defaults. An empty
// path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the config values.
func (c Config) Validate() error {
	switch c.Output {
	case outputJSON, outputYAML, outputXML:
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml or xml)", c.Output)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}
