// Package config loads the optional DevKit installer configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/intel/aipc-devkit-install/pkg/devkiterrors"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config is the contents of a configuration file.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// Paths are candidate installation paths. Entries keep their decoded
	// YAML types, so non-textual values are preserved.
	Paths []any `yaml:"paths"`
}

// Default returns a [Config] with default values.
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // The path is provided by the user.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", devkiterrors.ErrReadConfig, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes data onto [Default]. Unknown keys are rejected. Empty input
// yields the defaults.
func Parse(data []byte) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", devkiterrors.ErrParseConfig, err)
	}

	return c, nil
}
