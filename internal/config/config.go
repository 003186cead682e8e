// Package config defines the YAML configuration shared by catalogcheck and contractvet.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of a configuration file.
type Config struct {
	Catalog Catalog `yaml:"catalog"`
	Vet     Vet     `yaml:"vet"`
}

// Catalog configures offset table generation.
type Catalog struct {
	// Out is where the offset table is written. Empty means stdout.
	Out     string `yaml:"out,omitempty"`
	Package string `yaml:"package"`
	Table   string `yaml:"table"`
	Blob    string `yaml:"blob"`
}

// Vet configures the condition text analyzer.
type Vet struct {
	// Functions lists check functions outside of the contract package. Each needs an
	// "ok bool" and a "cond string" parameter.
	Functions []Reference `yaml:"functions,omitempty"`

	// Disabled lists rules by their code (CTR001) or name (CondTextMismatch).
	Disabled []string `yaml:"disabled,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Catalog: Catalog{
			Package: "errcode",
			Table:   "messageOffsets",
			Blob:    "messageBlob",
		},
	}
}

// Load reads a configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes configuration data on top of the defaults. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, err
	}

	return cfg, nil
}
