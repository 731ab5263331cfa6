// Copyright 2026 The SQLTour Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads the optional YAML run configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime knobs of a tour run. Every field is optional;
// zero values fall back to the built-in defaults.
type Config struct {
	// Engine is the backend name: sqlite, sqlite3 or duckdb.
	Engine string `yaml:"engine"`

	// HealthURL and LocationsURL override the dataset sources.
	HealthURL    string `yaml:"health_url"`
	LocationsURL string `yaml:"locations_url"`

	// OutDir receives the rendered plots.
	OutDir string `yaml:"out_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: "sqlite",
		OutDir: ".",
	}
}

// Load reads path over the defaults. Unknown keys are an error so typos
// do not silently fall back.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, nil
}
