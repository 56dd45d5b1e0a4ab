// Copyright (C) 2025 The pyPept Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads the pypept CLI configuration.
//
// Configuration lives at ~/.pypept/pypept.yaml and is created with
// defaults on first run. It is loaded once per process into a read-only
// singleton and validated before use.
package config

type PyPeptConfig struct {
	// Logging controls diagnostic output of the CLI.
	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`

	// JSON switches log output to JSON objects.
	JSON bool `yaml:"json"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() PyPeptConfig {
	return PyPeptConfig{
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
