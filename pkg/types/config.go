// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// OutputFormat selects how a conversion result is printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat normalises s and checks it names a known format.
// The empty string selects OutputText.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return OutputText, nil
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", s)
	}
}

// Config holds CLI settings, loaded from roman.yaml, ROMAN_* environment
// variables, and flags.
type Config struct {
	// Format selects the output format: text, json, or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Strict makes an invalid numeral a command failure instead of
	// printing 0.
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{Format: OutputText}
}
