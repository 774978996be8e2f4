// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data types shared between the converter's
// CLI and its output writers.
package types

// Conversion is the outcome of converting one numeral.
type Conversion struct {
	// Input is the string as given by the caller.
	Input string `json:"input" yaml:"input"`

	// Value is the integer value, or 0 when Valid is false.
	Value int `json:"value" yaml:"value"`

	// Valid reports whether Input is a well-formed numeral.
	Valid bool `json:"valid" yaml:"valid"`
}
