// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders conversion results as plain text, JSON, or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/roman-numerals/internal/roman"
	"github.com/pdiddy/roman-numerals/pkg/types"
)

// Convert converts input and records whether it was a valid numeral.
func Convert(input string) types.Conversion {
	n, err := roman.Parse(input)
	return types.Conversion{
		Input: input,
		Value: n,
		Valid: err == nil,
	}
}

// Write prints c to w in the given format. Text output is the bare
// integer, so an invalid numeral prints 0.
func Write(w io.Writer, c types.Conversion, format types.OutputFormat) error {
	switch format {
	case types.OutputText, "":
		_, err := fmt.Fprintln(w, c.Value)
		return err
	case types.OutputJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case types.OutputYAML:
		data, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
