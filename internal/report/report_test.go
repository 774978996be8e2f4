// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/roman-numerals/pkg/types"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, types.Conversion{Input: "xiv", Value: 14, Valid: true}, Convert("xiv"))
	assert.Equal(t, types.Conversion{Input: "VX", Value: 0, Valid: false}, Convert("VX"))
}

func TestWrite_Text(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid numeral", input: "MMXXIV", want: "2024\n"},
		{name: "invalid numeral prints zero", input: "IIII", want: "0\n"},
		{name: "empty input prints zero", input: "", want: "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, Convert(tt.input), types.OutputText))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Convert("MCMXCIV"), types.OutputJSON))

	var got types.Conversion
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, types.Conversion{Input: "MCMXCIV", Value: 1994, Valid: true}, got)
	assert.Contains(t, buf.String(), `"valid": true`)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Convert("abc"), types.OutputYAML))

	var got types.Conversion
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, types.Conversion{Input: "abc", Value: 0, Valid: false}, got)
	assert.Contains(t, buf.String(), "valid: false")
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Convert("X"), types.OutputFormat("xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
	assert.Empty(t, buf.String())
}
