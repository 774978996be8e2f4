// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   OutputFormat
		errMsg string
	}{
		{in: "", want: OutputText},
		{in: "text", want: OutputText},
		{in: "JSON", want: OutputJSON},
		{in: " yaml ", want: OutputYAML},
		{in: "xml", errMsg: "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, OutputText, cfg.Format)
	assert.False(t, cfg.Strict)
}
