package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "ansi color", mutate: func(c *Config) { c.Appearance.Palette.Accent = "42" }},
		{name: "short hex", mutate: func(c *Config) { c.Appearance.Palette.Text = "#fff" }},
		{
			name:    "bad color",
			mutate:  func(c *Config) { c.Appearance.Palette.Border = "blue" },
			wantErr: "appearance.palette.border",
		},
		{
			name:    "negative max results",
			mutate:  func(c *Config) { c.Candidates.MaxResults = -1 },
			wantErr: "candidates.max_results",
		},
		{
			name:    "negative history",
			mutate:  func(c *Config) { c.History.MaxEntries = -3 },
			wantErr: "history.max_entries",
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "missing hint script",
			mutate:  func(c *Config) { c.Typeahead.HintScript = "/nonexistent/hint.js" },
			wantErr: "typeahead.hint_script",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Candidates.MaxResults = -1
	cfg.History.MaxEntries = -1

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
}
