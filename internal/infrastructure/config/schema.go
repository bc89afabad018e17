// Package config loads, validates, watches and writes the typeahead configuration.
package config

// Config is the full configuration of the typeahead binary.
type Config struct {
	Typeahead  TypeaheadConfig  `mapstructure:"typeahead" toml:"typeahead" json:"typeahead"`
	Candidates CandidatesConfig `mapstructure:"candidates" toml:"candidates" json:"candidates"`
	History    HistoryConfig    `mapstructure:"history" toml:"history" json:"history"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// TypeaheadConfig holds the widget options.
type TypeaheadConfig struct {
	// HoverSelect makes mouse hover change the active option.
	HoverSelect bool `mapstructure:"hover_select" toml:"hover_select" json:"hover_select" jsonschema:"default=true"`
	// AutoFocus focuses the input as soon as the picker starts.
	AutoFocus   bool   `mapstructure:"auto_focus" toml:"auto_focus" json:"auto_focus"`
	Placeholder string `mapstructure:"placeholder" toml:"placeholder" json:"placeholder"`
	InputName   string `mapstructure:"input_name" toml:"input_name" json:"input_name"`
	// Namespace seeds element IDs. Empty generates one per run.
	Namespace string `mapstructure:"namespace" toml:"namespace" json:"namespace" jsonschema:"pattern=^[A-Za-z0-9_-]*$"`
	// MaxVisibleOptions is the height of the option list in rows.
	MaxVisibleOptions int `mapstructure:"max_visible_options" toml:"max_visible_options" json:"max_visible_options" jsonschema:"minimum=1,maximum=100"`
	// CaseSensitive makes the built-in prefix hint case sensitive.
	CaseSensitive bool `mapstructure:"case_sensitive" toml:"case_sensitive" json:"case_sensitive"`
	// HintScript is a JavaScript file defining hint(input, options).
	// When set it replaces the built-in prefix hint.
	HintScript string `mapstructure:"hint_script" toml:"hint_script" json:"hint_script"`
}

// CandidatesConfig controls how candidates are ranked for the widget.
type CandidatesConfig struct {
	// MaxResults caps the option list handed to the widget. 0 means unlimited.
	MaxResults int `mapstructure:"max_results" toml:"max_results" json:"max_results" jsonschema:"minimum=0"`
	// Fuzzy appends fuzzy matches after prefix matches.
	Fuzzy bool `mapstructure:"fuzzy" toml:"fuzzy" json:"fuzzy"`
}

// HistoryConfig controls the selection history database.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// Path of the SQLite database. Empty uses the XDG data directory.
	Path string `mapstructure:"path" toml:"path" json:"path"`
	// MaxEntries bounds how many recent selections are offered as candidates.
	MaxEntries int `mapstructure:"max_entries" toml:"max_entries" json:"max_entries" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives the logs of interactive commands, which own the terminal.
	File string `mapstructure:"file" toml:"file" json:"file"`
	// PerSession writes one file per run next to File.
	PerSession bool `mapstructure:"per_session" toml:"per_session" json:"per_session"`
}

// AppearanceConfig holds the picker colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds the colors used by the terminal theme.
type ColorPalette struct {
	Background string `mapstructure:"background" toml:"background" json:"background"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface"`
	Text       string `mapstructure:"text" toml:"text" json:"text"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border     string `mapstructure:"border" toml:"border" json:"border"`
}
