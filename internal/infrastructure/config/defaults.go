package config

const (
	defaultMaxVisibleOptions = 8
	defaultMaxResults        = 50
	defaultMaxHistoryEntries = 200
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultColorPalette returns the built-in dark palette.
func DefaultColorPalette() ColorPalette {
	return ColorPalette{
		Background: "#0a0a0b",
		Surface:    "#1a1a1b",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Border:     "#333333",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Typeahead: TypeaheadConfig{
			HoverSelect:       true,
			AutoFocus:         true,
			Placeholder:       "Type to search…",
			MaxVisibleOptions: defaultMaxVisibleOptions,
		},
		Candidates: CandidatesConfig{
			MaxResults: defaultMaxResults,
			Fuzzy:      true,
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: defaultMaxHistoryEntries,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultColorPalette(),
		},
	}
}

// setDefaults registers every default with viper so partial files still unmarshal
// into a complete Config.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("typeahead.hover_select", defaults.Typeahead.HoverSelect)
	m.viper.SetDefault("typeahead.auto_focus", defaults.Typeahead.AutoFocus)
	m.viper.SetDefault("typeahead.placeholder", defaults.Typeahead.Placeholder)
	m.viper.SetDefault("typeahead.input_name", defaults.Typeahead.InputName)
	m.viper.SetDefault("typeahead.namespace", defaults.Typeahead.Namespace)
	m.viper.SetDefault("typeahead.max_visible_options", defaults.Typeahead.MaxVisibleOptions)
	m.viper.SetDefault("typeahead.case_sensitive", defaults.Typeahead.CaseSensitive)
	m.viper.SetDefault("typeahead.hint_script", defaults.Typeahead.HintScript)

	m.viper.SetDefault("candidates.max_results", defaults.Candidates.MaxResults)
	m.viper.SetDefault("candidates.fuzzy", defaults.Candidates.Fuzzy)

	m.viper.SetDefault("history.enabled", defaults.History.Enabled)
	m.viper.SetDefault("history.path", defaults.History.Path)
	m.viper.SetDefault("history.max_entries", defaults.History.MaxEntries)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.per_session", defaults.Logging.PerSession)

	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}
