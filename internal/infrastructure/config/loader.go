package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/typeahead/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	ctx        context.Context
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager reading config.toml from the XDG config directory,
// or from file when it is non-empty.
func NewManager(ctx context.Context, file string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	// TYPEAHEAD_HISTORY_ENABLED, TYPEAHEAD_CANDIDATES_MAX_RESULTS, ...
	v.SetEnvPrefix("TYPEAHEAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TYPEAHEAD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TYPEAHEAD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TYPEAHEAD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TYPEAHEAD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		ctx:        logging.WithComponent(ctx, "config"),
		viper:      v,
		configFile: file,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error: defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.build()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	log := logging.FromContext(m.ctx)

	err := m.viper.ReadInConfig()
	if err == nil {
		log.Debug().Str("file", m.viper.ConfigFileUsed()).Msg("config loaded")
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		log.Debug().Msg("no config file, using defaults")
		return nil
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.GetConfigFile(), err)
}

// build unmarshals, normalizes and validates the current viper state.
func (m *Manager) build() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.GetConfigFile(),
			err,
		)
	}

	if err := ensurePaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensurePaths(config *Config) error {
	if config.History.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.History.Path = dbPath
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "warning":
		config.Logging.Level = "warn"
	case "":
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	if config.Typeahead.MaxVisibleOptions == 0 {
		config.Typeahead.MaxVisibleOptions = defaultMaxVisibleOptions
	}

	defaults := DefaultColorPalette()
	p := &config.Appearance.Palette
	for _, field := range []struct {
		value    *string
		fallback string
	}{
		{&p.Background, defaults.Background},
		{&p.Surface, defaults.Surface},
		{&p.Text, defaults.Text},
		{&p.Muted, defaults.Muted},
		{&p.Accent, defaults.Accent},
		{&p.Border, defaults.Border},
	} {
		if *field.value == "" {
			*field.value = field.fallback
		}
	}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// GetConfigFile returns the config file in use, or the path it would be created at.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.configFile != "" {
		return m.configFile
	}
	file, _ := GetConfigFile()
	return file
}
