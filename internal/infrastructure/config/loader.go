// Package config loads vibeterm's TOML configuration through viper, with
// VIBETERM_ environment overrides and live reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config dir.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from dir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// VIBETERM_LAYOUT_DIVIDER_WIDTH overrides layout.divider_width, etc.
	v.SetEnvPrefix("VIBETERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "VIBETERM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind VIBETERM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "VIBETERM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind VIBETERM_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.ConfigPath()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
	config.Terminal.Shell = strings.TrimSpace(config.Terminal.Shell)
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigPath returns the config file path, whether or not it exists.
func (m *Manager) ConfigPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), filepath.Join(m.configDir, "config.toml"))
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLayoutDefaults(defaults)
	m.setTerminalDefaults(defaults)
	m.setUIDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.divider_width", defaults.Layout.DividerWidth)
	m.viper.SetDefault("layout.drag_threshold", defaults.Layout.DragThreshold)
	m.viper.SetDefault("layout.drop_zone_edge_ratio", defaults.Layout.DropZoneEdgeRatio)
	m.viper.SetDefault("layout.highlight_ratio", defaults.Layout.HighlightRatio)
}

func (m *Manager) setTerminalDefaults(defaults *Config) {
	m.viper.SetDefault("terminal.shell", defaults.Terminal.Shell)
	m.viper.SetDefault("terminal.cwd_poll_focused_ms", defaults.Terminal.CwdPollFocusedMs)
	m.viper.SetDefault("terminal.cwd_poll_background_ms", defaults.Terminal.CwdPollBackgroundMs)
	m.viper.SetDefault("terminal.exit_buffer", defaults.Terminal.ExitBuffer)
}

func (m *Manager) setUIDefaults(defaults *Config) {
	m.viper.SetDefault("ui.show_sidebar", defaults.UI.ShowSidebar)
	m.viper.SetDefault("ui.sidebar_width", defaults.UI.SidebarWidth)
	m.viper.SetDefault("ui.theme.border", defaults.UI.Theme.Border)
	m.viper.SetDefault("ui.theme.focused_border", defaults.UI.Theme.FocusedBorder)
	m.viper.SetDefault("ui.theme.divider", defaults.UI.Theme.Divider)
	m.viper.SetDefault("ui.theme.drop_highlight", defaults.UI.Theme.DropHighlight)
	m.viper.SetDefault("ui.theme.tab_active", defaults.UI.Theme.TabActive)
	m.viper.SetDefault("ui.theme.tab_inactive", defaults.UI.Theme.TabInactive)
	m.viper.SetDefault("ui.theme.status_bar", defaults.UI.Theme.StatusBar)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}
