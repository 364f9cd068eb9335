package config

import "time"

// Config represents the complete configuration for vibeterm.
type Config struct {
	// Layout controls pane geometry and mouse gestures.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout" json:"layout"`
	// Terminal controls the shells started in panes.
	Terminal TerminalConfig `mapstructure:"terminal" toml:"terminal" json:"terminal"`
	UI       UIConfig       `mapstructure:"ui" toml:"ui" json:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
}

// LayoutConfig holds the split layout settings.
type LayoutConfig struct {
	// DividerWidth is the divider thickness in terminal cells.
	DividerWidth int `mapstructure:"divider_width" toml:"divider_width" json:"divider_width" jsonschema:"minimum=1,maximum=4,default=1"`
	// DragThreshold is the pointer travel, in cells, before a press on a
	// pane becomes a drag instead of a click.
	DragThreshold float64 `mapstructure:"drag_threshold" toml:"drag_threshold" json:"drag_threshold" jsonschema:"minimum=0,default=2"`
	// DropZoneEdgeRatio is the share of a pane edge that accepts drops.
	DropZoneEdgeRatio float64 `mapstructure:"drop_zone_edge_ratio" toml:"drop_zone_edge_ratio" json:"drop_zone_edge_ratio" jsonschema:"exclusiveMinimum=0,maximum=0.5,default=0.25"`
	// HighlightRatio is the share of the target pane highlighted while hovering a zone.
	HighlightRatio float64 `mapstructure:"highlight_ratio" toml:"highlight_ratio" json:"highlight_ratio" jsonschema:"exclusiveMinimum=0,maximum=1,default=0.5"`
}

// TerminalConfig holds shell session settings.
type TerminalConfig struct {
	// Shell to start; empty uses $SHELL.
	Shell               string `mapstructure:"shell" toml:"shell" json:"shell"`
	CwdPollFocusedMs    int    `mapstructure:"cwd_poll_focused_ms" toml:"cwd_poll_focused_ms" json:"cwd_poll_focused_ms" jsonschema:"minimum=50,default=500"`
	CwdPollBackgroundMs int    `mapstructure:"cwd_poll_background_ms" toml:"cwd_poll_background_ms" json:"cwd_poll_background_ms" jsonschema:"minimum=50,default=3000"`
	// ExitBuffer bounds the queue of shell exit notifications.
	ExitBuffer int `mapstructure:"exit_buffer" toml:"exit_buffer" json:"exit_buffer" jsonschema:"minimum=1,default=64"`
}

// FocusedPollInterval returns the cwd poll interval of the focused pane.
func (t TerminalConfig) FocusedPollInterval() time.Duration {
	return time.Duration(t.CwdPollFocusedMs) * time.Millisecond
}

// BackgroundPollInterval returns the cwd poll interval of other panes.
func (t TerminalConfig) BackgroundPollInterval() time.Duration {
	return time.Duration(t.CwdPollBackgroundMs) * time.Millisecond
}

// UIConfig holds the terminal UI settings.
type UIConfig struct {
	ShowSidebar  bool        `mapstructure:"show_sidebar" toml:"show_sidebar" json:"show_sidebar"`
	SidebarWidth int         `mapstructure:"sidebar_width" toml:"sidebar_width" json:"sidebar_width" jsonschema:"minimum=10,maximum=80,default=24"`
	Theme        ThemeConfig `mapstructure:"theme" toml:"theme" json:"theme"`
}

// ThemeConfig holds colors as hex strings (#RRGGBB).
type ThemeConfig struct {
	Border        string `mapstructure:"border" toml:"border" json:"border"`
	FocusedBorder string `mapstructure:"focused_border" toml:"focused_border" json:"focused_border"`
	Divider       string `mapstructure:"divider" toml:"divider" json:"divider"`
	DropHighlight string `mapstructure:"drop_highlight" toml:"drop_highlight" json:"drop_highlight"`
	TabActive     string `mapstructure:"tab_active" toml:"tab_active" json:"tab_active"`
	TabInactive   string `mapstructure:"tab_inactive" toml:"tab_inactive" json:"tab_inactive"`
	StatusBar     string `mapstructure:"status_bar" toml:"status_bar" json:"status_bar"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives logs of interactive runs; empty uses the state directory.
	File       string `mapstructure:"file" toml:"file" json:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1,default=10"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0,default=3"`
}
