package config

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			DividerWidth:      1,
			DragThreshold:     2,
			DropZoneEdgeRatio: 0.25,
			HighlightRatio:    0.5,
		},
		Terminal: TerminalConfig{
			CwdPollFocusedMs:    500,
			CwdPollBackgroundMs: 3000,
			ExitBuffer:          64,
		},
		UI: UIConfig{
			ShowSidebar:  true,
			SidebarWidth: 24,
			Theme: ThemeConfig{
				Border:        "#444444",
				FocusedBorder: "#7aa2f7",
				Divider:       "#3b4261",
				DropHighlight: "#9ece6a",
				TabActive:     "#7aa2f7",
				TabInactive:   "#565f89",
				StatusBar:     "#1f2335",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
