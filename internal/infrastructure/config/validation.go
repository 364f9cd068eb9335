package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/vibeterm/internal/logging"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateTerminal(config)...)
	validationErrors = append(validationErrors, validateUI(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout
	if l.DividerWidth < 1 || l.DividerWidth > 4 {
		validationErrors = append(validationErrors, "layout.divider_width must be between 1 and 4")
	}
	if l.DragThreshold < 0 {
		validationErrors = append(validationErrors, "layout.drag_threshold must be non-negative")
	}
	if l.DropZoneEdgeRatio <= 0 || l.DropZoneEdgeRatio > 0.5 {
		validationErrors = append(validationErrors, "layout.drop_zone_edge_ratio must be in (0, 0.5]")
	}
	if l.HighlightRatio <= 0 || l.HighlightRatio > 1 {
		validationErrors = append(validationErrors, "layout.highlight_ratio must be in (0, 1]")
	}
	return validationErrors
}

func validateTerminal(config *Config) []string {
	var validationErrors []string
	t := config.Terminal
	if t.CwdPollFocusedMs < 50 {
		validationErrors = append(validationErrors, "terminal.cwd_poll_focused_ms must be at least 50")
	}
	if t.CwdPollBackgroundMs < 50 {
		validationErrors = append(validationErrors, "terminal.cwd_poll_background_ms must be at least 50")
	}
	if t.ExitBuffer < 1 {
		validationErrors = append(validationErrors, "terminal.exit_buffer must be positive")
	}
	return validationErrors
}

func validateUI(config *Config) []string {
	var validationErrors []string
	if config.UI.SidebarWidth < 10 || config.UI.SidebarWidth > 80 {
		validationErrors = append(validationErrors, "ui.sidebar_width must be between 10 and 80")
	}
	theme := config.UI.Theme
	colors := []struct {
		key   string
		value string
	}{
		{"border", theme.Border},
		{"focused_border", theme.FocusedBorder},
		{"divider", theme.Divider},
		{"drop_highlight", theme.DropHighlight},
		{"tab_active", theme.TabActive},
		{"tab_inactive", theme.TabInactive},
		{"status_bar", theme.StatusBar},
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(c.value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("ui.theme.%s must be a #RRGGBB color, got %q", c.key, c.value))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}
