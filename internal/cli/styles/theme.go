// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vibeterm/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.ThemeConfig)
	Border        lipgloss.Color
	FocusedBorder lipgloss.Color
	Divider       lipgloss.Color
	DropHighlight lipgloss.Color
	TabActiveBg   lipgloss.Color
	TabInactiveBg lipgloss.Color
	StatusBarBg   lipgloss.Color

	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Pre-built styles
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// Pane styles
	PaneBorder    lipgloss.Style
	PaneFocused   lipgloss.Style
	PaneTitle     lipgloss.Style
	DividerStyle  lipgloss.Style
	DropZone      lipgloss.Style
	Ghost         lipgloss.Style
	SidebarHeader lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style

	// Bars
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TabBar      lipgloss.Style
	StatusBar   lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the default colors.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultConfig().UI.Theme
	if cfg != nil && cfg.UI.Theme.Border != "" {
		p = cfg.UI.Theme
	}
	return NewThemeFromColors(p)
}

// NewThemeFromColors creates a Theme from a ThemeConfig.
func NewThemeFromColors(p config.ThemeConfig) *Theme {
	t := &Theme{
		Border:        lipgloss.Color(p.Border),
		FocusedBorder: lipgloss.Color(p.FocusedBorder),
		Divider:       lipgloss.Color(p.Divider),
		DropHighlight: lipgloss.Color(p.DropHighlight),
		TabActiveBg:   lipgloss.Color(p.TabActive),
		TabInactiveBg: lipgloss.Color(p.TabInactive),
		StatusBarBg:   lipgloss.Color(p.StatusBar),

		// Not configurable
		Text:    lipgloss.Color("#c0caf5"),
		Muted:   lipgloss.Color("#737aa2"),
		Warning: lipgloss.Color("#e0af68"),
		Error:   lipgloss.Color("#f7768e"),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.FocusedBorder).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.PaneBorder = lipgloss.NewStyle().
		Foreground(t.Border)

	t.PaneFocused = lipgloss.NewStyle().
		Foreground(t.FocusedBorder).
		Bold(true)

	t.PaneTitle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.DividerStyle = lipgloss.NewStyle().
		Foreground(t.Divider)

	t.DropZone = lipgloss.NewStyle().
		Foreground(t.DropHighlight).
		Background(t.DropHighlight)

	t.Ghost = lipgloss.NewStyle().
		Foreground(t.DropHighlight).
		Bold(true)

	t.SidebarHeader = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.SidebarItem = lipgloss.NewStyle().
		Foreground(t.Text)

	t.SidebarActive = lipgloss.NewStyle().
		Foreground(t.FocusedBorder).
		Bold(true)

	t.ActiveTab = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1a1b26")).
		Background(t.TabActiveBg).
		Padding(0, 1).
		Bold(true)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.TabInactiveBg).
		Padding(0, 1)

	t.TabBar = lipgloss.NewStyle().
		Background(t.StatusBarBg)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.StatusBarBg)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.FocusedBorder)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)
}
