package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TabSpan is the column range a rendered tab occupies, used for mouse hits.
type TabSpan struct {
	Start, End int // End is exclusive
}

// TabsModel represents a horizontal tab bar.
type TabsModel struct {
	Tabs   []string
	Active int
	theme  *Theme
}

// NewTabs creates a new tab bar with the given labels.
func NewTabs(theme *Theme, tabs ...string) TabsModel {
	return TabsModel{
		Tabs:   tabs,
		Active: 0,
		theme:  theme,
	}
}

// SetActive sets the active tab index.
func (m *TabsModel) SetActive(index int) {
	if index >= 0 && index < len(m.Tabs) {
		m.Active = index
	}
}

// View renders the tab bar padded to width and returns the span of every tab.
func (m TabsModel) View(width int) (string, []TabSpan) {
	var b strings.Builder
	spans := make([]TabSpan, 0, len(m.Tabs))
	col := 0
	for i, tab := range m.Tabs {
		style := m.theme.InactiveTab
		if i == m.Active {
			style = m.theme.ActiveTab
		}
		rendered := style.Render(fmt.Sprintf("%d:%s", i+1, tab))
		w := lipgloss.Width(rendered)
		if col+w > width && i > 0 {
			break
		}
		spans = append(spans, TabSpan{Start: col, End: col + w})
		b.WriteString(rendered)
		col += w
		if i < len(m.Tabs)-1 && col < width {
			b.WriteString(m.theme.TabBar.Render(" "))
			col++
		}
	}
	return m.theme.TabBar.Width(width).MaxWidth(width).Render(b.String()), spans
}

// HitTab returns the index of the tab under column x.
func HitTab(spans []TabSpan, x int) (int, bool) {
	for i, s := range spans {
		if x >= s.Start && x < s.End {
			return i, true
		}
	}
	return 0, false
}
