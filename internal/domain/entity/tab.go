package entity

import "time"

// TabID uniquely identifies a tab.
type TabID string

// PaneWorkspace is the workspace type used by the application: a split
// tree of terminal and file viewer panes.
type PaneWorkspace = Workspace[*Pane]

// Tab represents a tab containing a workspace.
// Tabs are the top-level container in the tab bar.
type Tab struct {
	ID        TabID
	Workspace *PaneWorkspace
	Position  int // Position in the tab bar (0-indexed)
	CreatedAt time.Time
}

// NewTab creates a new tab whose workspace holds the initial pane.
func NewTab(tabID TabID, workspaceID WorkspaceID, name string, initial *Pane) *Tab {
	return &Tab{
		ID:        tabID,
		Workspace: NewWorkspace(workspaceID, name, initial),
		CreatedAt: time.Now(),
	}
}

// Title returns the display title for the tab.
func (t *Tab) Title() string {
	if t.Workspace != nil && t.Workspace.Name != "" {
		return t.Workspace.Name
	}
	return "New Tab"
}

// PaneCount returns the number of panes in this tab's workspace.
func (t *Tab) PaneCount() int {
	if t.Workspace == nil {
		return 0
	}
	return t.Workspace.PaneCount()
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list and activates it.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	tl.ActiveTabID = tab.ID
}

// Remove removes a tab by ID and reindexes positions.
func (tl *TabList) Remove(id TabID) bool {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
			// Reindex positions
			for j := i; j < len(tl.Tabs); j++ {
				tl.Tabs[j].Position = j
			}
			// Update active tab if needed
			if tl.ActiveTabID == id {
				switch {
				case len(tl.Tabs) == 0:
					tl.ActiveTabID = ""
				case i < len(tl.Tabs):
					tl.ActiveTabID = tl.Tabs[i].ID
				default:
					tl.ActiveTabID = tl.Tabs[len(tl.Tabs)-1].ID
				}
			}
			return true
		}
	}
	return false
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// ActiveIndex returns the position of the active tab, or -1.
func (tl *TabList) ActiveIndex() int {
	if tab := tl.ActiveTab(); tab != nil {
		return tab.Position
	}
	return -1
}

// Activate makes the tab at position active.
func (tl *TabList) Activate(position int) bool {
	if position < 0 || position >= len(tl.Tabs) {
		return false
	}
	tl.ActiveTabID = tl.Tabs[position].ID
	return true
}

// Next activates the following tab, wrapping around.
func (tl *TabList) Next() {
	if n := len(tl.Tabs); n > 0 {
		tl.Activate((tl.ActiveIndex() + 1) % n)
	}
}

// Prev activates the preceding tab, wrapping around.
func (tl *TabList) Prev() {
	if n := len(tl.Tabs); n > 0 {
		tl.Activate((tl.ActiveIndex() - 1 + n) % n)
	}
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// Move moves a tab to a new position. The active tab stays active.
func (tl *TabList) Move(id TabID, newPos int) bool {
	if newPos < 0 || newPos >= len(tl.Tabs) {
		return false
	}
	var tab *Tab
	var oldPos int
	for i, t := range tl.Tabs {
		if t.ID == id {
			tab = t
			oldPos = i
			break
		}
	}
	if tab == nil {
		return false
	}
	// Remove from old position
	tl.Tabs = append(tl.Tabs[:oldPos], tl.Tabs[oldPos+1:]...)
	// Insert at new position
	tl.Tabs = append(tl.Tabs[:newPos], append([]*Tab{tab}, tl.Tabs[newPos:]...)...)
	// Reindex all
	for i := range tl.Tabs {
		tl.Tabs[i].Position = i
	}
	return true
}

// FindSession returns the tab and pane owning a terminal session.
func (tl *TabList) FindSession(id SessionID) (*Tab, PaneID, bool) {
	for _, tab := range tl.Tabs {
		if paneID, ok := tab.Workspace.FindPane(HasSession(id)); ok {
			return tab, paneID, true
		}
	}
	return nil, 0, false
}
