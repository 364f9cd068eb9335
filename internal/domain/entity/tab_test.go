package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTabs() *TabList {
	tabs := NewTabList()
	for i, id := range []TabID{"t0", "t1", "t2"} {
		tabs.Add(NewTab(id, WorkspaceID("w"+string(id)), "shell", NewTerminalPane(SessionID(i), "/tmp")))
	}
	return tabs
}

func TestTabList_AddActivatesNewTab(t *testing.T) {
	tabs := newTestTabs()
	assert.Equal(t, 3, tabs.Count())
	assert.Equal(t, TabID("t2"), tabs.ActiveTabID)
	assert.Equal(t, 2, tabs.ActiveIndex())
}

func TestTabList_NextPrevWrap(t *testing.T) {
	tabs := newTestTabs()
	tabs.Next()
	assert.Equal(t, TabID("t0"), tabs.ActiveTabID)
	tabs.Prev()
	assert.Equal(t, TabID("t2"), tabs.ActiveTabID)
}

func TestTabList_MoveKeepsActiveTab(t *testing.T) {
	tabs := newTestTabs()
	require.True(t, tabs.Activate(0))

	require.True(t, tabs.Move("t0", 2))
	assert.Equal(t, TabID("t0"), tabs.ActiveTabID)
	assert.Equal(t, 2, tabs.ActiveIndex())
	assert.Equal(t, TabID("t1"), tabs.Tabs[0].ID)

	assert.False(t, tabs.Move("t0", 3))
	assert.False(t, tabs.Move("nope", 0))
}

func TestTabList_RemoveActivatesNeighbour(t *testing.T) {
	tabs := newTestTabs()
	require.True(t, tabs.Activate(1))
	require.True(t, tabs.Remove("t1"))
	assert.Equal(t, TabID("t2"), tabs.ActiveTabID)

	require.True(t, tabs.Remove("t2"))
	assert.Equal(t, TabID("t0"), tabs.ActiveTabID)
	assert.Equal(t, 0, tabs.Tabs[0].Position)
}

func TestTabList_FindSession(t *testing.T) {
	tabs := newTestTabs()
	ws := tabs.Find("t1").Workspace
	paneID, err := ws.SplitFocused(SplitVertical, NewTerminalPane(7, "/srv"))
	require.NoError(t, err)

	tab, found, ok := tabs.FindSession(7)
	require.True(t, ok)
	assert.Equal(t, TabID("t1"), tab.ID)
	assert.Equal(t, paneID, found)

	_, _, ok = tabs.FindSession(99)
	assert.False(t, ok)
}

func TestPane_Title(t *testing.T) {
	assert.Equal(t, "shell #3 repo", NewTerminalPane(3, "/home/me/repo").Title())
	assert.Equal(t, "shell #4", NewTerminalPane(4, "").Title())
	assert.Equal(t, "main.go", NewFilePane("/src/main.go", "package main").Title())
}
