package usecase

import (
	"testing"

	"github.com/bnema/vibeterm/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func newShell(id entity.SessionID) *entity.Pane {
	return entity.NewTerminalPane(id, "/tmp")
}

func TestMovePaneToTab_MoveToExistingTab(t *testing.T) {
	uc := NewMovePaneToTabUseCase(newTestIDGen())
	tabs := entity.NewTabList()

	left, right := newShell(1), newShell(2)
	tabA := entity.NewTab("tA", "wA", "a", left)
	_, err := tabA.Workspace.SplitFocused(entity.SplitHorizontal, right)
	require.NoError(t, err)
	tabs.Add(tabA)

	target := newShell(3)
	tabB := entity.NewTab("tB", "wB", "b", target)
	tabs.Add(tabB)
	tabs.ActiveTabID = tabA.ID

	out, err := uc.Execute(MovePaneToTabInput{
		TabList:      tabs,
		SourceTabID:  tabA.ID,
		SourcePaneID: 1,
		TargetTabID:  tabB.ID,
	})
	require.NoError(t, err)
	require.False(t, out.SourceTabClosed)
	require.False(t, out.NewTabCreated)
	require.Equal(t, tabB.ID, out.TargetTab.ID)
	require.Equal(t, tabB.ID, tabs.ActiveTabID)

	// Source keeps its remaining pane.
	require.Equal(t, []entity.PaneID{0}, tabA.Workspace.PaneIDs())
	require.Equal(t, entity.PaneID(0), tabA.Workspace.FocusedPaneID)

	// Inserted right of the target's focused pane with a fresh ID.
	require.Equal(t, "H(0.50 [0] [1])", tabB.Workspace.Root.String())
	require.Equal(t, entity.PaneID(1), out.MovedPaneID)
	require.Equal(t, out.MovedPaneID, tabB.Workspace.FocusedPaneID)
	moved, ok := tabB.Workspace.ContentOf(out.MovedPaneID)
	require.True(t, ok)
	require.Same(t, right, moved)
}

func TestMovePaneToTab_OnlyPaneClosesSourceTab(t *testing.T) {
	uc := NewMovePaneToTabUseCase(newTestIDGen())
	tabs := entity.NewTabList()

	lone := newShell(1)
	tabA := entity.NewTab("tA", "wA", "a", lone)
	tabs.Add(tabA)
	tabB := entity.NewTab("tB", "wB", "b", newShell(2))
	tabs.Add(tabB)

	out, err := uc.Execute(MovePaneToTabInput{
		TabList:      tabs,
		SourceTabID:  tabA.ID,
		SourcePaneID: 0,
		TargetTabID:  tabB.ID,
	})
	require.NoError(t, err)
	require.True(t, out.SourceTabClosed)
	require.Nil(t, tabs.Find(tabA.ID))
	require.Equal(t, 1, tabs.Count())
	require.Equal(t, 2, tabB.PaneCount())

	moved, ok := tabB.Workspace.ContentOf(out.MovedPaneID)
	require.True(t, ok)
	require.Same(t, lone, moved)
}

func TestMovePaneToTab_MoveCreatesNewTab(t *testing.T) {
	uc := NewMovePaneToTabUseCase(newTestIDGen())
	tabs := entity.NewTabList()

	tabA := entity.NewTab("tA", "wA", "a", newShell(1))
	second := newShell(2)
	_, err := tabA.Workspace.SplitFocused(entity.SplitVertical, second)
	require.NoError(t, err)
	tabs.Add(tabA)

	out, err := uc.Execute(MovePaneToTabInput{
		TabList:      tabs,
		SourceTabID:  tabA.ID,
		SourcePaneID: 1,
	})
	require.NoError(t, err)
	require.True(t, out.NewTabCreated)
	require.False(t, out.SourceTabClosed)
	require.Equal(t, 2, tabs.Count())
	require.Equal(t, out.TargetTab.ID, tabs.ActiveTabID)
	require.True(t, out.TargetTab.Workspace.Root.IsLeaf())
	require.Same(t, second, out.TargetTab.Workspace.Focused())
	require.Equal(t, 1, tabA.PaneCount())
}

func TestMovePaneToTab_AlonePaneWithoutTargetIsRejected(t *testing.T) {
	uc := NewMovePaneToTabUseCase(newTestIDGen())
	tabs := entity.NewTabList()
	tab := entity.NewTab("tA", "wA", "a", newShell(1))
	tabs.Add(tab)

	_, err := uc.Execute(MovePaneToTabInput{
		TabList:      tabs,
		SourceTabID:  tab.ID,
		SourcePaneID: 0,
	})
	require.Error(t, err)
	require.Equal(t, 1, tabs.Count())
	require.Equal(t, 1, tab.PaneCount())
}

func TestMovePaneToTab_CannotMoveToSameTab(t *testing.T) {
	uc := NewMovePaneToTabUseCase(newTestIDGen())
	tabs := entity.NewTabList()
	tab := entity.NewTab("tA", "wA", "a", newShell(1))
	tabs.Add(tab)

	_, err := uc.Execute(MovePaneToTabInput{
		TabList:      tabs,
		SourceTabID:  tab.ID,
		SourcePaneID: 0,
		TargetTabID:  tab.ID,
	})
	require.Error(t, err)
}

func TestMovePaneToTab_SourcePaneNotFound(t *testing.T) {
	uc := NewMovePaneToTabUseCase(newTestIDGen())
	tabs := entity.NewTabList()
	tab := entity.NewTab("tA", "wA", "a", newShell(1))
	tabs.Add(tab)

	_, err := uc.Execute(MovePaneToTabInput{
		TabList:      tabs,
		SourceTabID:  tab.ID,
		SourcePaneID: 9,
		TargetTabID:  "tB",
	})
	require.ErrorIs(t, err, entity.ErrPaneNotFound)
}
