package usecase

import (
	"fmt"

	"github.com/bnema/vibeterm/internal/domain/entity"
)

// MovePaneToTabUseCase moves a pane from one tab's workspace to another.
// The pane keeps its content, and with it the shell behind it, but gets a
// new PaneID from the target workspace since IDs are per workspace.
//
// It is pure domain manipulation: it depends only on entities and an ID generator.
type MovePaneToTabUseCase struct {
	idGenerator IDGenerator
}

func NewMovePaneToTabUseCase(idGenerator IDGenerator) *MovePaneToTabUseCase {
	return &MovePaneToTabUseCase{idGenerator: idGenerator}
}

type MovePaneToTabInput struct {
	TabList      *entity.TabList
	SourceTabID  entity.TabID
	SourcePaneID entity.PaneID
	TargetTabID  entity.TabID // empty means create new tab
}

type MovePaneToTabOutput struct {
	TargetTab       *entity.Tab
	MovedPaneID     entity.PaneID // ID in the target workspace
	SourceTabClosed bool
	NewTabCreated   bool
}

func (uc *MovePaneToTabUseCase) Execute(input MovePaneToTabInput) (*MovePaneToTabOutput, error) {
	if err := validateMovePaneToTabInput(uc, input); err != nil {
		return nil, err
	}

	sourceTab, err := findSourceTab(input.TabList, input.SourceTabID)
	if err != nil {
		return nil, err
	}
	if !sourceTab.Workspace.HasPane(input.SourcePaneID) {
		return nil, fmt.Errorf("source pane %s: %w", input.SourcePaneID, entity.ErrPaneNotFound)
	}

	targetTab := input.TabList.Find(input.TargetTabID)
	if targetTab == nil && sourceTab.Workspace.PaneCount() == 1 {
		return nil, fmt.Errorf("pane is already alone in its tab")
	}

	moved, sourceTabClosed, err := detachPane(input.TabList, sourceTab, input.SourcePaneID)
	if err != nil {
		return nil, err
	}

	if targetTab == nil {
		targetTab = uc.newTab(input.TabList, moved)
		return &MovePaneToTabOutput{
			TargetTab:       targetTab,
			MovedPaneID:     targetTab.Workspace.FocusedPaneID,
			SourceTabClosed: sourceTabClosed,
			NewTabCreated:   true,
		}, nil
	}

	// Insert right of the target's focused pane; the split focuses it.
	movedID, err := targetTab.Workspace.SplitFocused(entity.SplitHorizontal, moved)
	if err != nil {
		return nil, err
	}
	input.TabList.ActiveTabID = targetTab.ID

	return &MovePaneToTabOutput{
		TargetTab:       targetTab,
		MovedPaneID:     movedID,
		SourceTabClosed: sourceTabClosed,
	}, nil
}

func validateMovePaneToTabInput(uc *MovePaneToTabUseCase, input MovePaneToTabInput) error {
	if uc == nil {
		return fmt.Errorf("move pane to tab use case is nil")
	}
	if input.TabList == nil {
		return fmt.Errorf("tab list is required")
	}
	if input.SourceTabID == "" {
		return fmt.Errorf("source tab id is required")
	}
	if input.TargetTabID == input.SourceTabID {
		return fmt.Errorf("cannot move pane to same tab")
	}
	return nil
}

func findSourceTab(tl *entity.TabList, id entity.TabID) (*entity.Tab, error) {
	sourceTab := tl.Find(id)
	if sourceTab == nil {
		return nil, fmt.Errorf("source tab %s: %w", id, ErrTabNotFound)
	}
	if sourceTab.Workspace == nil {
		return nil, fmt.Errorf("source workspace is nil")
	}
	return sourceTab, nil
}

// detachPane takes the pane out of the source workspace. A workspace is
// never left empty: moving its only pane closes the source tab instead.
func detachPane(tl *entity.TabList, sourceTab *entity.Tab, paneID entity.PaneID) (*entity.Pane, bool, error) {
	ws := sourceTab.Workspace
	if ws.PaneCount() == 1 {
		moved := ws.Focused()
		return moved, tl.Remove(sourceTab.ID), nil
	}
	moved, err := ws.ClosePane(paneID)
	if err != nil {
		return nil, false, err
	}
	return moved, false, nil
}

func (uc *MovePaneToTabUseCase) newTab(tl *entity.TabList, moved *entity.Pane) *entity.Tab {
	tabID := entity.TabID(uc.idGenerator())
	wsID := entity.WorkspaceID(uc.idGenerator())
	tab := entity.NewTab(tabID, wsID, moved.Title(), moved)
	tl.Add(tab)
	return tab
}
