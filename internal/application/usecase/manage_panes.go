package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bnema/vibeterm/internal/application/port"
	"github.com/bnema/vibeterm/internal/domain/entity"
	"github.com/bnema/vibeterm/internal/logging"
)

// ManagePanesUseCase handles pane tree operations that involve the
// resources behind panes: spawning shells on split, releasing them on
// close, and reacting to shell exits.
type ManagePanesUseCase struct {
	sessions *SessionRegistry
	roots    port.ProjectRootDetector
}

// NewManagePanesUseCase creates a new pane management use case.
// roots may be nil, which disables project root detection.
func NewManagePanesUseCase(sessions *SessionRegistry, roots port.ProjectRootDetector) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		sessions: sessions,
		roots:    roots,
	}
}

// SplitPaneInput contains parameters for splitting the focused pane.
type SplitPaneInput struct {
	Workspace *entity.PaneWorkspace
	Direction entity.SplitDirection
	Cols      int
	Rows      int
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	PaneID entity.PaneID
	Pane   *entity.Pane
}

// Split starts a shell in the focused pane's directory and places it next
// to the focused pane. The new pane gets focus.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Stringer("direction", input.Direction).
		Msg("splitting pane")

	if input.Workspace == nil {
		return nil, fmt.Errorf("workspace is required")
	}
	if input.Direction != entity.SplitHorizontal && input.Direction != entity.SplitVertical {
		return nil, fmt.Errorf("invalid split direction %q", input.Direction)
	}

	ws := input.Workspace
	target := ws.FocusedPaneID
	pane, err := uc.sessions.Spawn(ctx, SpawnInput{
		Dir:  workingDir(ws.Focused()),
		Cols: input.Cols,
		Rows: input.Rows,
	})
	if err != nil {
		return nil, err
	}

	paneID, err := ws.SplitFocused(input.Direction, pane)
	if err != nil {
		uc.sessions.Release(ctx, pane)
		return nil, err
	}

	log.Info().
		Stringer("target_id", target).
		Stringer("new_pane_id", paneID).
		Stringer("direction", input.Direction).
		Msg("pane split completed")

	return &SplitPaneOutput{PaneID: paneID, Pane: pane}, nil
}

// workingDir picks the directory a pane split off content should start in.
func workingDir(content *entity.Pane) string {
	if content == nil {
		return ""
	}
	if content.IsTerminal() {
		return content.CurrentDir
	}
	if content.FilePath != "" {
		return filepath.Dir(content.FilePath)
	}
	return ""
}

// Close removes a pane and releases its session. Closing the last pane of
// a workspace returns entity.ErrLastPane.
func (uc *ManagePanesUseCase) Close(ctx context.Context, ws *entity.PaneWorkspace, paneID entity.PaneID) error {
	ctx = logging.WithPaneID(ctx, paneID)
	log := logging.FromContext(ctx)
	log.Debug().Msg("closing pane")

	if ws == nil {
		return fmt.Errorf("workspace is required")
	}

	content, err := ws.ClosePane(paneID)
	if err != nil {
		return err
	}
	uc.sessions.Release(ctx, content)

	log.Info().
		Stringer("new_focus", ws.FocusedPaneID).
		Int("remaining", ws.PaneCount()).
		Msg("pane closed")
	return nil
}

// CloseFocusedOutput reports what CloseFocused removed.
type CloseFocusedOutput struct {
	ClosedPane bool
	ClosedTab  bool
}

// CloseFocused closes the focused pane of the active tab. When that pane
// is the tab's only one, the whole tab is closed instead, unless it is the
// last tab, in which case nothing happens.
func (uc *ManagePanesUseCase) CloseFocused(ctx context.Context, tabs *entity.TabList) (*CloseFocusedOutput, error) {
	if tabs == nil {
		return nil, fmt.Errorf("tab list is required")
	}
	tab := tabs.ActiveTab()
	if tab == nil {
		return nil, ErrTabNotFound
	}
	ctx = logging.WithTabID(ctx, string(tab.ID))
	log := logging.FromContext(ctx)

	ws := tab.Workspace
	if ws.PaneCount() > 1 {
		if err := uc.Close(ctx, ws, ws.FocusedPaneID); err != nil {
			return nil, err
		}
		return &CloseFocusedOutput{ClosedPane: true}, nil
	}

	if tabs.Count() <= 1 {
		log.Debug().Msg("last pane of last tab, ignoring close")
		return &CloseFocusedOutput{}, nil
	}

	uc.sessions.ReleaseWorkspace(ctx, ws)
	tabs.Remove(tab.ID)
	log.Info().
		Str("new_active", string(tabs.ActiveTabID)).
		Int("remaining", tabs.Count()).
		Msg("tab closed with its last pane")
	return &CloseFocusedOutput{ClosedTab: true}, nil
}

// HandleSessionExit closes the pane whose shell exited. The last pane of a
// workspace is kept so the tab never becomes empty. Reports whether a pane
// was closed.
func (uc *ManagePanesUseCase) HandleSessionExit(ctx context.Context, tabs *entity.TabList, sessionID entity.SessionID) (bool, error) {
	ctx = logging.WithSessionID(ctx, uint64(sessionID))
	log := logging.FromContext(ctx)
	log.Debug().Msg("handling session exit")

	if tabs == nil {
		return false, fmt.Errorf("tab list is required")
	}

	tab, paneID, ok := tabs.FindSession(sessionID)
	if !ok {
		log.Debug().Msg("exited session has no pane")
		return false, nil
	}
	if tab.Workspace.PaneCount() <= 1 {
		log.Debug().Str("tab_id", string(tab.ID)).Msg("keeping last pane after session exit")
		return false, nil
	}

	if err := uc.Close(ctx, tab.Workspace, paneID); err != nil {
		return false, err
	}
	return true, nil
}

// Move relocates source to the drop zone. Dropping the only pane of a
// workspace is ignored and reported as not moved.
func (uc *ManagePanesUseCase) Move(ctx context.Context, ws *entity.PaneWorkspace, source entity.PaneID, zone entity.DropZone) (bool, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Stringer("source_id", source).
		Stringer("target_id", zone.Target).
		Stringer("edge", zone.Edge).
		Msg("moving pane")

	if ws == nil {
		return false, fmt.Errorf("workspace is required")
	}

	if err := ws.MovePane(source, zone); err != nil {
		if errors.Is(err, entity.ErrLastPane) {
			log.Debug().Msg("ignoring drop of the only pane")
			return false, nil
		}
		return false, err
	}

	log.Info().
		Stringer("source_id", source).
		Stringer("target_id", zone.Target).
		Stringer("edge", zone.Edge).
		Msg("pane moved")
	return true, nil
}

// PaneDirectory is one sidebar entry: a terminal pane and where it is.
type PaneDirectory struct {
	PaneID      entity.PaneID
	Dir         string
	ProjectRoot string
	Focused     bool
}

// Directories lists the working directories of terminal panes in DFS
// order. It is a read-only projection of the tree.
func (uc *ManagePanesUseCase) Directories(ws *entity.PaneWorkspace) []PaneDirectory {
	if ws == nil {
		return nil
	}
	var dirs []PaneDirectory
	for id, pane := range ws.All() {
		if !pane.IsTerminal() || pane.CurrentDir == "" {
			continue
		}
		dirs = append(dirs, PaneDirectory{
			PaneID:      id,
			Dir:         pane.CurrentDir,
			ProjectRoot: pane.ProjectRoot,
			Focused:     id == ws.FocusedPaneID,
		})
	}
	return dirs
}

// PollIntervals sets how often shells are asked for their working directory.
type PollIntervals struct {
	Focused    time.Duration
	Background time.Duration
}

// PollDirectories refreshes CurrentDir and ProjectRoot of every terminal
// pane. The focused pane of the active tab is polled at the faster
// interval. Returns the panes of the active tab whose directory changed.
func (uc *ManagePanesUseCase) PollDirectories(ctx context.Context, tabs *entity.TabList, now time.Time, intervals PollIntervals) []entity.PaneID {
	if tabs == nil {
		return nil
	}
	log := logging.FromContext(ctx)

	var changed []entity.PaneID
	for _, tab := range tabs.Tabs {
		active := tab.ID == tabs.ActiveTabID
		for id, pane := range tab.Workspace.All() {
			if !pane.IsTerminal() {
				continue
			}
			interval := intervals.Background
			if active && id == tab.Workspace.FocusedPaneID {
				interval = intervals.Focused
			}
			dir, ok := uc.sessions.PollDir(pane.SessionID, now, interval)
			if !ok || dir == pane.CurrentDir {
				continue
			}
			pane.CurrentDir = dir
			pane.ProjectRoot = uc.projectRoot(ctx, dir)
			if active {
				changed = append(changed, id)
			}
			log.Debug().
				Stringer("pane_id", id).
				Str("dir", dir).
				Str("project_root", pane.ProjectRoot).
				Msg("pane directory changed")
		}
	}
	return changed
}

func (uc *ManagePanesUseCase) projectRoot(ctx context.Context, dir string) string {
	if uc.roots == nil {
		return ""
	}
	root, ok := uc.roots.DetectProjectRoot(ctx, dir)
	if !ok {
		return ""
	}
	return root
}
