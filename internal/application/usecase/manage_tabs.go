package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/vibeterm/internal/application/port"
	"github.com/bnema/vibeterm/internal/domain/entity"
	"github.com/bnema/vibeterm/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageTabsUseCase handles tab lifecycle operations.
type ManageTabsUseCase struct {
	idGenerator IDGenerator
	sessions    *SessionRegistry
	files       port.FileSystem
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(idGenerator IDGenerator, sessions *SessionRegistry, files port.FileSystem) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		idGenerator: idGenerator,
		sessions:    sessions,
		files:       files,
	}
}

// CreateTabInput contains parameters for creating a new tab.
type CreateTabInput struct {
	TabList *entity.TabList
	Name    string // Optional custom name
	Dir     string // Working directory of the initial shell
	Cols    int
	Rows    int
}

// CreateTabOutput contains the result of tab creation.
type CreateTabOutput struct {
	Tab *entity.Tab
}

// Create creates a new tab whose workspace holds one terminal pane.
func (uc *ManageTabsUseCase) Create(ctx context.Context, input CreateTabInput) (*CreateTabOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("name", input.Name).
		Str("dir", input.Dir).
		Msg("creating new tab")

	if input.TabList == nil {
		return nil, fmt.Errorf("tab list is required")
	}

	pane, err := uc.sessions.Spawn(ctx, SpawnInput{Dir: input.Dir, Cols: input.Cols, Rows: input.Rows})
	if err != nil {
		return nil, err
	}

	tab := uc.addTab(input.TabList, input.Name, pane)

	log.Info().
		Str("tab_id", string(tab.ID)).
		Str("workspace_id", string(tab.Workspace.ID)).
		Int("position", tab.Position).
		Msg("tab created")

	return &CreateTabOutput{Tab: tab}, nil
}

func (uc *ManageTabsUseCase) addTab(tabs *entity.TabList, name string, pane *entity.Pane) *entity.Tab {
	if name == "" {
		name = fmt.Sprintf("Tab %d", tabs.Count()+1)
	}
	tabID := entity.TabID(uc.idGenerator())
	workspaceID := entity.WorkspaceID(uc.idGenerator())
	tab := entity.NewTab(tabID, workspaceID, name, pane)
	tabs.Add(tab)
	return tab
}

// OpenFileInput contains parameters for opening a file viewer tab.
type OpenFileInput struct {
	TabList *entity.TabList
	Path    string
}

// OpenFile reads a file and opens it read-only in a new tab.
func (uc *ManageTabsUseCase) OpenFile(ctx context.Context, input OpenFileInput) (*CreateTabOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("path", input.Path).Msg("opening file")

	if input.TabList == nil {
		return nil, fmt.Errorf("tab list is required")
	}
	if uc.files == nil {
		return nil, fmt.Errorf("file system is required")
	}

	isDir, err := uc.files.IsDirectory(ctx, input.Path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", input.Path, err)
	}
	if isDir {
		return nil, fmt.Errorf("cannot open directory %s", input.Path)
	}

	data, err := uc.files.ReadFile(ctx, input.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input.Path, err)
	}

	tab := uc.addTab(input.TabList, filepath.Base(input.Path), entity.NewFilePane(input.Path, string(data)))

	log.Info().
		Str("tab_id", string(tab.ID)).
		Int("bytes", len(data)).
		Msg("file opened")

	return &CreateTabOutput{Tab: tab}, nil
}

// Close removes a tab and releases the sessions of its panes. The last tab
// cannot be closed.
func (uc *ManageTabsUseCase) Close(ctx context.Context, tabs *entity.TabList, tabID entity.TabID) error {
	ctx = logging.WithTabID(ctx, string(tabID))
	log := logging.FromContext(ctx)

	log.Debug().Msg("closing tab")

	if tabs == nil {
		return fmt.Errorf("tab list is required")
	}

	tab := tabs.Find(tabID)
	if tab == nil {
		return fmt.Errorf("close %s: %w", tabID, ErrTabNotFound)
	}
	if tabs.Count() == 1 {
		return ErrLastTab
	}

	uc.sessions.ReleaseWorkspace(ctx, tab.Workspace)
	if !tabs.Remove(tabID) {
		return fmt.Errorf("failed to remove tab")
	}

	log.Info().
		Str("new_active", string(tabs.ActiveTabID)).
		Int("remaining", tabs.Count()).
		Msg("tab closed")

	return nil
}

// Move moves a tab to a new position in the tab bar.
func (uc *ManageTabsUseCase) Move(ctx context.Context, tabs *entity.TabList, tabID entity.TabID, newPos int) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("tab_id", string(tabID)).
		Int("new_position", newPos).
		Msg("moving tab")

	if tabs == nil {
		return fmt.Errorf("tab list is required")
	}
	if tabs.Find(tabID) == nil {
		return fmt.Errorf("move %s: %w", tabID, ErrTabNotFound)
	}
	if !tabs.Move(tabID, newPos) {
		return fmt.Errorf("invalid tab position %d", newPos)
	}

	log.Info().
		Str("tab_id", string(tabID)).
		Int("position", newPos).
		Msg("tab moved")
	return nil
}
