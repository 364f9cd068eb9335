// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vibeterm/internal/application/usecase"
	"github.com/bnema/vibeterm/internal/cli/styles"
	"github.com/bnema/vibeterm/internal/domain/entity"
	"github.com/bnema/vibeterm/internal/infrastructure/config"
	"github.com/bnema/vibeterm/internal/logging"
	"github.com/bnema/vibeterm/internal/ui/input"
)

const (
	tabBarHeight    = 1
	statusBarHeight = 1
	minPaneArea     = 20 // columns kept for panes before the sidebar hides
	scrollStep      = 3
	tabDragCols     = 2 // pointer travel before a tab press becomes a drag
	defaultCols     = 80
	defaultRows     = 24
)

// WorkspaceModelConfig holds the dependencies of the workspace model.
type WorkspaceModelConfig struct {
	Tabs      *usecase.ManageTabsUseCase
	Panes     *usecase.ManagePanesUseCase
	MoveToTab *usecase.MovePaneToTabUseCase
	Sessions  *usecase.SessionRegistry
	Exits     <-chan entity.SessionID
	Config    *config.Config

	// Dir is the working directory of the first shell.
	Dir string
	// Files are opened in viewer tabs after the first tab.
	Files []string
}

// frameState is shared by every copy of the model Bubble Tea hands around.
type frameState struct {
	layout   entity.ComputedLayout
	layoutWS *entity.PaneWorkspace
	bounds   entity.Rect
	valid    bool

	result     input.Result
	pointer    entity.Point
	buttonDown bool
	tabDrag    *tabDrag

	sizes map[entity.SessionID][2]int // last PTY size sent
}

// tabDrag is a press on a tab that may turn into a reorder.
type tabDrag struct {
	index  int
	startX int
	active bool
}

// WorkspaceModel is the Bubble Tea model of the multiplexer: a tab bar, the
// split panes of the active tab, a directory sidebar and a status bar.
type WorkspaceModel struct {
	// UI components
	help  help.Model
	keys  workspaceKeyMap
	theme *styles.Theme

	// State
	tabs          *entity.TabList
	ctrl          *input.Controller[*entity.Pane]
	state         *frameState
	width         int
	height        int
	showHelp      bool
	showSidebar   bool
	statusMessage string

	// Config
	cfg *config.Config

	// Dependencies
	ctx      context.Context
	tabsUC   *usecase.ManageTabsUseCase
	panesUC  *usecase.ManagePanesUseCase
	moveUC   *usecase.MovePaneToTabUseCase
	sessions *usecase.SessionRegistry
	exits    <-chan entity.SessionID
}

// NewWorkspaceModel creates the model and starts the first shell.
func NewWorkspaceModel(ctx context.Context, cfg WorkspaceModelConfig) (WorkspaceModel, error) {
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = config.DefaultConfig()
	}
	theme := styles.NewTheme(appCfg)

	m := WorkspaceModel{
		help:        styles.NewHelp(theme),
		keys:        defaultWorkspaceKeyMap(),
		theme:       theme,
		tabs:        entity.NewTabList(),
		state:       &frameState{sizes: make(map[entity.SessionID][2]int)},
		showSidebar: appCfg.UI.ShowSidebar,
		cfg:         appCfg,
		ctx:         logging.WithComponent(ctx, "tui"),
		tabsUC:      cfg.Tabs,
		panesUC:     cfg.Panes,
		moveUC:      cfg.MoveToTab,
		sessions:    cfg.Sessions,
		exits:       cfg.Exits,
	}
	m.ctrl = m.newController(appCfg)

	if _, err := m.tabsUC.Create(m.ctx, usecase.CreateTabInput{
		TabList: m.tabs,
		Dir:     cfg.Dir,
		Cols:    defaultCols,
		Rows:    defaultRows,
	}); err != nil {
		return WorkspaceModel{}, fmt.Errorf("create first tab: %w", err)
	}

	log := logging.FromContext(m.ctx)
	for _, path := range cfg.Files {
		if _, err := m.tabsUC.OpenFile(m.ctx, usecase.OpenFileInput{TabList: m.tabs, Path: path}); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("cannot open file")
			m.statusMessage = err.Error()
		}
	}
	return m, nil
}

func controllerOptions(cfg *config.Config) input.Options {
	return input.Options{
		DragThreshold:  cfg.Layout.DragThreshold,
		DividerWidth:   float64(cfg.Layout.DividerWidth),
		EdgeRatio:      cfg.Layout.DropZoneEdgeRatio,
		HighlightRatio: cfg.Layout.HighlightRatio,
	}
}

// newController builds the drag controller. Drops go through the pane use
// case.
func (m WorkspaceModel) newController(cfg *config.Config) *input.Controller[*entity.Pane] {
	ctrl := input.NewController[*entity.Pane](controllerOptions(cfg))
	panes, ctx := m.panesUC, m.ctx
	ctrl.SetMover(func(ws *entity.PaneWorkspace, source entity.PaneID, zone entity.DropZone) (bool, error) {
		return panes.Move(ctx, ws, source, zone)
	})
	return ctrl
}

// Tabs returns the tab list driven by the model.
func (m WorkspaceModel) Tabs() *entity.TabList {
	return m.tabs
}

// Init starts the exit listener and the refresh ticker.
func (m WorkspaceModel) Init() tea.Cmd {
	return tea.Batch(waitForExit(m.exits), tick())
}

// Update handles messages.
func (m WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncSessionSizes()
	return next, cmd
}

func (m WorkspaceModel) update(msg tea.Msg) (WorkspaceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.invalidate()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case sessionExitMsg:
		m.handleExit(msg.ID)
		return m, waitForExit(m.exits)

	case tickMsg:
		m.panesUC.PollDirectories(m.ctx, m.tabs, time.Time(msg), usecase.PollIntervals{
			Focused:    m.cfg.Terminal.FocusedPollInterval(),
			Background: m.cfg.Terminal.BackgroundPollInterval(),
		})
		return m, tick()

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}

	return m, nil
}

func (m WorkspaceModel) handleKey(msg tea.KeyMsg) (WorkspaceModel, tea.Cmd) {
	m.statusMessage = ""
	ws := m.workspace()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sessions.CloseAll(m.ctx)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.ToggleSidebar):
		m.showSidebar = !m.showSidebar
		m.invalidate()
	case key.Matches(msg, m.keys.NewTab):
		m.newTab()
	case key.Matches(msg, m.keys.ClosePane):
		m.closeFocused()
	case key.Matches(msg, m.keys.SplitHorizontal):
		m.split(entity.SplitHorizontal)
	case key.Matches(msg, m.keys.SplitVertical):
		m.split(entity.SplitVertical)
	case key.Matches(msg, m.keys.FocusNext):
		ws.FocusNext()
	case key.Matches(msg, m.keys.FocusPrev):
		ws.FocusPrev()
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Prev()
	case key.Matches(msg, m.keys.MoveTabLeft):
		m.moveTab(m.tabs.ActiveIndex(), m.tabs.ActiveIndex()-1)
	case key.Matches(msg, m.keys.MoveTabRight):
		m.moveTab(m.tabs.ActiveIndex(), m.tabs.ActiveIndex()+1)
	case key.Matches(msg, m.keys.MoveToNewTab):
		m.movePaneToTab("")
	case key.Matches(msg, m.keys.MoveToNextTab):
		if m.tabs.Count() < 2 {
			m.statusMessage = "no other tab"
			break
		}
		next := m.tabs.Tabs[(m.tabs.ActiveIndex()+1)%m.tabs.Count()]
		m.movePaneToTab(next.ID)
	case msg.Type == tea.KeyEsc && m.dragging():
		m.frame(input.Frame{Pointer: m.state.pointer, Down: m.state.buttonDown, Escape: true})
	case m.showHelp && msg.Type == tea.KeyEsc:
		m.showHelp = false
	default:
		m.forwardKey(msg)
	}
	return m, nil
}

func (m WorkspaceModel) dragging() bool {
	_, ok := m.ctrl.PaneDrag()
	return ok
}

// forwardKey sends the key to the focused shell.
func (m *WorkspaceModel) forwardKey(msg tea.KeyMsg) {
	pane := m.workspace().Focused()
	if !pane.IsTerminal() {
		return
	}
	data := keyToBytes(msg)
	if len(data) == 0 {
		return
	}
	session, ok := m.sessions.Session(pane.SessionID)
	if !ok {
		return
	}
	if _, err := session.Write(data); err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Uint64("session_id", uint64(pane.SessionID)).Msg("write to shell failed")
	}
}

func (m *WorkspaceModel) handleMouse(msg tea.MouseMsg) {
	onTabBar := msg.Y < tabBarHeight
	p := entity.Point{X: float64(msg.X - m.sidebarCols()), Y: float64(msg.Y - tabBarHeight)}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if !onTabBar {
			m.scroll(p, msg.Button == tea.MouseButtonWheelDown)
		}
		return
	}

	f := input.Frame{Pointer: p}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.state.buttonDown = true
		if onTabBar {
			m.pressTab(msg.X)
			return
		}
		f.Pressed = true
	case tea.MouseActionRelease:
		// Releases always reach the controller so no gesture outlives the
		// button, wherever it went up.
		m.state.buttonDown = false
		m.releaseTab(msg.X, onTabBar)
		f.Released = true
	case tea.MouseActionMotion:
		if m.state.tabDrag != nil {
			m.dragTab(msg.X)
			return
		}
	}
	f.Down = m.state.buttonDown
	m.frame(f)
}

func (m *WorkspaceModel) pressTab(x int) {
	_, spans := m.tabBar()
	i, ok := styles.HitTab(spans, x)
	if !ok {
		return
	}
	m.tabs.Activate(i)
	m.state.tabDrag = &tabDrag{index: i, startX: x}
}

func (m *WorkspaceModel) dragTab(x int) {
	drag := m.state.tabDrag
	if !drag.active && abs(x-drag.startX) >= tabDragCols {
		drag.active = true
	}
}

// releaseTab drops a dragged tab on the tab under x.
func (m *WorkspaceModel) releaseTab(x int, onTabBar bool) {
	drag := m.state.tabDrag
	m.state.tabDrag = nil
	if drag == nil || !drag.active || !onTabBar {
		return
	}
	_, spans := m.tabBar()
	target, ok := styles.HitTab(spans, x)
	if !ok {
		return
	}
	m.moveTab(drag.index, target)
}

func (m *WorkspaceModel) moveTab(from, to int) {
	if from == to || from < 0 || from >= m.tabs.Count() || to < 0 || to >= m.tabs.Count() {
		return
	}
	tab := m.tabs.Tabs[from]
	if err := m.tabsUC.Move(m.ctx, m.tabs, tab.ID, to); err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Str("tab_id", string(tab.ID)).Msg("cannot move tab")
		m.statusMessage = err.Error()
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// frame runs one input frame through the drag controller.
func (m *WorkspaceModel) frame(f input.Frame) {
	layout := m.layout()
	m.state.pointer = f.Pointer
	res := m.ctrl.Update(m.workspace(), m.tabs.ActiveIndex(), m.state.bounds, layout, f)
	m.state.result = res
	if res.LayoutChanged {
		m.state.layout = res.Layout
	}
	if res.Moved {
		logging.FromContext(m.ctx).Debug().
			Stringer("pane_id", m.workspace().FocusedPaneID).
			Msg("pane moved by drag")
	}
}

func (m *WorkspaceModel) scroll(p entity.Point, down bool) {
	id, ok := m.layout().PaneAt(p)
	if !ok {
		return
	}
	pane, _ := m.workspace().ContentOf(id)
	if pane == nil || pane.Kind != entity.PaneFileViewer {
		return
	}
	if down {
		pane.ScrollOffset += scrollStep
	} else {
		pane.ScrollOffset = max(pane.ScrollOffset-scrollStep, 0)
	}
	lines := strings.Count(pane.FileText, "\n")
	pane.ScrollOffset = min(pane.ScrollOffset, float64(lines))
}

func (m *WorkspaceModel) handleExit(id entity.SessionID) {
	log := logging.FromContext(m.ctx)
	closed, err := m.panesUC.HandleSessionExit(m.ctx, m.tabs, id)
	if err != nil {
		log.Warn().Err(err).Uint64("session_id", uint64(id)).Msg("failed to handle shell exit")
		return
	}
	if closed {
		m.invalidate()
		return
	}
	if _, _, ok := m.tabs.FindSession(id); ok {
		m.statusMessage = fmt.Sprintf("shell #%d exited", id)
	}
}

func (m *WorkspaceModel) newTab() {
	dir := ""
	if pane := m.workspace().Focused(); pane.IsTerminal() {
		dir = pane.CurrentDir
	}
	cols, rows := m.paneCells(m.state.bounds)
	if _, err := m.tabsUC.Create(m.ctx, usecase.CreateTabInput{
		TabList: m.tabs,
		Dir:     dir,
		Cols:    cols,
		Rows:    rows,
	}); err != nil {
		m.statusMessage = err.Error()
	}
}

func (m *WorkspaceModel) split(dir entity.SplitDirection) {
	ws := m.workspace()
	focused := m.layout().Panes[ws.FocusedPaneID]
	half, _, _ := entity.SplitRect(focused, dir, entity.DefaultSplitRatio, m.dividerWidth())
	cols, rows := m.paneCells(half)

	if _, err := m.panesUC.Split(m.ctx, usecase.SplitPaneInput{
		Workspace: ws,
		Direction: dir,
		Cols:      cols,
		Rows:      rows,
	}); err != nil {
		m.statusMessage = err.Error()
		return
	}
	m.invalidate()
}

func (m *WorkspaceModel) closeFocused() {
	out, err := m.panesUC.CloseFocused(m.ctx, m.tabs)
	if err != nil {
		m.statusMessage = err.Error()
		return
	}
	if !out.ClosedPane && !out.ClosedTab {
		m.statusMessage = "last pane of the last tab stays open"
		return
	}
	m.invalidate()
}

func (m *WorkspaceModel) movePaneToTab(target entity.TabID) {
	tab := m.tabs.ActiveTab()
	if tab == nil {
		return
	}
	_, err := m.moveUC.Execute(usecase.MovePaneToTabInput{
		TabList:      m.tabs,
		SourceTabID:  tab.ID,
		SourcePaneID: tab.Workspace.FocusedPaneID,
		TargetTabID:  target,
	})
	if err != nil {
		m.statusMessage = err.Error()
		return
	}
	m.invalidate()
}

func (m *WorkspaceModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.cfg = cfg
	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewHelp(m.theme)
	m.help.Width = m.width
	m.ctrl = m.newController(cfg)
	m.showSidebar = cfg.UI.ShowSidebar
	m.invalidate()
	logging.FromContext(m.ctx).Info().Msg("configuration applied")
}

// workspace returns the workspace of the active tab.
func (m WorkspaceModel) workspace() *entity.PaneWorkspace {
	return m.tabs.ActiveTab().Workspace
}

func (m WorkspaceModel) dividerWidth() float64 {
	return float64(m.cfg.Layout.DividerWidth)
}

func (m WorkspaceModel) sidebarCols() int {
	w := m.cfg.UI.SidebarWidth
	if !m.showSidebar || m.width < w+minPaneArea {
		return 0
	}
	return w
}

func (m WorkspaceModel) bodyBounds() entity.Rect {
	return entity.Rect{
		W: float64(max(m.width-m.sidebarCols(), 0)),
		H: float64(max(m.height-tabBarHeight-statusBarHeight, 0)),
	}
}

func (m *WorkspaceModel) invalidate() {
	m.state.valid = false
}

// layout returns the geometry of the active workspace, recomputed only when
// the workspace, the viewport or the tree changed.
func (m WorkspaceModel) layout() entity.ComputedLayout {
	ws := m.workspace()
	bounds := m.bodyBounds()
	if !m.state.valid || m.state.layoutWS != ws || m.state.bounds != bounds {
		m.state.layout = ws.Layout(bounds, m.dividerWidth())
		m.state.layoutWS = ws
		m.state.bounds = bounds
		m.state.valid = true
	}
	return m.state.layout
}

// paneCells returns the PTY size of a pane occupying r.
func (m WorkspaceModel) paneCells(r entity.Rect) (int, int) {
	c := toCells(r)
	cols, rows := c.W()-2, c.H()-2
	if cols < 1 || rows < 1 {
		return defaultCols, defaultRows
	}
	return cols, rows
}

// syncSessionSizes resizes the PTYs of the active tab to their panes.
func (m WorkspaceModel) syncSessionSizes() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	layout := m.layout()
	log := logging.FromContext(m.ctx)
	for id, pane := range m.workspace().All() {
		if !pane.IsTerminal() {
			continue
		}
		cols, rows := m.paneCells(layout.Panes[id])
		size := [2]int{cols, rows}
		if m.state.sizes[pane.SessionID] == size {
			continue
		}
		session, ok := m.sessions.Session(pane.SessionID)
		if !ok {
			continue
		}
		if err := session.Resize(cols, rows); err != nil {
			log.Debug().Err(err).Uint64("session_id", uint64(pane.SessionID)).Msg("pty resize failed")
			continue
		}
		m.state.sizes[pane.SessionID] = size
	}
}

// View renders the model.
func (m WorkspaceModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	tabBar, _ := m.tabBar()
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, m.renderBody(), m.renderStatusBar())
}

func (m WorkspaceModel) tabBar() (string, []styles.TabSpan) {
	titles := make([]string, 0, m.tabs.Count())
	for _, tab := range m.tabs.Tabs {
		titles = append(titles, tab.Title())
	}
	tabs := styles.NewTabs(m.theme, titles...)
	tabs.SetActive(m.tabs.ActiveIndex())
	return tabs.View(m.width)
}

func (m WorkspaceModel) renderBody() string {
	bounds := m.bodyBounds()
	w, h := int(bounds.W), int(bounds.H)

	var panes string
	if m.showHelp {
		panes = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		panes = m.renderPanes(w, h)
	}

	if sw := m.sidebarCols(); sw > 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(sw, h), panes)
	}
	return panes
}

func (m WorkspaceModel) renderPanes(w, h int) string {
	ws := m.workspace()
	layout := m.layout()

	c := newCanvas(w, h, m.theme.Normal)
	border := c.addStyle(m.theme.PaneBorder)
	focused := c.addStyle(m.theme.PaneFocused)
	title := c.addStyle(m.theme.PaneTitle)
	divider := c.addStyle(m.theme.DividerStyle)
	drop := c.addStyle(m.theme.DropZone)
	ghost := c.addStyle(m.theme.Ghost)
	muted := c.addStyle(m.theme.Subtle)

	for _, d := range layout.Dividers {
		ch := '│'
		if d.Dir == entity.SplitVertical {
			ch = '─'
		}
		c.fill(toCells(d.Rect), ch, divider)
	}

	for _, id := range layout.PaneOrder {
		r := toCells(layout.Panes[id])
		pane, _ := ws.ContentOf(id)
		style := border
		if id == ws.FocusedPaneID {
			style = focused
		}
		c.box(r, style)
		if r.W() > 4 {
			c.text(r.X0+2, r.Y0, r.W()-4, " "+pane.Title()+" ", title)
		}
		rows := r.H() - 2
		for i, line := range m.paneLines(pane, rows) {
			c.text(r.X0+1, r.Y0+1+i, r.W()-2, line, 0)
		}
		if pane.IsTerminal() {
			if _, ok := m.sessions.Session(pane.SessionID); !ok && rows > 0 {
				c.text(r.X0+1, r.Y1-2, r.W()-2, "[exited]", muted)
			}
		}
	}

	if drag, ok := m.ctrl.PaneDrag(); ok && drag.Active {
		res := m.state.result
		if res.HasHighlight {
			c.fill(toCells(res.Highlight), '░', drop)
		}
		if res.HasGhost {
			c.box(toCells(res.Ghost), ghost)
		}
	}

	return c.render()
}

// paneLines returns up to rows lines of pane content.
func (m WorkspaceModel) paneLines(pane *entity.Pane, rows int) []string {
	if rows <= 0 || pane == nil {
		return nil
	}
	switch pane.Kind {
	case entity.PaneFileViewer:
		lines := strings.Split(pane.FileText, "\n")
		start := min(int(pane.ScrollOffset), len(lines))
		return lines[start:min(start+rows, len(lines))]
	default:
		session, ok := m.sessions.Session(pane.SessionID)
		if !ok {
			return nil
		}
		return session.Tail(rows)
	}
}

func (m WorkspaceModel) renderSidebar(width, height int) string {
	lines := []string{m.theme.SidebarHeader.Render(styles.IconFolder + " DIRECTORIES")}
	for _, d := range m.panesUC.Directories(m.workspace()) {
		name := filepath.Base(d.Dir)
		if d.ProjectRoot != "" && d.ProjectRoot != d.Dir {
			name = filepath.Base(d.ProjectRoot) + "/" + name
		}
		style := m.theme.SidebarItem
		marker := "  "
		if d.Focused {
			style = m.theme.SidebarActive
			marker = "▸ "
		}
		lines = append(lines, style.Render(marker+name))
	}

	return lipgloss.NewStyle().
		Width(width-1).
		Height(height).
		MaxHeight(height).
		MaxWidth(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(m.theme.Border).
		Render(strings.Join(lines, "\n"))
}

func (m WorkspaceModel) renderStatusBar() string {
	ws := m.workspace()
	ids := ws.PaneIDs()
	left := fmt.Sprintf(" %s %s  %s %d/%d  %s %d/%d",
		styles.IconTerminal, ws.Focused().Title(),
		styles.IconPane, slices.Index(ids, ws.FocusedPaneID)+1, len(ids),
		styles.IconTab, m.tabs.ActiveIndex()+1, m.tabs.Count(),
	)
	if m.statusMessage != "" {
		left += "  " + m.theme.ErrorStyle.Render(m.statusMessage)
	}

	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap >= 1 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return m.theme.StatusBar.Width(m.width).MaxWidth(m.width).Render(line)
}
