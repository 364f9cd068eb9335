package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/vibeterm/internal/application/usecase"
	"github.com/bnema/vibeterm/internal/cli/model"
	"github.com/bnema/vibeterm/internal/infrastructure/cache"
	"github.com/bnema/vibeterm/internal/infrastructure/config"
	"github.com/bnema/vibeterm/internal/infrastructure/filesystem"
	"github.com/bnema/vibeterm/internal/infrastructure/pty"
	"github.com/bnema/vibeterm/internal/logging"
)

var runDir string

const (
	rootCacheSize = 256
	rootCacheTTL  = 30 * time.Second
)

var runCmd = &cobra.Command{
	Use:   "run [file...]",
	Short: "Start the terminal",
	Long: `Start vibeterm in the current terminal.

The first tab holds a shell started in --dir (default: the current
directory). Each file argument opens in its own read-only viewer tab.

Examples:
  vibeterm run                    # One shell in the current directory
  vibeterm run --dir ~/src        # Start in ~/src
  vibeterm run notes.md TODO      # Shell plus two viewer tabs`,
	RunE: runTerminal,
}

func init() {
	rootCmd.AddCommand(runCmd)
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().StringVarP(&runDir, "dir", "d", "", "working directory of the first shell")
	}
}

func runTerminal(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, cancel := context.WithCancel(logging.WithComponent(app.Ctx(), "run"))
	defer cancel()
	log := logging.FromContext(ctx)
	trace := logging.NewStartupTrace(log)
	cfg := app.Config

	dir := runDir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}

	spawner := pty.NewSpawner(ctx, cfg.Terminal.ExitBuffer)
	sessions := usecase.NewSessionRegistry(spawner, pty.NewTracker, cfg.Terminal.Shell)
	defer sessions.CloseAll(ctx)

	files := filesystem.New()
	roots := filesystem.NewCachedRootDetector(files, cache.NewLRU[string, filesystem.RootLookup](rootCacheSize, rootCacheTTL))
	m, err := model.NewWorkspaceModel(ctx, model.WorkspaceModelConfig{
		Tabs:      usecase.NewManageTabsUseCase(uuid.NewString, sessions, files),
		Panes:     usecase.NewManagePanesUseCase(sessions, roots),
		MoveToTab: usecase.NewMovePaneToTabUseCase(uuid.NewString),
		Sessions:  sessions,
		Exits:     spawner.Exits(),
		Config:    cfg,
		Dir:       dir,
		Files:     args,
	})
	if err != nil {
		return err
	}
	trace.Mark("workspace_ready")

	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(c *config.Config) {
			program.Send(model.ConfigChangedMsg{Config: c})
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer logging.LogPanic(log)
		defer cancel()
		_, runErr := program.Run()
		if errors.Is(runErr, tea.ErrProgramKilled) {
			return nil
		}
		return runErr
	})
	g.Go(func() error {
		defer logging.LogPanic(log)
		sigCtx, stop := signal.NotifyContext(gctx, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()
		<-sigCtx.Done()
		if gctx.Err() == nil {
			log.Info().Msg("signal received, quitting")
		}
		program.Quit()
		return nil
	})

	log.Info().Str("dir", dir).Int("files", len(args)).Msg("terminal started")
	trace.Finish()
	if err := g.Wait(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	log.Info().Msg("terminal stopped")
	return nil
}
