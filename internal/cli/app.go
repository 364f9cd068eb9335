// Package cli wires vibeterm's commands to configuration, logging and the
// terminal UI.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/vibeterm/internal/application/port"
	"github.com/bnema/vibeterm/internal/cli/styles"
	"github.com/bnema/vibeterm/internal/domain/build"
	"github.com/bnema/vibeterm/internal/infrastructure/config"
	"github.com/bnema/vibeterm/internal/infrastructure/xdg"
	"github.com/bnema/vibeterm/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	// Manager is nil when the configuration could not be loaded; Config then
	// holds the defaults.
	Manager   *config.Manager
	LoadErr   error
	Theme     *styles.Theme
	BuildInfo build.Info
	Paths     port.XDGPaths

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// Options controls how the app is initialized.
type Options struct {
	// LogToFile sends logs to the log file instead of stderr. Set for the
	// interactive UI, which owns the terminal.
	LogToFile bool
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	paths := xdg.New()
	mgr, cfg, loadErr := loadConfig()

	logCfg := logging.DefaultConfig()
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	logCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
	logCfg.MaxBackups = cfg.Logging.MaxBackups
	if lvl, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
		logCfg.Level = lvl
	}
	if opts.LogToFile {
		logCfg.File = cfg.Logging.File
		if logCfg.File == "" {
			logCfg.File, _ = paths.LogFile()
		}
	} else if logCfg.Level < zerolog.WarnLevel {
		// Command output goes to the same terminal; keep it readable.
		logCfg.Level = zerolog.WarnLevel
	}

	logger, closer, err := newLogger(logCfg)
	if err != nil {
		// Logging must not keep the terminal from starting.
		logger = zerolog.Nop()
	}
	logger = logger.With().Str("run_id", logging.GenerateRunID()).Logger()
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}
	logger.Debug().Str("log_file", logCfg.File).Msg("app initialized")

	return &App{
		Config:    cfg,
		Manager:   mgr,
		LoadErr:   loadErr,
		Theme:     styles.NewTheme(cfg),
		Paths:     paths,
		ctx:       ctx,
		logCloser: closer,
	}, nil
}

func newLogger(cfg logging.Config) (zerolog.Logger, io.Closer, error) {
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), io.NopCloser(nil), err
		}
	}
	return logging.New(cfg)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// the defaults.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}
