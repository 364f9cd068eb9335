package xdg

import (
	"github.com/bnema/vibeterm/internal/application/port"
	"github.com/bnema/vibeterm/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) LogFile() (string, error) {
	return config.GetLogFile()
}

var _ port.XDGPaths = (*Adapter)(nil)
