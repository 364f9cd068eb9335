package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/vibeterm/internal/domain/entity"
	"github.com/bnema/vibeterm/internal/infrastructure/config"
)

// refreshInterval paces pane preview redraws and cwd polling.
const refreshInterval = 100 * time.Millisecond

type sessionExitMsg struct {
	ID entity.SessionID
}

type tickMsg time.Time

// ConfigChangedMsg carries a reloaded configuration into the program.
type ConfigChangedMsg struct {
	Config *config.Config
}

// waitForExit turns the next shell exit into a message. The model
// reschedules it after every exit.
func waitForExit(exits <-chan entity.SessionID) tea.Cmd {
	if exits == nil {
		return nil
	}
	return func() tea.Msg {
		id, ok := <-exits
		if !ok {
			return nil
		}
		return sessionExitMsg{ID: id}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
