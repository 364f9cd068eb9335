package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/vibeterm/internal/application/port"
	"github.com/bnema/vibeterm/internal/domain/entity"
	"github.com/bnema/vibeterm/internal/logging"
)

type sessionEntry struct {
	session port.TerminalSession
	tracker port.CwdTracker // nil when the PID could not be tracked
}

// SessionRegistry owns the terminal sessions backing panes, keyed by the
// SessionID stored in the pane content. It is used from the UI loop only.
type SessionRegistry struct {
	spawner     port.TerminalSpawner
	newTracker  port.CwdTrackerFactory
	shell       string
	sessions    map[entity.SessionID]*sessionEntry
	nextSession entity.SessionID
}

// NewSessionRegistry creates a registry spawning shells through spawner.
// newTracker may be nil, which disables directory tracking.
func NewSessionRegistry(spawner port.TerminalSpawner, newTracker port.CwdTrackerFactory, shell string) *SessionRegistry {
	return &SessionRegistry{
		spawner:     spawner,
		newTracker:  newTracker,
		shell:       shell,
		sessions:    make(map[entity.SessionID]*sessionEntry),
		nextSession: 1,
	}
}

// SpawnInput describes the terminal to start.
type SpawnInput struct {
	Dir  string
	Cols int
	Rows int
}

// Spawn starts a shell and returns pane content bound to it.
func (r *SessionRegistry) Spawn(ctx context.Context, input SpawnInput) (*entity.Pane, error) {
	id := r.nextSession
	r.nextSession++

	ctx = logging.WithSessionID(ctx, uint64(id))
	log := logging.FromContext(ctx)
	log.Debug().Str("dir", input.Dir).Msg("spawning terminal session")

	session, err := r.spawner.Spawn(ctx, port.SpawnOptions{
		SessionID: id,
		Dir:       input.Dir,
		Shell:     r.shell,
		Cols:      input.Cols,
		Rows:      input.Rows,
	})
	if err != nil {
		return nil, fmt.Errorf("spawn session %d: %w", id, err)
	}

	entry := &sessionEntry{session: session}
	if r.newTracker != nil {
		tracker, trackErr := r.newTracker(session.PID())
		if trackErr != nil {
			log.Warn().Err(trackErr).Int("pid", session.PID()).Msg("cwd tracking unavailable")
		} else {
			entry.tracker = tracker
		}
	}
	r.sessions[id] = entry

	log.Info().Int("pid", session.PID()).Msg("terminal session started")
	return entity.NewTerminalPane(id, input.Dir), nil
}

// Session returns the live session for id.
func (r *SessionRegistry) Session(id entity.SessionID) (port.TerminalSession, bool) {
	entry, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	return entry.session, true
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	return len(r.sessions)
}

// Release closes the session behind pane content, if any. File viewer
// panes own nothing and are ignored.
func (r *SessionRegistry) Release(ctx context.Context, pane *entity.Pane) {
	if !pane.IsTerminal() {
		return
	}
	entry, ok := r.sessions[pane.SessionID]
	if !ok {
		return
	}
	delete(r.sessions, pane.SessionID)

	log := logging.FromContext(ctx)
	if err := entry.session.Close(); err != nil {
		log.Warn().Err(err).Uint64("session_id", uint64(pane.SessionID)).Msg("failed to close session")
		return
	}
	log.Debug().Uint64("session_id", uint64(pane.SessionID)).Msg("session released")
}

// ReleaseWorkspace closes the sessions of every pane in ws.
func (r *SessionRegistry) ReleaseWorkspace(ctx context.Context, ws *entity.PaneWorkspace) {
	for _, pane := range ws.All() {
		r.Release(ctx, pane)
	}
}

// PollDir asks the session's tracker for a new working directory.
func (r *SessionRegistry) PollDir(id entity.SessionID, now time.Time, interval time.Duration) (string, bool) {
	entry, ok := r.sessions[id]
	if !ok || entry.tracker == nil {
		return "", false
	}
	entry.tracker.SetInterval(interval)
	return entry.tracker.Poll(now)
}

// CloseAll closes every session, used on shutdown.
func (r *SessionRegistry) CloseAll(ctx context.Context) {
	log := logging.FromContext(ctx)
	for id, entry := range r.sessions {
		if err := entry.session.Close(); err != nil {
			log.Warn().Err(err).Uint64("session_id", uint64(id)).Msg("failed to close session")
		}
		delete(r.sessions, id)
	}
}
