package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/bnema/vibeterm/internal/application/port"
	"github.com/bnema/vibeterm/internal/application/port/mocks"
	"github.com/bnema/vibeterm/internal/domain/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testEnv wires a SessionRegistry to a mock spawner that hands out one
// mock session per spawn.
type testEnv struct {
	ctrl     *gomock.Controller
	spawner  *mocks.MockTerminalSpawner
	sessions map[entity.SessionID]*mocks.MockTerminalSession
	trackers map[int]*mocks.MockCwdTracker
	spawned  []port.SpawnOptions
	registry *SessionRegistry
}

func newTestEnv(t *testing.T, withTrackers bool) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		ctrl:     ctrl,
		spawner:  mocks.NewMockTerminalSpawner(ctrl),
		sessions: make(map[entity.SessionID]*mocks.MockTerminalSession),
		trackers: make(map[int]*mocks.MockCwdTracker),
	}

	env.spawner.EXPECT().Spawn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts port.SpawnOptions) (port.TerminalSession, error) {
			session := mocks.NewMockTerminalSession(ctrl)
			session.EXPECT().ID().Return(opts.SessionID).AnyTimes()
			session.EXPECT().PID().Return(1000 + int(opts.SessionID)).AnyTimes()
			env.sessions[opts.SessionID] = session
			env.spawned = append(env.spawned, opts)
			return session, nil
		}).AnyTimes()

	var factory port.CwdTrackerFactory
	if withTrackers {
		factory = func(pid int) (port.CwdTracker, error) {
			tracker := mocks.NewMockCwdTracker(ctrl)
			env.trackers[pid] = tracker
			return tracker, nil
		}
	}
	env.registry = NewSessionRegistry(env.spawner, factory, "/bin/sh")
	return env
}

// terminal spawns a terminal pane in dir.
func (env *testEnv) terminal(t *testing.T, dir string) *entity.Pane {
	t.Helper()
	pane, err := env.registry.Spawn(context.Background(), SpawnInput{Dir: dir, Cols: 80, Rows: 24})
	require.NoError(t, err)
	return pane
}

// expectClose expects the session to be closed exactly once.
func (env *testEnv) expectClose(ids ...entity.SessionID) {
	for _, id := range ids {
		env.sessions[id].EXPECT().Close().Return(nil)
	}
}

func newTestIDGen() func() string {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("id%d", counter)
	}
}
