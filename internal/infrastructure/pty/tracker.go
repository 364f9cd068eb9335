package pty

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/bnema/vibeterm/internal/application/port"
)

// Tracker reads the working directory of a shell process, at most once
// per interval.
type Tracker struct {
	cwd      func() (string, error)
	interval time.Duration
	lastPoll time.Time
	dir      string
}

// NewTracker creates a tracker for pid. It matches port.CwdTrackerFactory.
func NewTracker(pid int) (port.CwdTracker, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return nil, fmt.Errorf("track process %d: %w", pid, err)
	}
	return newTracker(proc.Cwd), nil
}

func newTracker(cwd func() (string, error)) *Tracker {
	return &Tracker{cwd: cwd, interval: time.Second}
}

// SetInterval changes how often Poll queries the process.
func (t *Tracker) SetInterval(d time.Duration) {
	t.interval = d
}

// Poll returns the working directory when the interval has elapsed and the
// directory differs from the last one seen.
func (t *Tracker) Poll(now time.Time) (string, bool) {
	if !t.lastPoll.IsZero() && now.Sub(t.lastPoll) < t.interval {
		return "", false
	}
	t.lastPoll = now

	dir, err := t.cwd()
	if err != nil || dir == "" || dir == t.dir {
		return "", false
	}
	t.dir = dir
	return dir, true
}

var _ port.CwdTracker = (*Tracker)(nil)
