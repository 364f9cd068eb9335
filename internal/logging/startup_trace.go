package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace records milestones from launch to the first frame. It only
// logs when the logger is at debug level or below. Not safe for concurrent
// use.
type StartupTrace struct {
	t0         time.Time
	last       time.Duration
	logger     *zerolog.Logger
	milestones []string
	finished   bool
}

// NewStartupTrace starts a trace at now.
func NewStartupTrace(logger *zerolog.Logger) *StartupTrace {
	return &StartupTrace{t0: time.Now(), logger: logger}
}

// Enabled returns whether milestones are logged.
func (st *StartupTrace) Enabled() bool {
	return st != nil && st.logger != nil && st.logger.GetLevel() <= zerolog.DebugLevel
}

// Mark records a milestone.
func (st *StartupTrace) Mark(name string) {
	if !st.Enabled() || st.finished {
		return
	}
	elapsed := time.Since(st.t0)
	delta := elapsed - st.last
	st.last = elapsed
	st.milestones = append(st.milestones, fmt.Sprintf("%s:%d", name, elapsed.Milliseconds()))

	st.logger.Debug().
		Str("milestone", name).
		Int64("t_ms", elapsed.Milliseconds()).
		Int64("delta_ms", delta.Milliseconds()).
		Msgf("startup_trace: %s (T+%dms)", name, elapsed.Milliseconds())
}

// Finish emits the summary. Later marks are ignored.
func (st *StartupTrace) Finish() {
	if !st.Enabled() || st.finished {
		return
	}
	st.finished = true
	st.logger.Info().
		Int64("total_ms", time.Since(st.t0).Milliseconds()).
		Str("milestones", strings.Join(st.milestones, ",")).
		Msg("startup_trace: start complete")
}
