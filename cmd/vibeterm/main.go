// Command vibeterm is a split pane terminal with tabs.
package main

import (
	"runtime"

	"github.com/bnema/vibeterm/internal/cli/cmd"
	"github.com/bnema/vibeterm/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
