package logging

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// LogPanic logs a panic with its stack and re-panics. Use with defer at the
// top of goroutines.
func LogPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Str("stack", string(debug.Stack())).
		Msg("PANIC")
	panic(r)
}
