package pty

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// TailBuffer keeps the last lines written to it with escape sequences
// removed. It is a preview of shell output, not a terminal emulator:
// cursor movement is ignored and a carriage return restarts the line.
type TailBuffer struct {
	mu      sync.Mutex
	lines   []string
	partial strings.Builder
	cr      bool // carriage return seen, line restarts on next rune
	max     int
}

// NewTailBuffer creates a buffer holding at most maxLines complete lines.
func NewTailBuffer(maxLines int) *TailBuffer {
	if maxLines < 1 {
		maxLines = 1
	}
	return &TailBuffer{max: maxLines}
}

func (b *TailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, r := range ansi.Strip(string(p)) {
		switch r {
		case '\n':
			b.pushLocked(b.partial.String())
			b.partial.Reset()
			b.cr = false
		case '\r':
			b.cr = true
		default:
			if b.cr {
				b.partial.Reset()
				b.cr = false
			}
			b.partial.WriteRune(r)
		}
	}
	return len(p), nil
}

func (b *TailBuffer) pushLocked(line string) {
	b.lines = append(b.lines, line)
	if over := len(b.lines) - b.max; over > 0 {
		b.lines = append(b.lines[:0], b.lines[over:]...)
	}
}

// Tail returns up to n of the most recent lines, including an unfinished
// last line.
func (b *TailBuffer) Tail(n int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := b.lines
	if b.partial.Len() > 0 {
		all = append(all[:len(all):len(all)], b.partial.String())
	}
	if n <= 0 {
		return nil
	}
	if n > len(all) {
		n = len(all)
	}
	out := make([]string, n)
	copy(out, all[len(all)-n:])
	return out
}
