package pty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTailBuffer_StripsEscapesAndSplitsLines(t *testing.T) {
	b := NewTailBuffer(10)

	_, _ = b.Write([]byte("\x1b[32mok\x1b[0m first\r\nsecond\n"))
	_, _ = b.Write([]byte("prompt $ "))

	assert.Equal(t, []string{"ok first", "second", "prompt $ "}, b.Tail(5))
	assert.Equal(t, []string{"prompt $ "}, b.Tail(1))
	assert.Nil(t, b.Tail(0))
}

func TestTailBuffer_CarriageReturnRestartsLine(t *testing.T) {
	b := NewTailBuffer(10)
	_, _ = b.Write([]byte("10%\r50%\r100%\n"))
	assert.Equal(t, []string{"100%"}, b.Tail(3))
}

func TestTailBuffer_KeepsOnlyMaxLines(t *testing.T) {
	b := NewTailBuffer(2)
	_, _ = b.Write([]byte("a\nb\nc\n"))
	assert.Equal(t, []string{"b", "c"}, b.Tail(10))
}

func TestTailBuffer_TailDoesNotAlias(t *testing.T) {
	b := NewTailBuffer(4)
	_, _ = b.Write([]byte("a\nb\n"))
	got := b.Tail(2)
	got[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, b.Tail(2))
}
