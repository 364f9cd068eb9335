package model

import tea "github.com/charmbracelet/bubbletea"

var namedKeySequences = map[tea.KeyType]string{
	tea.KeySpace:    " ",
	tea.KeyUp:       "\x1b[A",
	tea.KeyDown:     "\x1b[B",
	tea.KeyRight:    "\x1b[C",
	tea.KeyLeft:     "\x1b[D",
	tea.KeyHome:     "\x1b[H",
	tea.KeyEnd:      "\x1b[F",
	tea.KeyPgUp:     "\x1b[5~",
	tea.KeyPgDown:   "\x1b[6~",
	tea.KeyInsert:   "\x1b[2~",
	tea.KeyDelete:   "\x1b[3~",
	tea.KeyShiftTab: "\x1b[Z",
}

// keyToBytes encodes a key press the way a terminal would send it to the
// shell. Unknown keys encode to nil.
func keyToBytes(k tea.KeyMsg) []byte {
	var out []byte
	switch {
	case k.Type == tea.KeyRunes:
		out = []byte(string(k.Runes))
	case namedKeySequences[k.Type] != "":
		out = []byte(namedKeySequences[k.Type])
	case k.Type >= 0 && k.Type < 0x20, k.Type == tea.KeyBackspace:
		// Control keys carry their ASCII code as the key type.
		out = []byte{byte(k.Type)}
	}
	if k.Alt && len(out) > 0 {
		out = append([]byte{0x1b}, out...)
	}
	return out
}
