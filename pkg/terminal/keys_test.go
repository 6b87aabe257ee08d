package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		event     KeyEvent
		name      string
		printable bool
	}{
		{RuneKey('a'), "a", true},
		{RuneKey(' '), "space", true},
		{RuneKey('é'), "é", true},
		{CtrlKey('C'), "ctrl+c", false},
		{KeyEvent{Key: KeyRune, Rune: 'x', Mod: ModAlt}, "alt+x", false},
		{KeyEvent{Key: KeyRune, Rune: 'A', Mod: ModShift}, "shift+A", true},
		{SpecialKey(KeyEnter), "enter", false},
		{SpecialKey(KeyTab), "tab", false},
		{KeyEvent{Key: Key(99)}, "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.event.String())
			assert.Equal(t, tt.printable, tt.event.IsPrintable())
		})
	}
}

func TestKeyEvent_IsCtrl(t *testing.T) {
	assert.True(t, CtrlKey('l').IsCtrl('L'))
	assert.True(t, KeyEvent{Key: KeyRune, Rune: 'C', Mod: ModCtrl | ModShift}.IsCtrl('c'))
	assert.False(t, RuneKey('c').IsCtrl('c'))
	assert.False(t, CtrlKey('c').IsCtrl('l'))
	assert.False(t, KeyEvent{Key: KeyEnter, Mod: ModCtrl}.IsCtrl('c'))
}

func TestTranscript(t *testing.T) {
	tr := NewTranscript[string]()

	assert.Equal(t, 0, tr.Respond("welcome").ID)
	assert.Equal(t, 1, tr.Echo("help").ID)
	_, ok := tr.LastResponse()
	assert.True(t, ok)

	tr.Clear()
	assert.Equal(t, 0, tr.Len())
	_, ok = tr.LastResponse()
	assert.False(t, ok)

	assert.Equal(t, 2, tr.Echo("again").ID)

	entries := tr.Entries()
	entries[0].Text = "mutated"
	assert.Equal(t, "again", tr.Entries()[0].Text)
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "command", CommandEcho.String())
	assert.Equal(t, "response", Response.String())
	assert.Equal(t, "empty", OutcomeEmpty.String())
	assert.Equal(t, "cleared", OutcomeCleared.String())
	assert.Equal(t, "unrecognized", OutcomeUnrecognized.String())
	assert.Equal(t, "executed", OutcomeExecuted.String())
}
