package terminal

import (
	"strings"
	"unicode"
)

// Key identifies the non-printable part of a key press.
type Key int

const (
	// KeyRune is a printable character; KeyEvent.Rune holds it.
	KeyRune Key = iota
	KeyEnter
	KeyUp
	KeyDown
	KeyTab
	KeyBackspace
)

var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// ModNone means no modifier is held.
const ModNone Modifier = 0

// KeyEvent is a front-end independent key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// RuneKey is a plain printable key press.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// CtrlKey is a letter pressed together with Ctrl.
func CtrlKey(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: unicode.ToLower(r), Mod: ModCtrl}
}

// SpecialKey is a named key without modifiers.
func SpecialKey(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// IsCtrl reports whether the event is Ctrl plus the given letter.
func (e KeyEvent) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Mod&ModCtrl != 0 && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// IsPrintable reports whether the event inserts a character into the buffer.
func (e KeyEvent) IsPrintable() bool {
	return e.Key == KeyRune && e.Mod&(ModCtrl|ModAlt) == 0 && unicode.IsPrint(e.Rune)
}

func (e KeyEvent) String() string {
	var b strings.Builder
	if e.Mod&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if e.Mod&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if e.Mod&ModShift != 0 {
		b.WriteString("shift+")
	}
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			b.WriteString("space")
		} else {
			b.WriteRune(e.Rune)
		}
		return b.String()
	}
	if name, ok := keyNames[e.Key]; ok {
		b.WriteString(name)
	} else {
		b.WriteString("unknown")
	}
	return b.String()
}
