package tui

import (
	"github.com/awesome-gocui/gocui"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/kcaldas/shellfolio/pkg/render"
	"github.com/kcaldas/shellfolio/pkg/terminal"
)

// TranslateKey maps a gocui key press to a shell key event. It reports false
// for keys the shell has no meaning for (arrows left and right, Home, F-keys).
func TranslateKey(key gocui.Key, ch rune, mod gocui.Modifier) (terminal.KeyEvent, bool) {
	if ch != 0 {
		ev := terminal.RuneKey(ch)
		if mod&gocui.Modifier(tcell.ModCtrl) != 0 {
			ev = terminal.CtrlKey(ch)
		}
		if mod&gocui.Modifier(tcell.ModAlt) != 0 {
			ev.Mod |= terminal.ModAlt
		}
		return ev, true
	}

	switch key {
	case gocui.KeyEnter:
		return terminal.SpecialKey(terminal.KeyEnter), true
	case gocui.KeyArrowUp:
		return terminal.SpecialKey(terminal.KeyUp), true
	case gocui.KeyArrowDown:
		return terminal.SpecialKey(terminal.KeyDown), true
	case gocui.KeyTab:
		return terminal.SpecialKey(terminal.KeyTab), true
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		return terminal.SpecialKey(terminal.KeyBackspace), true
	case gocui.KeySpace:
		return terminal.RuneKey(' '), true
	case gocui.KeyCtrlC:
		return terminal.CtrlKey('c'), true
	case gocui.KeyCtrlL:
		return terminal.CtrlKey('l'), true
	}
	return terminal.KeyEvent{}, false
}

// InputEditor implements gocui.Editor on top of a shell session. The view
// only displays the session buffer; all editing happens in the session.
type InputEditor struct {
	session  *terminal.Session[render.Doc]
	onChange func()
}

// NewInputEditor creates an editor feeding session. onChange runs after
// every key the session consumed.
func NewInputEditor(session *terminal.Session[render.Doc], onChange func()) *InputEditor {
	return &InputEditor{session: session, onChange: onChange}
}

// Edit handles a key press on the input view.
func (e *InputEditor) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	ev, ok := TranslateKey(key, ch, mod)
	if !ok {
		return
	}
	if e.session.HandleKey(ev) && e.onChange != nil {
		e.onChange()
	}
}

// inputView is the part of *gocui.View the prompt line is drawn on.
type inputView interface {
	Clear()
	Write(p []byte) (int, error)
	SetCursor(x, y int) error
	Size() (int, int)
}

// visibleInput returns the tail of buffer that fits in width cells while
// leaving one cell for the cursor.
func visibleInput(buffer string, width int) string {
	if width <= 1 {
		return ""
	}
	runes := []rune(buffer)
	start := len(runes)
	used := 0
	for start > 0 {
		w := lipgloss.Width(string(runes[start-1]))
		if used+w > width-1 {
			break
		}
		used += w
		start--
	}
	return string(runes[start:])
}

// drawInput renders the painted prompt and the visible part of the buffer,
// keeping the cursor at the end of the line.
func drawInput(v inputView, prompt string, buffer string) {
	width, _ := v.Size()
	promptWidth := lipgloss.Width(prompt)

	v.Clear()
	if promptWidth >= width {
		_, _ = v.Write([]byte(prompt))
		_ = v.SetCursor(width-1, 0)
		return
	}

	visible := visibleInput(buffer, width-promptWidth)
	_, _ = v.Write([]byte(prompt + visible))
	_ = v.SetCursor(promptWidth+lipgloss.Width(visible), 0)
}
