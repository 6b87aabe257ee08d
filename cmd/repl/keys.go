package repl

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kcaldas/shellfolio/pkg/portfolio"
	"github.com/kcaldas/shellfolio/pkg/terminal"
)

// KeyMap holds the bindings handled by the model itself. Everything else is
// translated and handed to the shell session.
type KeyMap struct {
	Interrupt   key.Binding
	Quit        key.Binding
	ToggleTheme key.Binding
	Copy        key.Binding
	Scroll      key.Binding
	Shortcuts   []Shortcut
}

// Shortcut runs a main command from a function key.
type Shortcut struct {
	Binding key.Binding
	Command string
}

// DefaultKeyMap returns the bindings of the bubbletea front-end.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel line / quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "quit"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy output"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
	}
	for i, name := range portfolio.MainCommands {
		if i >= 8 {
			break
		}
		k := fmt.Sprintf("f%d", i+1)
		km.Shortcuts = append(km.Shortcuts, Shortcut{
			Binding: key.NewBinding(key.WithKeys(k), key.WithHelp(k, name)),
			Command: name,
		})
	}
	return km
}

// ShortHelp returns the bindings shown in the footer.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.ToggleTheme, km.Copy, km.Scroll, km.Quit}
}

// TranslateKey turns a bubbletea key message into shell key events. Pasted
// text arrives as one message with several runes.
func TranslateKey(msg tea.KeyMsg) []terminal.KeyEvent {
	switch msg.Type {
	case tea.KeyEnter:
		return []terminal.KeyEvent{terminal.SpecialKey(terminal.KeyEnter)}
	case tea.KeyUp:
		return []terminal.KeyEvent{terminal.SpecialKey(terminal.KeyUp)}
	case tea.KeyDown:
		return []terminal.KeyEvent{terminal.SpecialKey(terminal.KeyDown)}
	case tea.KeyTab:
		return []terminal.KeyEvent{terminal.SpecialKey(terminal.KeyTab)}
	case tea.KeyBackspace:
		return []terminal.KeyEvent{terminal.SpecialKey(terminal.KeyBackspace)}
	case tea.KeySpace:
		return []terminal.KeyEvent{terminal.RuneKey(' ')}
	case tea.KeyCtrlC:
		return []terminal.KeyEvent{terminal.CtrlKey('c')}
	case tea.KeyCtrlL:
		return []terminal.KeyEvent{terminal.CtrlKey('l')}
	case tea.KeyRunes:
		events := make([]terminal.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			ev := terminal.RuneKey(r)
			if msg.Alt {
				ev.Mod |= terminal.ModAlt
			}
			events = append(events, ev)
		}
		return events
	}
	return nil
}
