package tui

import (
	"fmt"

	"github.com/awesome-gocui/gocui"

	"github.com/kcaldas/shellfolio/pkg/portfolio"
)

// KeyAction represents an action that can be triggered by a key
type KeyAction struct {
	Type        string       // "command" or "function"
	CommandName string       // For "command" type - shell line to submit
	Function    func() error // For "function" type - direct function to call
}

// KeymapEntry represents a single keybinding in the keymap
type KeymapEntry struct {
	Key         gocui.Key
	Mod         gocui.Modifier
	Action      KeyAction
	Description string
}

// Keymap manages the application's global keybindings
type Keymap struct {
	entries []KeymapEntry
}

// NewKeymap creates a new empty keymap
func NewKeymap() *Keymap {
	return &Keymap{
		entries: make([]KeymapEntry, 0),
	}
}

// AddEntry adds a new keybinding entry to the keymap
func (k *Keymap) AddEntry(entry KeymapEntry) {
	k.entries = append(k.entries, entry)
}

// GetEntries returns all keymap entries
func (k *Keymap) GetEntries() []KeymapEntry {
	return k.entries
}

// ShortcutFor returns the key bound to the shell command name, if any.
func (k *Keymap) ShortcutFor(command string) (gocui.Key, bool) {
	for _, entry := range k.entries {
		if entry.Action.Type == "command" && entry.Action.CommandName == command {
			return entry.Key, true
		}
	}
	return 0, false
}

// CommandAction creates a KeyAction that submits a shell command
func CommandAction(commandName string) KeyAction {
	return KeyAction{
		Type:        "command",
		CommandName: commandName,
	}
}

// FunctionAction creates a KeyAction that calls a function directly
func FunctionAction(fn func() error) KeyAction {
	return KeyAction{
		Type:     "function",
		Function: fn,
	}
}

var functionKeys = []gocui.Key{
	gocui.KeyF1, gocui.KeyF2, gocui.KeyF3, gocui.KeyF4,
	gocui.KeyF5, gocui.KeyF6, gocui.KeyF7, gocui.KeyF8,
}

// sidebarShortcuts binds F1..F8 to the main commands in sidebar order.
func sidebarShortcuts(k *Keymap) {
	for i, name := range portfolio.MainCommands {
		if i >= len(functionKeys) {
			break
		}
		k.AddEntry(KeymapEntry{
			Key:         functionKeys[i],
			Mod:         gocui.ModNone,
			Action:      CommandAction(name),
			Description: "Run " + name,
		})
	}
}

// keyName returns a short human readable name for a key.
func keyName(key gocui.Key) string {
	keyNames := map[gocui.Key]string{
		gocui.KeyF1:     "F1",
		gocui.KeyF2:     "F2",
		gocui.KeyF3:     "F3",
		gocui.KeyF4:     "F4",
		gocui.KeyF5:     "F5",
		gocui.KeyF6:     "F6",
		gocui.KeyF7:     "F7",
		gocui.KeyF8:     "F8",
		gocui.KeyCtrlC:  "Ctrl+C",
		gocui.KeyCtrlD:  "Ctrl+D",
		gocui.KeyCtrlT:  "Ctrl+T",
		gocui.KeyCtrlY:  "Ctrl+Y",
		gocui.KeyPgup:   "PgUp",
		gocui.KeyPgdn:   "PgDn",
		gocui.KeyHome:   "Home",
		gocui.KeyEnd:    "End",
		gocui.KeyEnter:  "Enter",
		gocui.KeyTab:    "Tab",
		gocui.KeyEsc:    "Esc",
		gocui.MouseLeft: "Left Click",
	}
	if name, ok := keyNames[key]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", key)
}
