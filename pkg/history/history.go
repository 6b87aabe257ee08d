package history

import (
	"strings"
)

// DefaultMaxSize is the number of submitted lines kept per session.
const DefaultMaxSize = 50

// History keeps the lines a user submitted, most recent first, and the
// navigation cursor used by the Up and Down keys.
//
// Index -1 means the user is not browsing history and the live buffer is shown.
// When browsing starts the live buffer is saved as a draft so that leaving
// history restores what was being typed.
type History struct {
	commands []string // most recent first
	maxSize  int
	index    int // -1 means no selection (live buffer)
	draft    string
}

// New creates an empty history holding at most maxSize lines.
// A maxSize of zero or less selects DefaultMaxSize.
func New(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &History{
		commands: make([]string, 0, maxSize),
		maxSize:  maxSize,
		index:    -1,
	}
}

// Add records a submitted line. Blank lines and a line equal to the most
// recent entry are ignored; older duplicates are kept. The oldest entry is
// dropped once the history is full. Add reports whether the line was stored.
func (h *History) Add(command string) bool {
	command = strings.TrimSpace(command)
	if command == "" {
		return false
	}

	if len(h.commands) > 0 && h.commands[0] == command {
		return false
	}

	h.commands = append([]string{command}, h.commands...)

	if len(h.commands) > h.maxSize {
		h.commands = h.commands[:h.maxSize]
	}

	return true
}

// Entries returns a copy of the history, most recent first.
func (h *History) Entries() []string {
	result := make([]string, len(h.commands))
	copy(result, h.commands)
	return result
}

// Len returns the number of stored lines.
func (h *History) Len() int {
	return len(h.commands)
}

// MaxSize returns the capacity of the history.
func (h *History) MaxSize() int {
	return h.maxSize
}

// Index returns the navigation cursor, -1 when not browsing.
func (h *History) Index() int {
	return h.index
}

// Draft returns the buffer saved when browsing started.
func (h *History) Draft() string {
	return h.draft
}

// IsNavigating reports whether the cursor points at a history entry.
func (h *History) IsNavigating() bool {
	return h.index != -1
}

// Prev moves towards older lines and returns the line to show. current is the
// live buffer, saved as the draft when browsing starts. The cursor stops at
// the oldest entry. ok is false when the history is empty.
func (h *History) Prev(current string) (line string, ok bool) {
	if len(h.commands) == 0 {
		return "", false
	}

	if h.index == -1 {
		h.draft = current
	}

	h.index++
	if h.index > len(h.commands)-1 {
		h.index = len(h.commands) - 1
	}

	return h.commands[h.index], true
}

// Next moves towards newer lines and returns the line to show. Stepping past
// the newest entry ends browsing and returns the saved draft. ok is false
// when not browsing.
func (h *History) Next() (line string, ok bool) {
	switch {
	case h.index > 0:
		h.index--
		return h.commands[h.index], true
	case h.index == 0:
		h.index = -1
		return h.draft, true
	default:
		return "", false
	}
}

// ResetNavigation ends browsing and forgets the saved draft.
func (h *History) ResetNavigation() {
	h.index = -1
	h.draft = ""
}
