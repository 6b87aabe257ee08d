package tui

import (
	"github.com/atotto/clipboard"
)

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard is the clipboard of the desktop session.
type SystemClipboard struct{}

// NewClipboard returns the system clipboard.
func NewClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Copy replaces the clipboard contents.
func (SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// IsAvailable reports whether a clipboard utility was found.
func (SystemClipboard) IsAvailable() bool {
	return !clipboard.Unsupported
}
