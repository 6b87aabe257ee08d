// Package terminal is the command-line interaction engine: it owns the input
// buffer, history cursor and transcript of one shell session and turns key
// presses into dispatches over a command registry.
package terminal

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kcaldas/shellfolio/pkg/completion"
	"github.com/kcaldas/shellfolio/pkg/history"
	"github.com/kcaldas/shellfolio/pkg/logging"
	"github.com/kcaldas/shellfolio/pkg/registry"
)

// InterruptMarker is appended to a line abandoned with Ctrl+C.
const InterruptMarker = "^C"

// Options tunes a Session. The zero value is usable.
type Options struct {
	ID          string // defaults to a random UUID
	HistorySize int    // defaults to history.DefaultMaxSize
	Logger      logging.Logger
}

// Snapshot is a consistent view of the session state for rendering.
type Snapshot[R any] struct {
	Buffer       string
	HistoryIndex int
	Entries      []Entry[R]
}

// Session is one interactive shell. All methods are safe for concurrent use;
// key presses and external submissions are serialized by a single mutex.
type Session[R any] struct {
	mu         sync.Mutex
	id         string
	registry   *registry.Registry[R]
	formatter  Formatter[R]
	completer  *completion.Completer
	history    *history.History
	transcript *Transcript[R]
	buffer     string
	logger     logging.Logger
}

// NewSession creates a session over reg and seeds the transcript with the
// formatter's welcome response, which always gets id 0.
func NewSession[R any](reg *registry.Registry[R], formatter Formatter[R], opts Options) *Session[R] {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewComponentLogger("terminal")
	}

	s := &Session[R]{
		id:         opts.ID,
		registry:   reg,
		formatter:  formatter,
		completer:  completion.NewCompleter(reg),
		history:    history.New(opts.HistorySize),
		transcript: NewTranscript[R](),
		logger:     logger.With("session_id", opts.ID),
	}
	s.transcript.Respond(formatter.Welcome())
	s.logger.Debug("session started", "commands", reg.Len())
	return s
}

// ID returns the session identifier used in logs.
func (s *Session[R]) ID() string {
	return s.id
}

// Buffer returns the current input line.
func (s *Session[R]) Buffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer
}

// SetBuffer replaces the input line, as a paste or a widget edit would.
// The history cursor is left alone.
func (s *Session[R]) SetBuffer(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = text
}

// HistoryIndex returns the history cursor, -1 when not browsing.
func (s *Session[R]) HistoryIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Index()
}

// History returns the submitted lines, most recent first.
func (s *Session[R]) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// Transcript returns a copy of the transcript entries.
func (s *Session[R]) Transcript() []Entry[R] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Entries()
}

// LastResponse returns the newest response still in the transcript.
func (s *Session[R]) LastResponse() (Entry[R], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.LastResponse()
}

// Snapshot returns buffer, cursor and transcript read under one lock.
func (s *Session[R]) Snapshot() Snapshot[R] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot[R]{
		Buffer:       s.buffer,
		HistoryIndex: s.history.Index(),
		Entries:      s.transcript.Entries(),
	}
}

// HandleKey applies a key press. It reports whether the session consumed the
// key; front-ends must not run their default behavior for consumed keys.
// Unhandled keys (other Ctrl chords, for instance) are left to the caller.
func (s *Session[R]) HandleKey(ev KeyEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case ev.Key == KeyEnter:
		s.submitLocked()
	case ev.Key == KeyUp:
		s.historyUpLocked()
	case ev.Key == KeyDown:
		s.historyDownLocked()
	case ev.Key == KeyTab:
		s.completeLocked()
	case ev.Key == KeyBackspace:
		if s.buffer != "" {
			_, size := utf8.DecodeLastRuneInString(s.buffer)
			s.buffer = s.buffer[:len(s.buffer)-size]
		}
	case ev.IsCtrl('c'):
		s.interruptLocked()
	case ev.IsCtrl('l'):
		s.clearScreenLocked()
	case ev.IsPrintable():
		s.buffer += string(ev.Rune)
	default:
		return false
	}
	return true
}

// Submit dispatches the current buffer, as pressing Enter does.
func (s *Session[R]) Submit() Outcome[R] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitLocked()
}

// Dispatch runs line as if it had been typed and submitted. The buffer and
// history cursor are reset afterwards whatever the outcome.
func (s *Session[R]) Dispatch(line string) Outcome[R] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = line
	return s.submitLocked()
}

// SubmitExternal injects a line from outside the shell, a menu click for
// example. It waits for any key press being handled, dispatches the line and
// then calls ack, if not nil, without holding the session lock.
func (s *Session[R]) SubmitExternal(line string, ack func()) Outcome[R] {
	s.mu.Lock()
	s.buffer = line
	outcome := s.submitLocked()
	s.mu.Unlock()

	s.logger.Debug("external command dispatched", "line", outcome.Line, "outcome", outcome.Kind)
	if ack != nil {
		ack()
	}
	return outcome
}

// HistoryUp shows the previous (older) history entry.
func (s *Session[R]) HistoryUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyUpLocked()
}

// HistoryDown shows the next (newer) history entry, or the saved draft.
func (s *Session[R]) HistoryDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyDownLocked()
}

// Complete runs tab completion on the buffer.
func (s *Session[R]) Complete() completion.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completeLocked()
}

// Interrupt abandons the current line, as Ctrl+C does.
func (s *Session[R]) Interrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interruptLocked()
}

// ClearScreen empties the transcript, as Ctrl+L does.
func (s *Session[R]) ClearScreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearScreenLocked()
}

func (s *Session[R]) submitLocked() Outcome[R] {
	outcome := s.dispatchLocked(s.buffer)
	s.buffer = ""
	s.history.ResetNavigation()
	return outcome
}

func (s *Session[R]) dispatchLocked(raw string) Outcome[R] {
	line := strings.TrimSpace(raw)
	if line == "" {
		s.transcript.Echo("")
		return Outcome[R]{Kind: OutcomeEmpty}
	}

	s.history.Add(line)

	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	args := fields[1:]
	outcome := Outcome[R]{Line: line, Command: name, Args: args}

	cmd, ok := s.registry.Lookup(name)
	if !ok {
		s.transcript.Echo(line)
		outcome.Kind = OutcomeUnrecognized
		outcome.Result = s.formatter.NotFound(name)
		s.transcript.Respond(outcome.Result)
		s.logger.Debug("command not found", "command", name)
		return outcome
	}

	result, err := s.execute(cmd, args)
	if errors.Is(err, registry.ErrClear) {
		s.transcript.Clear()
		outcome.Kind = OutcomeCleared
		s.logger.Debug("transcript cleared", "command", name)
		return outcome
	}

	s.transcript.Echo(line)
	outcome.Kind = OutcomeExecuted
	if err != nil {
		outcome.Err = err
		outcome.Result = s.formatter.Failure(name, err)
		s.logger.Error("command failed", "command", name, "error", err)
	} else {
		outcome.Result = result
		s.logger.Debug("command executed", "command", name, "args", len(args))
	}
	s.transcript.Respond(outcome.Result)
	return outcome
}

func (s *Session[R]) execute(cmd registry.Command[R], args []string) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			result = zero
			err = fmt.Errorf("command %q panicked: %v", cmd.Name, r)
		}
	}()
	return cmd.Execute(args)
}

func (s *Session[R]) historyUpLocked() {
	if line, ok := s.history.Prev(s.buffer); ok {
		s.buffer = line
	}
}

func (s *Session[R]) historyDownLocked() {
	if line, ok := s.history.Next(); ok {
		s.buffer = line
	}
}

func (s *Session[R]) completeLocked() completion.Result {
	result := s.completer.Complete(s.buffer)
	switch result.Kind {
	case completion.Full, completion.Partial:
		s.buffer = result.Text
	case completion.Ambiguous:
		s.transcript.Echo(s.buffer)
		s.transcript.Respond(s.formatter.Matches(result.Matches))
	}
	return result
}

func (s *Session[R]) interruptLocked() {
	if s.buffer == "" {
		return
	}
	s.transcript.Echo(s.buffer + InterruptMarker)
	s.buffer = ""
	s.history.ResetNavigation()
}

func (s *Session[R]) clearScreenLocked() {
	s.transcript.Clear()
}
