package terminal

// EntryKind distinguishes echoed command lines from command output.
type EntryKind int

const (
	// CommandEcho is a line the user submitted, shown after the prompt.
	CommandEcho EntryKind = iota
	// Response is content produced by a command or by the shell itself.
	Response
)

func (k EntryKind) String() string {
	if k == Response {
		return "response"
	}
	return "command"
}

// Entry is one item of the transcript. Text is set for CommandEcho entries,
// Content for Response entries.
type Entry[R any] struct {
	ID      int
	Kind    EntryKind
	Text    string
	Content R
}

// Transcript is the ordered list of echoes and responses shown to the user.
// Ids grow by one per appended entry and are never reused, clearing included.
type Transcript[R any] struct {
	entries []Entry[R]
	nextID  int
}

// NewTranscript creates an empty transcript whose first entry gets id 0.
func NewTranscript[R any]() *Transcript[R] {
	return &Transcript[R]{}
}

// Echo appends a CommandEcho entry.
func (t *Transcript[R]) Echo(text string) Entry[R] {
	return t.append(Entry[R]{Kind: CommandEcho, Text: text})
}

// Respond appends a Response entry.
func (t *Transcript[R]) Respond(content R) Entry[R] {
	return t.append(Entry[R]{Kind: Response, Content: content})
}

func (t *Transcript[R]) append(entry Entry[R]) Entry[R] {
	entry.ID = t.nextID
	t.nextID++
	t.entries = append(t.entries, entry)
	return entry
}

// Clear removes every entry. The id counter keeps counting.
func (t *Transcript[R]) Clear() {
	t.entries = nil
}

// Entries returns a copy of the entries in display order.
func (t *Transcript[R]) Entries() []Entry[R] {
	result := make([]Entry[R], len(t.entries))
	copy(result, t.entries)
	return result
}

// Len returns the number of entries currently shown.
func (t *Transcript[R]) Len() int {
	return len(t.entries)
}

// LastResponse returns the most recent Response entry.
func (t *Transcript[R]) LastResponse() (Entry[R], bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Kind == Response {
			return t.entries[i], true
		}
	}
	return Entry[R]{}, false
}
