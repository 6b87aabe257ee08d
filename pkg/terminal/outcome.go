package terminal

// OutcomeKind classifies what a submitted line did.
type OutcomeKind int

const (
	// OutcomeEmpty means the line was blank. Only a bare echo was recorded.
	OutcomeEmpty OutcomeKind = iota
	// OutcomeCleared means a command asked for the transcript to be wiped.
	OutcomeCleared
	// OutcomeUnrecognized means no command has the typed name.
	OutcomeUnrecognized
	// OutcomeExecuted means a command ran. Err is set when it failed.
	OutcomeExecuted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCleared:
		return "cleared"
	case OutcomeUnrecognized:
		return "unrecognized"
	case OutcomeExecuted:
		return "executed"
	default:
		return "empty"
	}
}

// Outcome describes the effect of one dispatched line.
type Outcome[R any] struct {
	Kind    OutcomeKind
	Line    string   // trimmed input
	Command string   // lowercased command name, empty for OutcomeEmpty
	Args    []string // whitespace separated tokens after the name
	Result  R        // response appended to the transcript, if any
	Err     error    // error returned or panic raised by the command
}

// Formatter builds the responses the shell itself emits.
type Formatter[R any] interface {
	// Welcome is the first transcript entry of every session.
	Welcome() R
	// NotFound answers a line whose command name is unknown.
	NotFound(command string) R
	// Matches lists candidates when Tab cannot narrow the input down.
	Matches(names []string) R
	// Failure answers a command that returned an error or panicked.
	Failure(command string, err error) R
}
