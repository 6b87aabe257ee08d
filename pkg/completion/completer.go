// Package completion expands a partially typed command name against the
// names a registry knows about.
package completion

import (
	"strings"
	"unicode/utf8"
)

// CommandRegistry defines what the Completer needs from a registry.
type CommandRegistry interface {
	Names() []string
}

// Kind tells a caller what to do with a completion Result.
type Kind int

const (
	// None means nothing matched, or the input was empty.
	None Kind = iota
	// Full means exactly one name matched; Text is that name.
	Full
	// Partial means several names share a prefix longer than the input; Text is that prefix.
	Partial
	// Ambiguous means several names matched and no longer prefix exists; Matches lists them.
	Ambiguous
)

func (k Kind) String() string {
	switch k {
	case Full:
		return "full"
	case Partial:
		return "partial"
	case Ambiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

// Result is the outcome of a completion request.
type Result struct {
	Kind    Kind
	Text    string   // Replacement buffer for Full and Partial
	Matches []string // Matching names in registry order, for Partial and Ambiguous
}

// Completer matches typed prefixes against registry names.
type Completer struct {
	registry CommandRegistry
}

// NewCompleter creates a completer over the given registry.
func NewCompleter(registry CommandRegistry) *Completer {
	return &Completer{
		registry: registry,
	}
}

// Matches returns the registry names starting with the normalised input,
// in registry order. An empty input matches nothing.
func (c *Completer) Matches(input string) []string {
	input = normalize(input)
	if input == "" {
		return nil
	}

	var matches []string
	for _, name := range c.registry.Names() {
		if strings.HasPrefix(name, input) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Complete computes the completion for the current buffer.
func (c *Completer) Complete(buffer string) Result {
	input := normalize(buffer)
	matches := c.Matches(input)

	switch len(matches) {
	case 0:
		return Result{Kind: None}
	case 1:
		return Result{Kind: Full, Text: matches[0], Matches: matches}
	}

	prefix := CommonPrefix(matches)
	if len(prefix) > len(input) {
		return Result{Kind: Partial, Text: prefix, Matches: matches}
	}
	return Result{Kind: Ambiguous, Matches: matches}
}

// CommonPrefix returns the longest prefix shared by all words. The first word
// is shrunk one rune at a time until every other word starts with it.
func CommonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}

	prefix := words[0]
	for _, word := range words[1:] {
		for !strings.HasPrefix(word, prefix) {
			_, size := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-size]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
