// Package registry holds the named commands a terminal session can dispatch.
//
// A Registry is filled once at startup and only read afterwards. Lookups are
// case-insensitive and a missing name is a normal outcome, not an error.
package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClear is returned by a command's execute function to ask the session to
// wipe its transcript instead of rendering a result.
var ErrClear = errors.New("clear transcript")

// ExecuteFunc runs a command with the argument tokens that followed its name.
type ExecuteFunc[R any] func(args []string) (R, error)

// Command is a named, described, executable entry of the registry.
type Command[R any] struct {
	Name        string // Lookup key, stored lowercase
	Description string // Short description for listings
	Execute     ExecuteFunc[R]
}

// Registry maps command names to commands, remembering registration order.
type Registry[R any] struct {
	commands map[string]Command[R]
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry[R any]() *Registry[R] {
	return &Registry[R]{
		commands: make(map[string]Command[R]),
	}
}

// New creates a registry holding the given commands in order.
func New[R any](cmds ...Command[R]) (*Registry[R], error) {
	r := NewRegistry[R]()
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a command. Names are normalised to lowercase; empty names,
// names containing whitespace, duplicates and nil execute functions are rejected.
func (r *Registry[R]) Register(cmd Command[R]) error {
	name := strings.ToLower(cmd.Name)
	if name == "" {
		return errors.New("command name must not be empty")
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("command name %q must not contain whitespace", cmd.Name)
	}
	if cmd.Execute == nil {
		return fmt.Errorf("command %q has no execute function", cmd.Name)
	}
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}

	cmd.Name = name
	r.commands[name] = cmd
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the command registered under name, ignoring case.
func (r *Registry[R]) Lookup(name string) (Command[R], bool) {
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// Names returns all command names in registration order.
func (r *Registry[R]) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Commands returns all commands in registration order.
func (r *Registry[R]) Commands() []Command[R] {
	cmds := make([]Command[R], 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Len returns the number of registered commands.
func (r *Registry[R]) Len() int {
	return len(r.order)
}
