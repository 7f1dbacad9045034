// Package commands maps action names to handlers. Menus, key bindings and the
// ":" command line all dispatch through one Registry.
package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bethropolis/textwriter/internal/logger"
)

// ErrUnknownCommand is returned by Execute for names that were never registered.
var ErrUnknownCommand = errors.New("unknown command")

// Func runs a command. args holds the words after the name on a command line
// and is empty when invoked from a menu or key.
type Func func(args []string) error

// Registry is a name to handler table. Aliases resolve to a registered name.
type Registry struct {
	commands map[string]Func
	aliases  map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Func),
		aliases:  make(map[string]string),
	}
}

// Register adds a command. Empty and already-taken names are rejected.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("command '%s' has no handler", name)
	}
	if r.taken(name) {
		return fmt.Errorf("command '%s' already registered", name)
	}
	r.commands[name] = fn
	logger.DebugTagf("commands", "Registry: registered '%s'", name)
	return nil
}

// Alias makes alias another name for target, which must already be registered.
func (r *Registry) Alias(alias, target string) error {
	if alias == "" {
		return fmt.Errorf("alias cannot be empty")
	}
	if _, ok := r.commands[target]; !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownCommand, target)
	}
	if r.taken(alias) {
		return fmt.Errorf("command '%s' already registered", alias)
	}
	r.aliases[alias] = target
	return nil
}

func (r *Registry) taken(name string) bool {
	_, isCmd := r.commands[name]
	_, isAlias := r.aliases[name]
	return isCmd || isAlias
}

// Resolve returns the registered name for name or one of its aliases.
func (r *Registry) Resolve(name string) (string, bool) {
	if _, ok := r.commands[name]; ok {
		return name, true
	}
	target, ok := r.aliases[name]
	return target, ok
}

// Execute runs the named command.
func (r *Registry) Execute(name string, args []string) error {
	resolved, ok := r.Resolve(name)
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownCommand, name)
	}
	logger.DebugTagf("commands", "Registry: executing '%s' with args %v", resolved, args)
	return r.commands[resolved](args)
}

// ExecuteLine parses "name arg..." (an optional leading ':' is allowed) and
// runs it. A blank line does nothing.
func (r *Registry) ExecuteLine(line string) error {
	line = strings.TrimPrefix(strings.TrimSpace(line), ":")
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	return r.Execute(parts[0], parts[1:])
}

// Names lists the registered names, sorted. Aliases are not included.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
