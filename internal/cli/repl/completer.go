package repl

import (
	"slices"
	"strings"
)

// builtins are handled by the REPL itself.
var builtins = []string{"help", "history", "exit", "quit"}

// Completer provides command completion for the REPL.
type Completer struct {
	commands []string
}

// NewCompleter creates a Completer over the given command paths, such as
// "key" and "key encode". The REPL builtins are always included.
func NewCompleter(commands []string) *Completer {
	all := make([]string, 0, len(commands)+len(builtins))
	all = append(all, commands...)
	for _, b := range builtins {
		if !slices.Contains(all, b) {
			all = append(all, b)
		}
	}
	return &Completer{commands: all}
}

// Complete returns completion suggestions for the given prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
