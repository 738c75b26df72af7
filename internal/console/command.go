package console

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Command is one verb the interpreter understands
type Command interface {
	Name() string
	Description() string
	// TakesArgument reports whether the verb must be followed by an item name
	TakesArgument() bool
	Run(ctx context.Context, arg string) (string, error)
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered commands
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// Help renders the command list with aligned descriptions
func (r *Registry) Help() string {
	cmds := r.List()
	usages := make([]string, len(cmds))
	maxLen := 0
	for i, cmd := range cmds {
		usages[i] = cmd.Name()
		if cmd.TakesArgument() {
			usages[i] += argPlaceholder
		}
		if len(usages[i]) > maxLen {
			maxLen = len(usages[i])
		}
	}

	var sb strings.Builder
	sb.WriteString(MsgHelpHeader)
	for i, cmd := range cmds {
		padding := maxLen - len(usages[i]) + 2
		fmt.Fprintf(&sb, "\n  %s%*s%s", usages[i], padding, "", cmd.Description())
	}
	return sb.String()
}
