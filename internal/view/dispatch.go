package view

import (
	"context"
	"fmt"
	"net/url"
	"sort"
)

// Command binds a user intent to its handler.
type Command struct {
	Name string
	Help string
	Run  func(ctx context.Context, args []string) error
}

// Dispatcher maps user intents to controller methods, decoupling intent
// from presentation. Unknown intents fail with a list of what exists.
type Dispatcher struct {
	commands map[string]Command
}

// NewDispatcher constructs an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{commands: make(map[string]Command)}
}

// Register installs a command, replacing any previous one of the same
// name.
func (d *Dispatcher) Register(cmd Command) {
	d.commands[cmd.Name] = cmd
}

// Dispatch runs the named command.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args []string) error {
	cmd, ok := d.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try \"help\"", name)
	}
	return cmd.Run(ctx, args)
}

// Commands returns all registered commands sorted by name.
func (d *Dispatcher) Commands() []Command {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Command, 0, len(names))
	for _, name := range names {
		out = append(out, d.commands[name])
	}
	return out
}

// BookingLink builds the public per-user booking URL shown on the
// dashboard. The booking page itself is served elsewhere.
func BookingLink(origin, username string) string {
	return fmt.Sprintf("%s/schedule.html?user=%s", origin, url.QueryEscape(username))
}
