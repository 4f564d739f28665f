package command

import (
	"fmt"

	"github.com/atomicstack/dashboard-palette/internal/logging/events"
	"github.com/atomicstack/dashboard-palette/internal/palette"
	"github.com/atomicstack/dashboard-palette/internal/router"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates a command selection.
type Request struct {
	Section string
	Command palette.Command
	// Base is the dashboard URL relative routes are resolved against.
	Base string
}

// ActionResult communicates the outcome of delivering a route.
type ActionResult struct {
	ID    string
	Route string
	URL   string
	Info  string
	Err   error
}

// Bus coordinates the execution of palette commands.
type Bus struct {
	router router.Router
}

// New initialises a command bus delivering routes through r.
func New(r router.Router) *Bus {
	return &Bus{router: r}
}

// Execute runs the selected command. Actions run immediately on the caller's
// goroutine with access to ctrl; whatever command they return is wrapped for
// tracing. Routes are resolved and handed to the router from a tea.Cmd.
func (b *Bus) Execute(ctrl palette.Controller, req Request) tea.Cmd {
	cmd := req.Command
	events.Command.Queue(cmd.ID, cmd.Name)
	if cmd.Action != nil {
		next := cmd.Action(ctrl)
		if next == nil {
			events.Command.NoOp(cmd.ID, cmd.Name)
			return nil
		}
		return func() tea.Msg {
			msg := next()
			events.Command.Result(cmd.ID, cmd.Name, fmt.Sprintf("%T", msg))
			return msg
		}
	}
	if cmd.Route == "" || b.router == nil {
		events.Command.Skip(cmd.ID, cmd.Name)
		return nil
	}
	r := b.router
	return func() tea.Msg {
		events.Command.Route(cmd.ID, cmd.Route)
		target, err := router.Resolve(req.Base, cmd.Route)
		if err != nil {
			return ActionResult{ID: cmd.ID, Route: cmd.Route, Err: err}
		}
		if err := r.Navigate(target); err != nil {
			return ActionResult{ID: cmd.ID, Route: cmd.Route, URL: target, Err: err}
		}
		msg := ActionResult{ID: cmd.ID, Route: cmd.Route, URL: target, Info: fmt.Sprintf("Opened %s", target)}
		events.Command.Result(cmd.ID, cmd.Name, fmt.Sprintf("%T", msg))
		return msg
	}
}
