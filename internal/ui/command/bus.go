// Package command turns collaborator side effects into Bubble Tea commands
// so launches and route dispatches never block the update loop.
package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tiledeck/internal/logging/events"
)

// Request encapsulates one asynchronous side effect.
type Request struct {
	ID    string
	Label string
	Run   func() error
}

// Result reports the outcome of a request back to the model.
type Result struct {
	ID    string
	Label string
	Err   error
}

// Bus coordinates the execution of requests.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace
// logs for the queue and result transitions.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		err := req.Run()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("err=%t", err != nil))
		return Result{ID: req.ID, Label: req.Label, Err: err}
	}
}
