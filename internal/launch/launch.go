// Package launch runs tile commands and view routes as external processes.
package launch

import (
	"os/exec"
	"strings"

	"github.com/atomicstack/tiledeck/internal/logging"
)

// Runner starts external commands detached from the UI so a launched
// application outlives the launcher session.
type Runner struct {
	shell string
	start func(*exec.Cmd) error
}

// NewRunner returns a runner that executes commands through the given
// shell. An empty shell selects /bin/sh.
func NewRunner(shell string) *Runner {
	if strings.TrimSpace(shell) == "" {
		shell = "/bin/sh"
	}
	return &Runner{
		shell: shell,
		start: func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Launch starts command without waiting for it to finish. Launching is
// fire and forget, so failures only reach the log.
func (r *Runner) Launch(command string) {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return
	}
	cmd := exec.Command(r.shell, "-c", trimmed)
	if err := r.start(cmd); err != nil {
		logging.Error(err)
		return
	}
	go func() { _ = cmd.Wait() }()
}

// Router hands view routes to an external handler command.
type Router struct {
	handler string
	runner  *Runner
}

// NewRouter returns a router that appends each route to handler. An empty
// handler leaves routing to the trace log only.
func NewRouter(handler string, runner *Runner) *Router {
	return &Router{handler: strings.TrimSpace(handler), runner: runner}
}

// NavigateTo runs the handler with the route appended. Fire and forget.
func (r *Router) NavigateTo(path string) {
	if r.handler == "" || r.runner == nil {
		return
	}
	r.runner.Launch(r.handler + " " + shellQuote(path))
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
