package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tiledeck/internal/backend"
	"github.com/atomicstack/tiledeck/internal/dialog"
	"github.com/atomicstack/tiledeck/internal/engine"
	"github.com/atomicstack/tiledeck/internal/input"
	"github.com/atomicstack/tiledeck/internal/logging/events"
	"github.com/atomicstack/tiledeck/internal/store"
	"github.com/atomicstack/tiledeck/internal/theme"
	"github.com/atomicstack/tiledeck/internal/tiles"
	"github.com/atomicstack/tiledeck/internal/ui/command"
	uistate "github.com/atomicstack/tiledeck/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// CommandRunner launches opaque tile commands.
type CommandRunner interface {
	Launch(command string)
}

// RouteHandler receives view routes.
type RouteHandler interface {
	NavigateTo(path string)
}

// Options describes user-provided model configuration.
type Options struct {
	Width            int
	Height           int
	ShowFooter       bool
	Verbose          bool
	HoldThreshold    time.Duration
	WatchdogInterval time.Duration
	ToastTTL         time.Duration
	DeviceInput      bool
	Runner           CommandRunner
	Router           RouteHandler
}

// Model implements the Bubble Tea model for the tile launcher.
type Model struct {
	eng     *engine.Engine
	deck    *store.Store
	watcher *backend.Watcher
	bus     *command.Bus
	runner  CommandRunner
	router  RouteHandler

	dlg *dialog.Dialog

	searching     bool
	searchInput   textinput.Model
	searchEntries []uistate.Entry

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	toastMsg    string
	toastErr    bool
	toastExpire time.Time

	// Release synthesis for terminals, which report key repeats but never
	// key releases.
	acceptDown       bool
	watchSeq         int
	watchdogInterval time.Duration
	deviceInput      bool

	rowOffset int

	pending  []tea.Cmd
	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI over the given tile tree. A nil tree puts the
// engine in its degenerate first-run state.
func NewModel(tree *tiles.Tree, deck *store.Store, watcher *backend.Watcher, opts Options) *Model {
	m := &Model{
		deck:             deck,
		watcher:          watcher,
		bus:              command.New(),
		runner:           opts.Runner,
		router:           opts.Router,
		showFooter:       opts.ShowFooter,
		verbose:          opts.Verbose,
		watchdogInterval: opts.WatchdogInterval,
		deviceInput:      opts.DeviceInput,
	}
	if m.watchdogInterval <= 0 {
		m.watchdogInterval = 700 * time.Millisecond
	}
	deps := engine.Deps{
		Nav:     m,
		Notify:  m,
		Launch:  m,
		Quit:    m,
		Timers:  m,
		Dialogs: m,
	}
	if deck != nil {
		deps.Store = deck
	}
	m.eng = engine.New(tree, deps, engine.Config{
		HoldThreshold: opts.HoldThreshold,
		NotifyTTL:     opts.ToastTTL,
	})
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search tiles"
	ti.CharLimit = 64
	m.searchInput = ti
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Engine exposes the navigation engine, mainly for tests.
func (m *Model) Engine() *engine.Engine { return m.eng }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForBackendEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(holdElapsedMsg{}):    m.handleHoldElapsedMsg,
		reflect.TypeOf(watchdogMsg{}):       m.handleWatchdogMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
		reflect.TypeOf(input.Event{}):       m.handleDeviceEventMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate drains the commands queued by collaborator callbacks during
// this update cycle.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// NavigateTo implements engine.Navigator via the command bus.
func (m *Model) NavigateTo(path string) {
	router := m.router
	m.pending = append(m.pending, m.bus.Execute(command.Request{
		ID:    "route",
		Label: path,
		Run: func() error {
			if router != nil {
				router.NavigateTo(path)
			}
			return nil
		},
	}))
}

// Launch implements engine.Launcher via the command bus.
func (m *Model) Launch(cmd string) {
	runner := m.runner
	m.pending = append(m.pending, m.bus.Execute(command.Request{
		ID:    "launch",
		Label: cmd,
		Run: func() error {
			if runner != nil {
				runner.Launch(cmd)
			}
			return nil
		},
	}))
}

// Notify implements engine.Notifier. Engine notifications are errors only.
func (m *Model) Notify(message string, d time.Duration) {
	m.setToast(message, d, true)
}

// Quit implements engine.Quitter.
func (m *Model) Quit() {
	m.pending = append(m.pending, tea.Quit)
}

// Schedule implements engine.Timers by arming a hold tick.
func (m *Model) Schedule(seq int, d time.Duration) {
	m.pending = append(m.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return holdElapsedMsg{seq: seq}
	}))
}

// Present implements engine.Chooser.
func (m *Model) Present(d *dialog.Dialog) {
	m.dlg = d
	events.Dialog.Open(d.Prompt(), len(d.Actions()))
}

func (m *Model) setToast(message string, d time.Duration, isErr bool) {
	if d <= 0 {
		d = 4 * time.Second
	}
	m.toastMsg = message
	m.toastErr = isErr
	m.toastExpire = time.Now().Add(d)
}

func (m *Model) currentToast() (string, bool) {
	if m.toastMsg != "" && !m.toastExpire.IsZero() && time.Now().After(m.toastExpire) {
		m.toastMsg = ""
		m.toastExpire = time.Time{}
	}
	return m.toastMsg, m.toastErr
}

func (m *Model) clearToast() {
	m.toastMsg = ""
	m.toastExpire = time.Time{}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		events.Action.Error(result.Err)
		m.setToast(result.Label+": "+result.Err.Error(), 0, true)
		return nil
	}
	if m.verbose {
		events.Action.Success(result.Label)
		m.setToast(result.Label, 0, false)
	}
	return nil
}
