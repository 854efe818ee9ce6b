// Package app bootstraps the launcher: it loads the persisted deck, starts
// the file watcher and the optional input device reader, and runs the
// Bubble Tea program.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tiledeck/internal/backend"
	"github.com/atomicstack/tiledeck/internal/input"
	"github.com/atomicstack/tiledeck/internal/launch"
	"github.com/atomicstack/tiledeck/internal/logging/events"
	"github.com/atomicstack/tiledeck/internal/store"
	"github.com/atomicstack/tiledeck/internal/tiles"
	"github.com/atomicstack/tiledeck/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Deck             string
	Router           string
	Shell            string
	Device           string
	HoldThreshold    time.Duration
	WatchdogInterval time.Duration
	ToastTTL         time.Duration
	PollInterval     time.Duration
	ShowFooter       bool
	Verbose          bool
}

// ResolveDeckPath returns the deck document location: the configured path
// when set, the per-user default otherwise.
func ResolveDeckPath(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	return store.DefaultPath()
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	deckPath, err := ResolveDeckPath(cfg.Deck)
	if err != nil {
		return fmt.Errorf("resolve deck path: %w", err)
	}
	deck := store.New(deckPath)

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = 1500 * time.Millisecond
	}
	watcher := backend.NewWatcher(deckPath, pollInterval)
	defer watcher.Stop()

	runner := launch.NewRunner(cfg.Shell)
	router := launch.NewRouter(cfg.Router, runner)

	model := newModel(cfg, deck, watcher, runner, router)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if cfg.Device != "" {
		source, err := input.Open(cfg.Device)
		if err != nil {
			return fmt.Errorf("open input device %s: %w", cfg.Device, err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go source.Run(ctx, program)
	}

	_, err = program.Run()
	events.App.Stop()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newModel builds the UI over the loaded deck. A missing document is a
// first run; a broken one starts the same degenerate session with the load
// error surfaced as a toast. A session over a broken deck owns no tree, so
// nothing inside it can save over the document on disk.
func newModel(cfg Config, deck *store.Store, watcher *backend.Watcher, runner ui.CommandRunner, router ui.RouteHandler) *ui.Model {
	tree, loadErr := loadTree(deck)
	model := ui.NewModel(tree, deck, watcher, ui.Options{
		ShowFooter:       cfg.ShowFooter,
		Verbose:          cfg.Verbose,
		HoldThreshold:    cfg.HoldThreshold,
		WatchdogInterval: cfg.WatchdogInterval,
		ToastTTL:         cfg.ToastTTL,
		DeviceInput:      cfg.Device != "",
		Runner:           runner,
		Router:           router,
	})
	if loadErr != nil {
		model.Notify("Loading deck failed: "+loadErr.Error(), cfg.ToastTTL)
	}
	return model
}

// loadTree reads the persisted deck. A missing document is a first run and
// yields a nil tree with no error; any other failure yields a nil tree and
// the error for the caller to surface.
func loadTree(deck *store.Store) (*tiles.Tree, error) {
	persisted, err := deck.Load()
	if err != nil {
		if errors.Is(err, store.ErrNoDeck) {
			return nil, nil
		}
		return nil, err
	}
	return tiles.Build(persisted), nil
}
