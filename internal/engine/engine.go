// Package engine implements the launcher's navigation state machine:
// selection across the category grid, move mode, and the press/hold accept
// gesture. The engine owns the in-memory tile tree; persistence, launching,
// notifications, and routing are collaborator interfaces supplied by the
// caller.
package engine

import (
	"time"

	"github.com/atomicstack/tiledeck/internal/dialog"
	"github.com/atomicstack/tiledeck/internal/logging/events"
	"github.com/atomicstack/tiledeck/internal/tiles"
)

// State identifies the accept-gesture phase of the engine.
type State int

const (
	Idle State = iota
	Holding
	Moving
	Editing
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Holding:
		return "holding"
	case Moving:
		return "moving"
	case Editing:
		return "editing"
	}
	return "unknown"
}

// Saver persists a snapshot of the tile tree.
type Saver interface {
	Save(snapshot map[string]tiles.PersistedCategory) error
}

// Navigator routes to another view. Fire and forget.
type Navigator interface {
	NavigateTo(path string)
}

// Notifier surfaces a user-visible message for the given duration.
type Notifier interface {
	Notify(message string, d time.Duration)
}

// Launcher runs an opaque external command.
type Launcher interface {
	Launch(command string)
}

// Quitter terminates the session.
type Quitter interface {
	Quit()
}

// Timers arms the hold timer. Expiry must be delivered back to the engine
// as HoldElapsed with the same sequence number.
type Timers interface {
	Schedule(seq int, d time.Duration)
}

// Chooser presents a modal choice dialog to the user.
type Chooser interface {
	Present(d *dialog.Dialog)
}

// Deps bundles the engine's external collaborators. Nil fields are
// tolerated; the corresponding effects are skipped.
type Deps struct {
	Store   Saver
	Nav     Navigator
	Notify  Notifier
	Launch  Launcher
	Quit    Quitter
	Timers  Timers
	Dialogs Chooser
}

// Config carries engine tunables. Zero values fall back to the defaults.
type Config struct {
	HoldThreshold time.Duration
	NotifyTTL     time.Duration
}

const (
	// DefaultHoldThreshold is the press duration that turns a tap into a hold.
	DefaultHoldThreshold = 900 * time.Millisecond
	// DefaultNotifyTTL is how long error notifications stay visible.
	DefaultNotifyTTL = 4 * time.Second
)

// Engine owns the tile tree and all navigation state for one session.
type Engine struct {
	deps Deps

	tree    *tiles.Tree
	catIdx  int
	tileIdx int
	selCat  *tiles.Category
	selTile *tiles.Tile

	state      State
	holdSeq    int
	holdActive bool
	degenerate bool

	holdThreshold time.Duration
	notifyTTL     time.Duration
}

// New builds an engine over tree. A nil tree enters the degenerate state
// whose only affordance is creating the first tile.
func New(tree *tiles.Tree, deps Deps, cfg Config) *Engine {
	e := &Engine{
		deps:          deps,
		tree:          tree,
		holdThreshold: cfg.HoldThreshold,
		notifyTTL:     cfg.NotifyTTL,
	}
	if e.holdThreshold <= 0 {
		e.holdThreshold = DefaultHoldThreshold
	}
	if e.notifyTTL <= 0 {
		e.notifyTTL = DefaultNotifyTTL
	}
	if tree == nil || len(tree.Categories) == 0 {
		e.degenerate = true
		e.tileIdx = -1
		return e
	}
	e.selCat = tree.Categories[0]
	e.tileIdx = -1
	if len(e.selCat.Tiles) > 0 {
		e.tileIdx = 0
		e.selTile = e.selCat.Tiles[0]
	}
	return e
}

// Tree returns the engine-owned tile tree. Nil in the degenerate state.
func (e *Engine) Tree() *tiles.Tree { return e.tree }

// State returns the current accept-gesture state.
func (e *Engine) State() State { return e.state }

// Degenerate reports whether the engine started without persisted data.
func (e *Engine) Degenerate() bool { return e.degenerate }

// HoldActive reports whether a press-and-hold window is open. The UI shows
// the hold indicator while this is true.
func (e *Engine) HoldActive() bool { return e.holdActive }

// SelectedCategoryIndex returns the selected category index.
func (e *Engine) SelectedCategoryIndex() int { return e.catIdx }

// SelectedTileIndex returns the selected tile index. Immediately after a
// move lands past the end of a shorter category this is one past the last
// element; every read of the tile itself clamps.
func (e *Engine) SelectedTileIndex() int { return e.tileIdx }

// SelectedCategory returns the selected category, nil when degenerate.
func (e *Engine) SelectedCategory() *tiles.Category { return e.selCat }

// SelectedTile returns the selected tile, nil when the selected category is
// empty or the engine is degenerate.
func (e *Engine) SelectedTile() *tiles.Tile { return e.selTile }

// Reload swaps in a freshly built tree, keeping the selection on the same
// category name when it still exists. Only permitted while idle so an
// in-flight move or edit never loses its tile.
func (e *Engine) Reload(tree *tiles.Tree) bool {
	if e.state != Idle || tree == nil || len(tree.Categories) == 0 {
		return false
	}
	prevName := ""
	if e.selCat != nil {
		prevName = e.selCat.Name
	}
	e.tree = tree
	e.degenerate = false
	e.catIdx = 0
	for i, cat := range tree.Categories {
		if cat.Name == prevName {
			e.catIdx = i
			break
		}
	}
	e.selCat = tree.Categories[e.catIdx]
	if len(e.selCat.Tiles) == 0 {
		e.tileIdx = -1
		e.selTile = nil
		return true
	}
	if e.tileIdx < 0 {
		e.tileIdx = 0
	}
	if e.tileIdx >= len(e.selCat.Tiles) {
		e.tileIdx = len(e.selCat.Tiles) - 1
	}
	e.selTile = e.selCat.Tiles[e.tileIdx]
	return true
}

// normalizeTileIndex folds the transient after-append index back into
// bounds before the next operation reads it.
func (e *Engine) normalizeTileIndex() {
	if e.selCat == nil {
		return
	}
	if n := len(e.selCat.Tiles); e.tileIdx >= n {
		e.tileIdx = n - 1
	}
	if e.tileIdx < 0 && len(e.selCat.Tiles) > 0 {
		e.tileIdx = 0
	}
	e.selTile = e.clampedTile()
}

// clampedTile resolves the selected tile with the index clamped into the
// sequence bounds.
func (e *Engine) clampedTile() *tiles.Tile {
	if e.selCat == nil || len(e.selCat.Tiles) == 0 || e.tileIdx < 0 {
		return nil
	}
	i := e.tileIdx
	if i >= len(e.selCat.Tiles) {
		i = len(e.selCat.Tiles) - 1
	}
	return e.selCat.Tiles[i]
}

func (e *Engine) notify(message string) {
	if e.deps.Notify == nil {
		return
	}
	e.deps.Notify.Notify(message, e.notifyTTL)
}

func (e *Engine) navigateTo(path string) {
	events.Action.Navigate(path)
	if e.deps.Nav == nil {
		return
	}
	e.deps.Nav.NavigateTo(path)
}

// requestSave snapshots the tree and hands it to the store. Failures are
// surfaced to the user; the in-memory mutation stands either way.
func (e *Engine) requestSave() {
	if e.deps.Store == nil || e.tree == nil {
		return
	}
	if err := e.deps.Store.Save(e.tree.Snapshot()); err != nil {
		events.Action.Error(err)
		e.notify("Saving tiles failed: " + err.Error())
	}
}
