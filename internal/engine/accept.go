package engine

import (
	"github.com/atomicstack/tiledeck/internal/dialog"
	"github.com/atomicstack/tiledeck/internal/logging/events"
	"github.com/atomicstack/tiledeck/internal/tiles"
)

// PressAccept feeds a physical accept-key press into the state machine.
// One key serves four gestures, so what a press means depends entirely on
// the current state: idle arms the hold timer, moving ignores presses (the
// release drops the tile), editing swallows everything.
func (e *Engine) PressAccept() {
	switch e.state {
	case Idle:
		if e.degenerate {
			return
		}
		e.holdSeq++
		e.holdActive = true
		e.state = Holding
		if e.deps.Timers != nil {
			e.deps.Timers.Schedule(e.holdSeq, e.holdThreshold)
		}
		events.Input.HoldArmed(e.holdSeq)
	case Holding:
		// key auto-repeat while the hold window is open
	case Moving:
		// the release finalizes the move; presses are ignored
	case Editing:
		e.clearHold()
	}
}

// ReleaseAccept feeds a physical accept-key release into the state machine.
func (e *Engine) ReleaseAccept() {
	switch e.state {
	case Idle:
		if e.degenerate {
			e.navigateTo(RouteNewTile)
		}
	case Holding:
		e.cancelHold()
		e.state = Idle
		events.Input.Tap()
		e.Activate(e.selTile)
	case Moving:
		e.finishMove()
	case Editing:
		e.clearHold()
	}
}

// HoldElapsed completes the hold gesture for the given timer sequence.
// Stale sequences are ignored, which makes hold cancellation idempotent.
func (e *Engine) HoldElapsed(seq int) {
	if e.state != Holding || seq != e.holdSeq {
		events.Input.HoldStale(seq, e.holdSeq)
		return
	}
	events.Input.HoldElapsed(seq)
	e.holdActive = false
	tile := e.selTile
	if tile != nil && !tile.Transient {
		e.Edit(tile)
		return
	}
	e.state = Idle
	e.Activate(tile)
}

func (e *Engine) cancelHold() {
	e.holdSeq++
	e.holdActive = false
}

func (e *Engine) clearHold() {
	if e.holdActive {
		e.cancelHold()
	}
}

func (e *Engine) finishMove() {
	e.state = Idle
	if e.selTile != nil {
		events.Nav.MoveFinish(e.selTile.Name)
	}
	e.requestSave()
}

// Activate runs the tile's command: internal commands dispatch to engine
// operations, anything else goes to the external launcher unconditionally.
func (e *Engine) Activate(tile *tiles.Tile) {
	if tile == nil {
		return
	}
	if op, ok := internalOp(tile.Command); ok {
		e.dispatchInternal(op)
		return
	}
	events.Action.Launch(tile.Name, tile.Command)
	if e.deps.Launch != nil {
		e.deps.Launch.Launch(tile.Command)
	}
}

// Edit opens the action menu for tile. Transient tiles are never editable.
// Navigation input is dropped until the dialog resolves and the dialog
// opens guarded so the accept key still held from the hold gesture cannot
// leak in as its first input.
func (e *Engine) Edit(tile *tiles.Tile) {
	if tile == nil || tile.Transient || e.state == Editing {
		return
	}
	e.state = Editing
	e.holdActive = false
	events.Action.EditMenu(tile.Name)
	d := dialog.New(tile.Name, []dialog.Action{
		// vvv positions are user-visible; do NOT reorder these! vvv
		{ID: "arrange", Caption: "Arrange"},
		{ID: "edit", Caption: "Edit"},
		{ID: "cancel", Caption: "Cancel"},
		{ID: "delete", Caption: "Delete"},
		// ^^^ do NOT reorder these! ^^^
	}, e.editResolved, dialog.WithGuard())
	if e.deps.Dialogs != nil {
		e.deps.Dialogs.Present(d)
		return
	}
	d.Dismiss()
}

// editResolved applies the edit-menu choice. A nil action means the dialog
// was dismissed and is treated as cancel.
func (e *Engine) editResolved(choice *dialog.Action) {
	e.state = Idle
	if choice == nil {
		return
	}
	switch choice.ID {
	case "arrange":
		e.state = Moving
		if e.selTile != nil {
			events.Nav.MoveStart(e.selTile.Name)
		}
	case "edit":
		if e.selCat != nil {
			e.navigateTo(RouteEditTile(e.selCat.Name, e.tileIdx))
		}
	case "delete":
		e.deleteSelected()
	}
}

// deleteSelected removes the selected tile from its category and requests
// a save. Acting on an index that no longer exists is a no-op.
func (e *Engine) deleteSelected() {
	if e.selCat == nil {
		return
	}
	e.normalizeTileIndex()
	removed := e.selCat.RemoveTile(e.tileIdx)
	if removed == nil {
		return
	}
	events.Nav.Delete(removed.Name, e.selCat.Name)
	if e.tileIdx >= len(e.selCat.Tiles) {
		e.tileIdx = len(e.selCat.Tiles) - 1
	}
	e.selTile = e.clampedTile()
	e.requestSave()
}
