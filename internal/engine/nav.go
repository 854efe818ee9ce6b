package engine

import (
	"github.com/atomicstack/tiledeck/internal/logging/events"
	"github.com/atomicstack/tiledeck/internal/tiles"
)

// MoveRight advances the selection to the next tile in the category. In
// move mode the carried tile first swaps places with its right neighbor so
// the carried tile keeps the selection.
func (e *Engine) MoveRight() bool { return e.moveHorizontal(1) }

// MoveLeft advances the selection to the previous tile in the category. In
// move mode the carried tile first swaps places with its left neighbor.
func (e *Engine) MoveLeft() bool { return e.moveHorizontal(-1) }

// MoveDown switches the selection to the next category. In move mode the
// carried tile transfers into it unless the category is transient.
func (e *Engine) MoveDown() bool { return e.moveVertical(1) }

// MoveUp switches the selection to the previous category. In move mode the
// carried tile transfers into it unless the category is transient.
func (e *Engine) MoveUp() bool { return e.moveVertical(-1) }

// JumpTo moves the selection straight to the tile at the given coordinates.
// Only permitted while idle; search results never interrupt a gesture.
func (e *Engine) JumpTo(catIdx, tileIdx int) bool {
	if e.state != Idle || e.degenerate || e.tree == nil {
		return false
	}
	cat := e.tree.Category(catIdx)
	if cat == nil || cat.Tile(tileIdx) == nil {
		return false
	}
	e.catIdx = catIdx
	e.selCat = cat
	e.tileIdx = tileIdx
	e.selTile = cat.Tiles[tileIdx]
	events.Nav.Select(cat.Name, catIdx, tileIdx)
	return true
}

func (e *Engine) moveHorizontal(delta int) bool {
	if e.state == Editing || e.degenerate || e.selCat == nil {
		return false
	}
	e.normalizeTileIndex()
	target := e.tileIdx + delta
	if e.selCat.Tile(target) == nil {
		return false
	}
	if e.state == Moving {
		e.selCat.SwapTiles(e.tileIdx, target)
		events.Nav.Swap(e.selCat.Name, e.tileIdx, target)
	}
	e.tileIdx = target
	e.selTile = e.selCat.Tiles[target]
	events.Nav.Select(e.selCat.Name, e.catIdx, e.tileIdx)
	return true
}

func (e *Engine) moveVertical(delta int) bool {
	if e.state == Editing || e.degenerate || e.tree == nil {
		return false
	}
	neighbor := e.tree.Category(e.catIdx + delta)
	if neighbor == nil {
		return false
	}
	if e.state == Moving && neighbor.Transient {
		if tile := e.clampedTile(); tile != nil {
			events.Nav.Repelled(tile.Name, neighbor.Name)
		}
		return false
	}
	e.normalizeTileIndex()
	var carried *tiles.Tile
	if e.state == Moving {
		carried = e.selCat.RemoveTile(e.tileIdx)
		if carried != nil {
			events.Nav.Transfer(carried.Name, e.selCat.Name, neighbor.Name)
		}
	}
	e.catIdx += delta
	e.selCat = neighbor
	e.selectProperCategoryTile(carried)
	events.Nav.Select(e.selCat.Name, e.catIdx, e.tileIdx)
	return true
}

// selectProperCategoryTile resolves the tile selection after a category
// switch, inserting the carried tile when a move is in flight. When the
// carried tile is appended past the end of a shorter category the index is
// left one past the last element on purpose; reads clamp and the next
// operation folds it back into bounds.
func (e *Engine) selectProperCategoryTile(carried *tiles.Tile) {
	if e.tileIdx >= len(e.selCat.Tiles) {
		if carried != nil {
			e.selCat.AppendTile(carried)
			e.tileIdx = len(e.selCat.Tiles)
		} else {
			e.tileIdx = len(e.selCat.Tiles) - 1
		}
	} else if carried != nil {
		if e.tileIdx < 0 {
			e.tileIdx = 0
		}
		e.selCat.InsertTile(e.tileIdx, carried)
	}
	if e.tileIdx < 0 && len(e.selCat.Tiles) > 0 {
		e.tileIdx = 0
	}
	e.selTile = e.clampedTile()
}
