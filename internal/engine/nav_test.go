package engine

import (
	"testing"

	"github.com/atomicstack/tiledeck/internal/tiles"
)

func tileNames(cat *tiles.Category) []string {
	out := make([]string, 0, len(cat.Tiles))
	for _, tile := range cat.Tiles {
		out = append(out, tile.Name)
	}
	return out
}

func expectNames(t *testing.T, cat *tiles.Category, want ...string) {
	t.Helper()
	got := tileNames(cat)
	if len(got) != len(want) {
		t.Fatalf("expected %v in %q, got %v", want, cat.Name, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v in %q, got %v", want, cat.Name, got)
		}
	}
}

func TestMoveRightAdvancesSelection(t *testing.T) {
	fx := newTestEngine(testTree())
	if !fx.engine.MoveRight() {
		t.Fatalf("expected move right to succeed")
	}
	if fx.engine.SelectedTile().Name != "Quake" {
		t.Fatalf("expected Quake selected, got %q", fx.engine.SelectedTile().Name)
	}
	assertSelectionInvariant(t, fx.engine)
}

func TestMoveLeftAtFirstTileIsNoOp(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	if e.MoveLeft() {
		t.Fatalf("expected move left at index 0 to be a no-op")
	}
	if e.SelectedCategoryIndex() != 0 || e.SelectedTileIndex() != 0 {
		t.Fatalf("expected selection unchanged, got %d/%d", e.SelectedCategoryIndex(), e.SelectedTileIndex())
	}
	expectNames(t, e.SelectedCategory(), "Doom", "Quake", "Hexen")
	assertSelectionInvariant(t, e)
}

func TestMoveRightAtLastTileIsNoOp(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	e.MoveRight()
	e.MoveRight()
	if e.MoveRight() {
		t.Fatalf("expected move right at the last tile to be a no-op")
	}
	if e.SelectedTileIndex() != 2 {
		t.Fatalf("expected index 2, got %d", e.SelectedTileIndex())
	}
	assertSelectionInvariant(t, e)
}

func TestMoveUpAtFirstCategoryIsNoOp(t *testing.T) {
	fx := newTestEngine(testTree())
	if fx.engine.MoveUp() {
		t.Fatalf("expected move up at the first category to be a no-op")
	}
	if fx.engine.SelectedCategoryIndex() != 0 {
		t.Fatalf("expected category 0, got %d", fx.engine.SelectedCategoryIndex())
	}
	assertSelectionInvariant(t, fx.engine)
}

func TestMoveDownAtLastCategoryIsNoOp(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	last := len(e.Tree().Categories) - 1
	for e.SelectedCategoryIndex() < last {
		if !e.MoveDown() {
			t.Fatalf("expected move down toward the last category to succeed")
		}
	}
	if e.MoveDown() {
		t.Fatalf("expected move down at the last category to be a no-op")
	}
	if e.SelectedCategoryIndex() != last {
		t.Fatalf("expected category %d, got %d", last, e.SelectedCategoryIndex())
	}
	assertSelectionInvariant(t, e)
}

func TestMoveDownClampsIndexInShorterCategory(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	e.MoveRight()
	e.MoveRight()
	if !e.MoveDown() {
		t.Fatalf("expected move down to succeed")
	}
	if e.SelectedCategory().Name != "Tools" {
		t.Fatalf("expected Tools selected, got %q", e.SelectedCategory().Name)
	}
	if e.SelectedTileIndex() != 0 || e.SelectedTile().Name != "Top" {
		t.Fatalf("expected clamp to Top at index 0, got %d/%v", e.SelectedTileIndex(), e.SelectedTile())
	}
	assertSelectionInvariant(t, e)
}

func TestMoveDownIntoEmptyCategorySelectsNothing(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	e.MoveDown()
	if !e.MoveDown() {
		t.Fatalf("expected move down into Media to succeed")
	}
	if e.SelectedCategory().Name != "Media" {
		t.Fatalf("expected Media selected, got %q", e.SelectedCategory().Name)
	}
	if e.SelectedTile() != nil {
		t.Fatalf("expected no tile selection in an empty category")
	}
	assertSelectionInvariant(t, e)
}

func TestMoveUpOutOfEmptyCategoryRestoresSelection(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	e.MoveDown()
	e.MoveDown()
	if !e.MoveUp() {
		t.Fatalf("expected move up out of Media to succeed")
	}
	if e.SelectedCategory().Name != "Tools" {
		t.Fatalf("expected Tools selected, got %q", e.SelectedCategory().Name)
	}
	if e.SelectedTile() == nil || e.SelectedTile().Name != "Top" {
		t.Fatalf("expected Top selected, got %v", e.SelectedTile())
	}
	assertSelectionInvariant(t, e)
}

func TestMoveRightWhileMovingSwapsTiles(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	carried := e.SelectedTile()
	startMoving(t, fx)
	if !e.MoveRight() || !e.MoveRight() {
		t.Fatalf("expected both moves to succeed")
	}
	expectNames(t, e.SelectedCategory(), "Quake", "Hexen", "Doom")
	if e.SelectedTile() != carried {
		t.Fatalf("expected the carried tile to keep the selection")
	}
	if e.SelectedTileIndex() != 2 {
		t.Fatalf("expected index 2, got %d", e.SelectedTileIndex())
	}
	if got := len(e.SelectedCategory().Tiles); got != 3 {
		t.Fatalf("expected tile count unchanged, got %d", got)
	}
	assertSelectionInvariant(t, e)
}

func TestMovingIntoTransientCategoryIsFullNoOp(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	e.MoveDown()
	startMoving(t, fx)
	if !e.MoveDown() {
		t.Fatalf("expected the carry into Media to succeed")
	}
	if e.SelectedCategory().Name != "Media" {
		t.Fatalf("expected Media selected, got %q", e.SelectedCategory().Name)
	}
	catIdx, tileIdx := e.SelectedCategoryIndex(), e.SelectedTileIndex()
	system := e.Tree().Category(len(e.Tree().Categories) - 1)
	systemCount := len(system.Tiles)
	if e.MoveDown() {
		t.Fatalf("expected the transient category to repel the carried tile")
	}
	if e.SelectedCategoryIndex() != catIdx || e.SelectedTileIndex() != tileIdx {
		t.Fatalf("expected selection unchanged, got %d/%d", e.SelectedCategoryIndex(), e.SelectedTileIndex())
	}
	expectNames(t, e.SelectedCategory(), "Top")
	if len(system.Tiles) != systemCount {
		t.Fatalf("expected %q untouched, got %d tiles", tiles.SystemName, len(system.Tiles))
	}
	if e.State() != Moving {
		t.Fatalf("expected to stay in move mode, got %v", e.State())
	}
}

func TestMoveTransferConservesTiles(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	total := e.Tree().TileCount()
	carried := e.SelectedTile()
	startMoving(t, fx)
	if !e.MoveDown() {
		t.Fatalf("expected the transfer to succeed")
	}
	games := e.Tree().Category(0)
	tools := e.Tree().Category(1)
	if len(games.Tiles) != 2 {
		t.Fatalf("expected Games to shrink to 2 tiles, got %d", len(games.Tiles))
	}
	if len(tools.Tiles) != 2 {
		t.Fatalf("expected Tools to grow to 2 tiles, got %d", len(tools.Tiles))
	}
	if e.Tree().TileCount() != total {
		t.Fatalf("expected total tile count %d, got %d", total, e.Tree().TileCount())
	}
	seen := 0
	for _, cat := range e.Tree().Categories {
		for _, tile := range cat.Tiles {
			if tile == carried {
				seen++
			}
		}
	}
	if seen != 1 {
		t.Fatalf("expected the carried tile to appear exactly once, found %d", seen)
	}
	if carried.Category != "Tools" {
		t.Fatalf("expected ownership transfer to Tools, got %q", carried.Category)
	}
	if e.SelectedTile() != carried {
		t.Fatalf("expected the carried tile to keep the selection")
	}
}

func TestMoveAppendLeavesIndexPastEnd(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	e.MoveRight()
	e.MoveRight()
	carried := e.SelectedTile()
	startMoving(t, fx)
	if !e.MoveDown() {
		t.Fatalf("expected the transfer to succeed")
	}
	expectNames(t, e.SelectedCategory(), "Top", "Hexen")
	if e.SelectedTileIndex() != 2 {
		t.Fatalf("expected the after-append index to sit one past the end, got %d", e.SelectedTileIndex())
	}
	if e.SelectedTile() != carried {
		t.Fatalf("expected the carried tile to keep the selection")
	}
	if !e.MoveLeft() {
		t.Fatalf("expected the next move to fold the index back into bounds")
	}
	if e.SelectedTileIndex() != 0 {
		t.Fatalf("expected index 0 after moving left, got %d", e.SelectedTileIndex())
	}
	expectNames(t, e.SelectedCategory(), "Hexen", "Top")
	assertSelectionInvariant(t, e)
}

func TestMoveInsertShiftsDestinationTiles(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	carried := e.SelectedTile()
	startMoving(t, fx)
	if !e.MoveDown() {
		t.Fatalf("expected the transfer to succeed")
	}
	expectNames(t, e.SelectedCategory(), "Doom", "Top")
	if e.SelectedTileIndex() != 0 || e.SelectedTile() != carried {
		t.Fatalf("expected the carried tile selected at index 0, got %d", e.SelectedTileIndex())
	}
	assertSelectionInvariant(t, e)
}

func TestNavigationDroppedWhileEditing(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	e.PressAccept()
	e.HoldElapsed(fx.timers.lastSeq())
	if e.State() != Editing {
		t.Fatalf("expected editing state, got %v", e.State())
	}
	if e.MoveRight() || e.MoveLeft() || e.MoveUp() || e.MoveDown() {
		t.Fatalf("expected navigation to be dropped while editing")
	}
	if e.SelectedCategoryIndex() != 0 || e.SelectedTileIndex() != 0 {
		t.Fatalf("expected selection unchanged, got %d/%d", e.SelectedCategoryIndex(), e.SelectedTileIndex())
	}
}

func TestJumpToMovesSelectionDirectly(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	if !e.JumpTo(1, 0) {
		t.Fatalf("expected jump to Tools/0 to succeed")
	}
	if e.SelectedCategory().Name != "Tools" || e.SelectedTile().Name != "Top" {
		t.Fatalf("unexpected selection after jump: %v/%v", e.SelectedCategory(), e.SelectedTile())
	}
	assertSelectionInvariant(t, e)
}

func TestJumpToRefusedOutsideIdle(t *testing.T) {
	fx := newTestEngine(testTree())
	startMoving(t, fx)
	if fx.engine.JumpTo(1, 0) {
		t.Fatalf("expected jump to be refused while moving")
	}
}

func TestJumpToOutOfRangeIsNoOp(t *testing.T) {
	fx := newTestEngine(testTree())
	e := fx.engine
	if e.JumpTo(9, 0) || e.JumpTo(0, 9) || e.JumpTo(-1, 0) {
		t.Fatalf("expected out-of-range jumps to fail")
	}
	if e.SelectedCategoryIndex() != 0 || e.SelectedTileIndex() != 0 {
		t.Fatalf("expected selection unchanged, got %d/%d", e.SelectedCategoryIndex(), e.SelectedTileIndex())
	}
}
