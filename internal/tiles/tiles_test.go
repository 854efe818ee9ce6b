package tiles

import (
	"strings"
	"testing"
)

func testTile(name string) *Tile {
	return &Tile{Name: name, Command: "run-" + name}
}

func testCategory(name string, tileNames ...string) *Category {
	cat := &Category{Name: name}
	for _, tn := range tileNames {
		cat.AppendTile(testTile(tn))
	}
	return cat
}

func TestBuildSortsCategoriesByOrder(t *testing.T) {
	tree := Build(map[string]PersistedCategory{
		"Media": {Order: 2},
		"Games": {Order: 0},
		"Tools": {Order: 1},
	})
	got := make([]string, 0, len(tree.Categories))
	for _, cat := range tree.Categories {
		got = append(got, cat.Name)
	}
	want := []string{"Games", "Tools", "Media", SystemName}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected category %d to be %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBuildBreaksOrderTiesByName(t *testing.T) {
	tree := Build(map[string]PersistedCategory{
		"Zeta":  {Order: 0},
		"Alpha": {Order: 0},
	})
	if tree.Categories[0].Name != "Alpha" || tree.Categories[1].Name != "Zeta" {
		t.Fatalf("expected tie broken by name, got %q then %q", tree.Categories[0].Name, tree.Categories[1].Name)
	}
}

func TestBuildSetsTileBackrefs(t *testing.T) {
	tree := Build(map[string]PersistedCategory{
		"Games": {Order: 0, Tiles: []PersistedTile{{Name: "Doom", Command: "doom"}}},
	})
	tile := tree.Categories[0].Tile(0)
	if tile == nil {
		t.Fatalf("expected a tile in Games")
	}
	if tile.Category != "Games" {
		t.Fatalf("expected back-reference Games, got %q", tile.Category)
	}
}

func TestBuildAppendsSystemCategoryLast(t *testing.T) {
	tree := Build(map[string]PersistedCategory{
		"Games": {Order: 0},
		"Tools": {Order: 1},
	})
	last := tree.Categories[len(tree.Categories)-1]
	if last.Name != SystemName {
		t.Fatalf("expected last category %q, got %q", SystemName, last.Name)
	}
	if !last.Transient {
		t.Fatalf("expected System category to be transient")
	}
	if last.Order != 2 {
		t.Fatalf("expected System order 2, got %d", last.Order)
	}
	if len(last.Tiles) != 4 {
		t.Fatalf("expected 4 system tiles, got %d", len(last.Tiles))
	}
	for i, tile := range last.Tiles {
		if !tile.Transient {
			t.Fatalf("expected system tile %d to be transient", i)
		}
		if !strings.HasPrefix(tile.Command, CommandScheme) {
			t.Fatalf("expected internal command for system tile %d, got %q", i, tile.Command)
		}
		if tile.Category != SystemName {
			t.Fatalf("expected system tile %d back-reference %q, got %q", i, SystemName, tile.Category)
		}
	}
}

func TestBuildEmptyMapYieldsOnlySystem(t *testing.T) {
	tree := Build(map[string]PersistedCategory{})
	if len(tree.Categories) != 1 {
		t.Fatalf("expected only the System category, got %d categories", len(tree.Categories))
	}
	if tree.Categories[0].Name != SystemName {
		t.Fatalf("expected System category, got %q", tree.Categories[0].Name)
	}
	if tree.Categories[0].Order != 0 {
		t.Fatalf("expected System order 0, got %d", tree.Categories[0].Order)
	}
}

func TestSnapshotExcludesTransient(t *testing.T) {
	tree := Build(map[string]PersistedCategory{
		"Games": {Order: 0, Tiles: []PersistedTile{{Name: "Doom", Command: "doom"}}},
	})
	tree.Categories[0].AppendTile(&Tile{Name: "Ghost", Transient: true})
	snapshot := tree.Snapshot()
	if _, ok := snapshot[SystemName]; ok {
		t.Fatalf("expected System category excluded from snapshot")
	}
	games, ok := snapshot["Games"]
	if !ok {
		t.Fatalf("expected Games in snapshot")
	}
	if len(games.Tiles) != 1 || games.Tiles[0].Name != "Doom" {
		t.Fatalf("expected only Doom persisted, got %+v", games.Tiles)
	}
}

func TestSnapshotRoundTripsThroughBuild(t *testing.T) {
	original := map[string]PersistedCategory{
		"Games": {Order: 0, Tiles: []PersistedTile{
			{Name: "Doom", Command: "doom", BackgroundColor: "#aa0000", TextColor: "#ffffff"},
			{Name: "Quake", Command: "quake", Image: "quake.png"},
		}},
		"Tools": {Order: 1, Tiles: []PersistedTile{{Name: "Top", Command: "top"}}},
	}
	snapshot := Build(original).Snapshot()
	if len(snapshot) != len(original) {
		t.Fatalf("expected %d categories, got %d", len(original), len(snapshot))
	}
	for name, want := range original {
		got, ok := snapshot[name]
		if !ok {
			t.Fatalf("expected category %q in snapshot", name)
		}
		if got.Order != want.Order {
			t.Fatalf("expected %q order %d, got %d", name, want.Order, got.Order)
		}
		if len(got.Tiles) != len(want.Tiles) {
			t.Fatalf("expected %q to keep %d tiles, got %d", name, len(want.Tiles), len(got.Tiles))
		}
		for i := range want.Tiles {
			if got.Tiles[i] != want.Tiles[i] {
				t.Fatalf("expected %q tile %d to round-trip, got %+v", name, i, got.Tiles[i])
			}
		}
	}
}

func TestRemoveTileOutOfRangeIsNoOp(t *testing.T) {
	cat := testCategory("Games", "a", "b")
	if tile := cat.RemoveTile(5); tile != nil {
		t.Fatalf("expected nil for out-of-range removal, got %v", tile)
	}
	if tile := cat.RemoveTile(-1); tile != nil {
		t.Fatalf("expected nil for negative removal, got %v", tile)
	}
	if len(cat.Tiles) != 2 {
		t.Fatalf("expected tile count unchanged, got %d", len(cat.Tiles))
	}
}

func TestRemoveTileReturnsRemoved(t *testing.T) {
	cat := testCategory("Games", "a", "b", "c")
	tile := cat.RemoveTile(1)
	if tile == nil || tile.Name != "b" {
		t.Fatalf("expected to remove b, got %v", tile)
	}
	if len(cat.Tiles) != 2 || cat.Tiles[0].Name != "a" || cat.Tiles[1].Name != "c" {
		t.Fatalf("expected [a c] after removal, got %v", names(cat))
	}
}

func TestInsertTileShiftsRight(t *testing.T) {
	cat := testCategory("Games", "a", "c")
	tile := testTile("b")
	cat.InsertTile(1, tile)
	if len(cat.Tiles) != 3 {
		t.Fatalf("expected 3 tiles, got %d", len(cat.Tiles))
	}
	if cat.Tiles[1] != tile {
		t.Fatalf("expected b at index 1, got %q", cat.Tiles[1].Name)
	}
	if cat.Tiles[2].Name != "c" {
		t.Fatalf("expected c shifted to index 2, got %q", cat.Tiles[2].Name)
	}
	if tile.Category != "Games" {
		t.Fatalf("expected ownership transfer, got category %q", tile.Category)
	}
}

func TestInsertTileClampsIndex(t *testing.T) {
	cat := testCategory("Games", "a")
	cat.InsertTile(10, testTile("z"))
	if cat.Tiles[len(cat.Tiles)-1].Name != "z" {
		t.Fatalf("expected z appended on clamped insert, got %v", names(cat))
	}
	cat.InsertTile(-3, testTile("front"))
	if cat.Tiles[0].Name != "front" {
		t.Fatalf("expected front at index 0 on clamped insert, got %v", names(cat))
	}
}

func TestSwapTilesBounds(t *testing.T) {
	cat := testCategory("Games", "a", "b")
	if cat.SwapTiles(0, 2) {
		t.Fatalf("expected out-of-range swap to fail")
	}
	if !cat.SwapTiles(0, 1) {
		t.Fatalf("expected in-range swap to succeed")
	}
	if cat.Tiles[0].Name != "b" || cat.Tiles[1].Name != "a" {
		t.Fatalf("expected [b a] after swap, got %v", names(cat))
	}
}

func TestTileCountSpansCategories(t *testing.T) {
	tree := Build(map[string]PersistedCategory{
		"Games": {Order: 0, Tiles: []PersistedTile{{Name: "a"}, {Name: "b"}}},
		"Tools": {Order: 1, Tiles: []PersistedTile{{Name: "c"}}},
	})
	if got := tree.TileCount(); got != 7 {
		t.Fatalf("expected 7 tiles including system tiles, got %d", got)
	}
}

func names(c *Category) []string {
	out := make([]string, 0, len(c.Tiles))
	for _, tile := range c.Tiles {
		out = append(out, tile.Name)
	}
	return out
}
