package tiles

import "sort"

// Tile is a single launchable cell in the deck grid.
type Tile struct {
	Name            string
	Category        string
	Transient       bool
	BackgroundColor string
	TextColor       string
	Image           string
	Command         string
}

// Category is one ordered row of tiles. Tile order is the navigation order.
type Category struct {
	Name      string
	Order     int
	Transient bool
	Tiles     []*Tile
}

// Tree is the navigable sequence of categories for one session.
type Tree struct {
	Categories []*Category
}

// PersistedTile is the stored form of a tile.
type PersistedTile struct {
	Name            string `yaml:"name"`
	BackgroundColor string `yaml:"background_color,omitempty"`
	TextColor       string `yaml:"text_color,omitempty"`
	Image           string `yaml:"image,omitempty"`
	Command         string `yaml:"command"`
}

// PersistedCategory is the stored form of a category.
type PersistedCategory struct {
	Order int             `yaml:"order"`
	Tiles []PersistedTile `yaml:"tiles"`
}

// Build assembles the navigation tree from persisted categories: real
// categories sorted by order, then the synthetic System category appended.
func Build(persisted map[string]PersistedCategory) *Tree {
	names := make([]string, 0, len(persisted))
	for name := range persisted {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := persisted[names[i]], persisted[names[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return names[i] < names[j]
	})
	tree := &Tree{Categories: make([]*Category, 0, len(names)+1)}
	for _, name := range names {
		entry := persisted[name]
		cat := &Category{Name: name, Order: entry.Order, Tiles: make([]*Tile, 0, len(entry.Tiles))}
		for _, stored := range entry.Tiles {
			cat.Tiles = append(cat.Tiles, &Tile{
				Name:            stored.Name,
				Category:        name,
				BackgroundColor: stored.BackgroundColor,
				TextColor:       stored.TextColor,
				Image:           stored.Image,
				Command:         stored.Command,
			})
		}
		tree.Categories = append(tree.Categories, cat)
	}
	tree.Categories = append(tree.Categories, SystemCategory(len(tree.Categories)))
	return tree
}

// Category returns the category at index i, or nil when out of range.
func (t *Tree) Category(i int) *Category {
	if t == nil || i < 0 || i >= len(t.Categories) {
		return nil
	}
	return t.Categories[i]
}

// TileCount returns the total number of tiles across all categories.
func (t *Tree) TileCount() int {
	if t == nil {
		return 0
	}
	total := 0
	for _, cat := range t.Categories {
		total += len(cat.Tiles)
	}
	return total
}

// Snapshot returns the persistable form of the tree. Transient categories
// and transient tiles are excluded.
func (t *Tree) Snapshot() map[string]PersistedCategory {
	if t == nil {
		return nil
	}
	out := make(map[string]PersistedCategory, len(t.Categories))
	for _, cat := range t.Categories {
		if cat.Transient {
			continue
		}
		stored := PersistedCategory{Order: cat.Order, Tiles: make([]PersistedTile, 0, len(cat.Tiles))}
		for _, tile := range cat.Tiles {
			if tile.Transient {
				continue
			}
			stored.Tiles = append(stored.Tiles, PersistedTile{
				Name:            tile.Name,
				BackgroundColor: tile.BackgroundColor,
				TextColor:       tile.TextColor,
				Image:           tile.Image,
				Command:         tile.Command,
			})
		}
		out[cat.Name] = stored
	}
	return out
}

// Tile returns the tile at index i, or nil when out of range.
func (c *Category) Tile(i int) *Tile {
	if c == nil || i < 0 || i >= len(c.Tiles) {
		return nil
	}
	return c.Tiles[i]
}

// SwapTiles exchanges the tiles at i and j within the sequence.
func (c *Category) SwapTiles(i, j int) bool {
	if c == nil || i < 0 || j < 0 || i >= len(c.Tiles) || j >= len(c.Tiles) {
		return false
	}
	c.Tiles[i], c.Tiles[j] = c.Tiles[j], c.Tiles[i]
	return true
}

// RemoveTile removes and returns the tile at index i. Out-of-range indices
// are a no-op and return nil.
func (c *Category) RemoveTile(i int) *Tile {
	if c == nil || i < 0 || i >= len(c.Tiles) {
		return nil
	}
	tile := c.Tiles[i]
	c.Tiles = append(c.Tiles[:i], c.Tiles[i+1:]...)
	return tile
}

// InsertTile places tile at index i, shifting later tiles right. The index
// is clamped to the sequence bounds. Ownership transfers to c.
func (c *Category) InsertTile(i int, tile *Tile) {
	if c == nil || tile == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(c.Tiles) {
		i = len(c.Tiles)
	}
	c.Tiles = append(c.Tiles, nil)
	copy(c.Tiles[i+1:], c.Tiles[i:])
	c.Tiles[i] = tile
	tile.Category = c.Name
}

// AppendTile adds tile at the end of the sequence. Ownership transfers to c.
func (c *Category) AppendTile(tile *Tile) {
	if c == nil || tile == nil {
		return
	}
	c.Tiles = append(c.Tiles, tile)
	tile.Category = c.Name
}
