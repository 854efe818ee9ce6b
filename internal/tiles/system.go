package tiles

// CommandScheme prefixes commands the engine interprets itself instead of
// handing to the external launcher. The segment after the scheme names the
// owning application and is skipped during dispatch.
const CommandScheme = "about:"

// SystemName is the name of the synthetic category appended to every tree.
const SystemName = "System"

const commandPrefix = CommandScheme + "tiledeck/"

var systemTiles = []struct {
	name    string
	command string
}{
	// vvv do NOT reorder these! vvv
	{"Add Tile", commandPrefix + "add-tile"},
	{"Edit Categories", commandPrefix + "edit-categories"},
	{"Settings", commandPrefix + "settings"},
	{"Exit", commandPrefix + "exit"},
	// ^^^ do NOT reorder these! ^^^
}

// SystemCategory returns the synthetic transient category of built-in
// actions. It is appended after the real categories and never persisted.
func SystemCategory(order int) *Category {
	cat := &Category{Name: SystemName, Order: order, Transient: true, Tiles: make([]*Tile, 0, len(systemTiles))}
	for _, entry := range systemTiles {
		cat.Tiles = append(cat.Tiles, &Tile{
			Name:      entry.name,
			Category:  SystemName,
			Transient: true,
			Command:   entry.command,
		})
	}
	return cat
}
