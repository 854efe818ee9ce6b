package engine

import "github.com/atomicstack/tiledeck/internal/tiles"

// Style is the engine's contribution to tile rendering. Colors and the
// image path pass through from the tile; Dimmed marks unselected tiles
// while a move is in flight.
type Style struct {
	BackgroundColor string
	TextColor       string
	Image           string
	Dimmed          bool
}

// StyleOf returns the style descriptor for tile.
func (e *Engine) StyleOf(tile *tiles.Tile) Style {
	if tile == nil {
		return Style{}
	}
	return Style{
		BackgroundColor: tile.BackgroundColor,
		TextColor:       tile.TextColor,
		Image:           tile.Image,
		Dimmed:          e.state == Moving && tile != e.selTile,
	}
}
