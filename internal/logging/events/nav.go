package events

import "github.com/atomicstack/tiledeck/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Select(category string, categoryIndex, tileIndex int) {
	logging.Trace("nav.select", map[string]interface{}{
		"category": category,
		"catIndex": categoryIndex,
		"tile":     tileIndex,
	})
}

func (NavTracer) Swap(category string, from, to int) {
	logging.Trace("nav.swap", map[string]interface{}{"category": category, "from": from, "to": to})
}

func (NavTracer) Transfer(tile, from, to string) {
	logging.Trace("nav.transfer", map[string]interface{}{"tile": tile, "from": from, "to": to})
}

func (NavTracer) Repelled(tile, category string) {
	logging.Trace("nav.repelled", map[string]interface{}{"tile": tile, "category": category})
}

func (NavTracer) MoveStart(tile string) {
	logging.Trace("nav.move.start", map[string]interface{}{"tile": tile})
}

func (NavTracer) MoveFinish(tile string) {
	logging.Trace("nav.move.finish", map[string]interface{}{"tile": tile})
}

func (NavTracer) Delete(tile, category string) {
	logging.Trace("nav.delete", map[string]interface{}{"tile": tile, "category": category})
}
