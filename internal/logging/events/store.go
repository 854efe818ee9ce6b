package events

import "github.com/atomicstack/tiledeck/internal/logging"

type StoreTracer struct{}

type SearchTracer struct{}

var (
	Store  = StoreTracer{}
	Search = SearchTracer{}
)

func (StoreTracer) Loaded(path string, categories int) {
	logging.Trace("store.load", map[string]interface{}{"path": path, "categories": categories})
}

func (StoreTracer) LoadError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.load.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (StoreTracer) Saved(path string, categories int) {
	logging.Trace("store.save", map[string]interface{}{"path": path, "categories": categories})
}

func (StoreTracer) SaveError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.save.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (StoreTracer) Changed(path string) {
	logging.Trace("store.watch.changed", map[string]interface{}{"path": path})
}

func (StoreTracer) ReloadSkipped(path, state string) {
	logging.Trace("store.watch.skipped", map[string]interface{}{"path": path, "state": state})
}

func (SearchTracer) Open() {
	logging.Trace("search.open", nil)
}

func (SearchTracer) Query(query string, matches int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Jump(category string, tile int) {
	logging.Trace("search.jump", map[string]interface{}{"category": category, "tile": tile})
}

func (SearchTracer) Close() {
	logging.Trace("search.close", nil)
}
