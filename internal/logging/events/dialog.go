package events

import "github.com/atomicstack/tiledeck/internal/logging"

type DialogTracer struct{}

var Dialog = DialogTracer{}

func (DialogTracer) Open(prompt string, actions int) {
	logging.Trace("dialog.open", map[string]interface{}{"prompt": prompt, "actions": actions})
}

func (DialogTracer) Cycle(index int) {
	logging.Trace("dialog.cycle", map[string]interface{}{"index": index})
}

func (DialogTracer) Settle() {
	logging.Trace("dialog.settle", nil)
}

func (DialogTracer) Accept(id string) {
	logging.Trace("dialog.accept", map[string]interface{}{"action": id})
}

func (DialogTracer) Dismiss() {
	logging.Trace("dialog.dismiss", nil)
}
