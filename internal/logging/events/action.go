package events

import "github.com/atomicstack/tiledeck/internal/logging"

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (ActionTracer) Launch(tile, command string) {
	logging.Trace("action.launch", map[string]interface{}{"tile": tile, "command": command})
}

func (ActionTracer) Internal(op string) {
	logging.Trace("action.internal", map[string]interface{}{"op": op})
}

func (ActionTracer) UnknownInternal(op string) {
	logging.Trace("action.internal.unknown", map[string]interface{}{"op": op})
}

func (ActionTracer) Navigate(path string) {
	logging.Trace("action.navigate", map[string]interface{}{"path": path})
}

func (ActionTracer) EditMenu(tile string) {
	logging.Trace("action.edit-menu", map[string]interface{}{"tile": tile})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
