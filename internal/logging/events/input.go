package events

import "github.com/atomicstack/tiledeck/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) HoldArmed(seq int) {
	logging.Trace("input.hold.armed", map[string]interface{}{"seq": seq})
}

func (InputTracer) HoldElapsed(seq int) {
	logging.Trace("input.hold.elapsed", map[string]interface{}{"seq": seq})
}

func (InputTracer) HoldStale(seq, current int) {
	logging.Trace("input.hold.stale", map[string]interface{}{"seq": seq, "current": current})
}

func (InputTracer) Tap() {
	logging.Trace("input.tap", nil)
}

func (InputTracer) WatchdogArmed(seq int) {
	logging.Trace("input.watchdog.armed", map[string]interface{}{"seq": seq})
}

func (InputTracer) WatchdogRelease(seq int) {
	logging.Trace("input.watchdog.release", map[string]interface{}{"seq": seq})
}

func (InputTracer) DeviceKey(code string, pressed bool) {
	logging.Trace("input.device.key", map[string]interface{}{"code": code, "pressed": pressed})
}

func (InputTracer) DeviceError(err error) {
	if err == nil {
		return
	}
	logging.Trace("input.device.error", map[string]interface{}{"error": err.Error()})
}

func (InputTracer) Dropped(key, state string) {
	logging.Trace("input.dropped", map[string]interface{}{"key": key, "state": state})
}
