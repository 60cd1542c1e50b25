package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Print(text string) {
	logging.Trace("launch.print", map[string]interface{}{"text": text})
}

func (LaunchTracer) Spawn(argv []string, pid int) {
	logging.Trace("launch.spawn", map[string]interface{}{"argv": argv, "pid": pid})
}

func (LaunchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.error", map[string]interface{}{"error": err.Error()})
}
