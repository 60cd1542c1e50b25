package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type SourceTracer struct{}

var Source = SourceTracer{}

func (SourceTracer) Scan(dirs []string) {
	logging.Trace("source.scan", map[string]interface{}{"dirs": dirs})
}

func (SourceTracer) Skip(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("source.skip", payload)
}

func (SourceTracer) Read(lines int) {
	logging.Trace("source.read", map[string]interface{}{"lines": lines})
}

func (SourceTracer) Done(mode string, candidates int) {
	logging.Trace("source.done", map[string]interface{}{"mode": mode, "candidates": candidates})
}
