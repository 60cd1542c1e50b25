package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type SessionTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Session = SessionTracer{}
)

func (UITracer) Cursor(cursor, matches int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor, "matches": matches})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (FilterTracer) Append(query string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Backspace(query string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) WordBackspace(query string, matches int) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared(matches int) {
	logging.Trace("filter.clear", map[string]interface{}{"matches": matches})
}

func (FilterTracer) Complete(query string) {
	logging.Trace("filter.complete", map[string]interface{}{"query": query})
}

func (SessionTracer) Loaded(candidates int, err error) {
	payload := map[string]interface{}{"candidates": candidates}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("session.loaded", payload)
}

func (SessionTracer) Confirm(text string, freeform bool) {
	logging.Trace("session.confirm", map[string]interface{}{"text": text, "freeform": freeform})
}

func (SessionTracer) Cancel(query string) {
	logging.Trace("session.cancel", map[string]interface{}{"query": query})
}
