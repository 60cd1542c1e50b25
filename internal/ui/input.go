package ui

import (
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	uistate "github.com/atomicstack/popup-launcher/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const loadingNotice = "still loading candidates"

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting {
		return nil
	}
	ev, ok := m.keys.event(keyMsg)
	if !ok {
		return nil
	}
	return m.apply(ev)
}

// apply runs one event through the session and reacts to its outcome.
func (m *Model) apply(ev uistate.Event) tea.Cmd {
	if m.loading && (ev.Kind == uistate.EventConfirm || ev.Kind == uistate.EventConfirmQuery) {
		m.errMsg = loadingNotice
		return nil
	}
	m.errMsg = ""
	prevQuery := m.session.Query
	next, outcome := m.session.Step(ev)
	m.session = next
	switch outcome.Kind {
	case uistate.OutcomeConfirmed:
		events.Session.Confirm(outcome.Text, outcome.Freeform)
		return m.finish(outcome)
	case uistate.OutcomeCancelled:
		events.Session.Cancel(m.session.Query)
		return m.finish(outcome)
	}
	m.traceEvent(ev, prevQuery)
	m.syncViewport()
	return nil
}

func (m *Model) finish(outcome uistate.Outcome) tea.Cmd {
	m.outcome = outcome
	m.quitting = true
	return tea.Quit
}

func (m *Model) traceEvent(ev uistate.Event, prevQuery string) {
	count := m.session.Count()
	switch ev.Kind {
	case uistate.EventInsert:
		events.Filter.Append(m.session.Query, count)
	case uistate.EventBackspace:
		if prevQuery != m.session.Query {
			events.Filter.Backspace(m.session.Query, count)
		}
	case uistate.EventDeleteWord:
		if prevQuery != m.session.Query {
			events.Filter.WordBackspace(m.session.Query, count)
		}
	case uistate.EventClear:
		events.Filter.Cleared(count)
	case uistate.EventComplete:
		events.Filter.Complete(m.session.Query)
	default:
		events.UI.Cursor(m.session.Cursor, count)
	}
}
