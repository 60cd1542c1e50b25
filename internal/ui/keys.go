package ui

import (
	"unicode"

	uistate "github.com/atomicstack/popup-launcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap binds each selection event to the keys that trigger it.
type keyMap struct {
	Prev         key.Binding
	Next         key.Binding
	First        key.Binding
	Last         key.Binding
	Complete     key.Binding
	Backspace    key.Binding
	DeleteWord   key.Binding
	Clear        key.Binding
	Confirm      key.Binding
	ConfirmQuery key.Binding
	Cancel       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:         key.NewBinding(key.WithKeys("left", "up", "ctrl+p"), key.WithHelp("←/↑", "previous candidate")),
		Next:         key.NewBinding(key.WithKeys("right", "down", "ctrl+n"), key.WithHelp("→/↓", "next candidate")),
		First:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first candidate")),
		Last:         key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last candidate")),
		Complete:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete from selection")),
		Backspace:    key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete character")),
		DeleteWord:   key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
		Clear:        key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear input")),
		Confirm:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		ConfirmQuery: key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "run typed text")),
		Cancel:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) bindings() []struct {
	binding key.Binding
	kind    uistate.EventKind
} {
	return []struct {
		binding key.Binding
		kind    uistate.EventKind
	}{
		{k.Cancel, uistate.EventCancel},
		{k.Confirm, uistate.EventConfirm},
		{k.ConfirmQuery, uistate.EventConfirmQuery},
		{k.Backspace, uistate.EventBackspace},
		{k.DeleteWord, uistate.EventDeleteWord},
		{k.Clear, uistate.EventClear},
		{k.Prev, uistate.EventPrev},
		{k.Next, uistate.EventNext},
		{k.First, uistate.EventFirst},
		{k.Last, uistate.EventLast},
		{k.Complete, uistate.EventComplete},
	}
}

// event decodes a key press into exactly one selection event.
func (k keyMap) event(msg tea.KeyMsg) (uistate.Event, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return uistate.Event{}, false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return uistate.Event{}, false
			}
		}
		return uistate.Insert(string(msg.Runes)), true
	case tea.KeySpace:
		return uistate.Insert(" "), true
	}
	for _, b := range k.bindings() {
		if key.Matches(msg, b.binding) {
			return uistate.Key(b.kind), true
		}
	}
	return uistate.Event{}, false
}
