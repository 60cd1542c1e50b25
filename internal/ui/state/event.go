package state

// EventKind identifies a decoded key action.
type EventKind int

const (
	EventInsert EventKind = iota
	EventBackspace
	EventDeleteWord
	EventClear
	EventNext
	EventPrev
	EventFirst
	EventLast
	EventComplete
	EventConfirm
	EventConfirmQuery
	EventCancel
)

var eventNames = map[EventKind]string{
	EventInsert:       "insert",
	EventBackspace:    "backspace",
	EventDeleteWord:   "delete-word",
	EventClear:        "clear",
	EventNext:         "next",
	EventPrev:         "prev",
	EventFirst:        "first",
	EventLast:         "last",
	EventComplete:     "complete",
	EventConfirm:      "confirm",
	EventConfirmQuery: "confirm-query",
	EventCancel:       "cancel",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one input tick. Text is only meaningful for EventInsert.
type Event struct {
	Kind EventKind
	Text string
}

// Insert builds an event appending text to the query.
func Insert(text string) Event {
	return Event{Kind: EventInsert, Text: text}
}

// Key builds a text-less event of the given kind.
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

// OutcomeKind distinguishes continuing from the two terminal actions.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeConfirmed
	OutcomeCancelled
)

// Outcome is what a Step produced. Freeform is set when Text is the raw
// query rather than a candidate.
type Outcome struct {
	Kind     OutcomeKind
	Text     string
	Freeform bool
}

// Terminal reports whether the session ends with this outcome.
func (o Outcome) Terminal() bool {
	return o.Kind != OutcomeNone
}

func confirmed(text string, freeform bool) Outcome {
	return Outcome{Kind: OutcomeConfirmed, Text: text, Freeform: freeform}
}
