package state

import (
	"unicode"
	"unicode/utf8"
)

// Session is the mutable part of an interactive selection: the query being
// typed and a cursor into the candidates currently matching it. Step treats
// Session as a value, so a caller keeps whichever copy it wants.
type Session struct {
	Query  string
	Cursor int

	matcher *Matcher
}

// NewSession starts a session over candidates with an empty query.
func NewSession(candidates []string, caseInsensitive bool) Session {
	return Session{matcher: NewMatcher(candidates, caseInsensitive)}
}

// WithCandidates swaps in a new candidate list, keeping the query, and
// re-establishes the cursor bound.
func (s Session) WithCandidates(candidates []string, caseInsensitive bool) Session {
	s.matcher = NewMatcher(candidates, caseInsensitive)
	s.clamp()
	return s
}

// Candidates returns the full candidate list.
func (s Session) Candidates() []string {
	return s.matcher.Candidates()
}

// Matches returns the filtered view for the current query.
func (s Session) Matches() []string {
	return s.matcher.Match(s.Query)
}

// Count returns the number of candidates matching the current query.
func (s Session) Count() int {
	return s.matcher.Count(s.Query)
}

// Selected returns the highlighted candidate, if any candidate matches.
func (s Session) Selected() (string, bool) {
	matches := s.Matches()
	if s.Cursor < 0 || s.Cursor >= len(matches) {
		return "", false
	}
	return matches[s.Cursor], true
}

// Step applies one event. The returned Outcome is terminal for confirm and
// cancel; every other event only changes the returned Session.
func (s Session) Step(ev Event) (Session, Outcome) {
	switch ev.Kind {
	case EventInsert:
		if ev.Text == "" {
			return s, Outcome{}
		}
		s.Query += ev.Text
		s.Cursor = 0
	case EventBackspace:
		if s.Query != "" {
			_, size := utf8.DecodeLastRuneInString(s.Query)
			s.Query = s.Query[:len(s.Query)-size]
		}
	case EventDeleteWord:
		s.Query = trimLastWord(s.Query)
	case EventClear:
		s.Query = ""
	case EventNext:
		s.Cursor = next(s.Cursor, s.Count())
	case EventPrev:
		s.Cursor = prev(s.Cursor, s.Count())
	case EventFirst:
		s.Cursor = 0
	case EventLast:
		s.Cursor = last(s.Count())
	case EventComplete:
		if selected, ok := s.Selected(); ok {
			s.Query = selected
			s.Cursor = indexOf(s.Matches(), selected)
		}
	case EventConfirm:
		if selected, ok := s.Selected(); ok {
			return s, confirmed(selected, false)
		}
		return s, confirmed(s.Query, true)
	case EventConfirmQuery:
		return s, confirmed(s.Query, true)
	case EventCancel:
		return s, Outcome{Kind: OutcomeCancelled}
	}
	s.clamp()
	return s, Outcome{}
}

func (s *Session) clamp() {
	s.Cursor = clampCursor(s.Cursor, s.Count())
}

func trimLastWord(query string) string {
	runes := []rune(query)
	i := len(runes)
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return string(runes[:i])
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return 0
}
