package state

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const matchCacheSize = 256

// Filter returns the candidates containing query as a contiguous substring,
// in their original order. An empty query matches everything. When
// caseInsensitive is set both sides are lowercased before comparing; the
// returned strings keep their original casing.
func Filter(candidates []string, query string, caseInsensitive bool) []string {
	if query == "" {
		return candidates
	}
	fold := foldFunc(caseInsensitive)
	needle := fold(query)
	matches := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.Contains(fold(candidate), needle) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

func foldFunc(caseInsensitive bool) func(string) string {
	if !caseInsensitive {
		return func(s string) string { return s }
	}
	caser := cases.Lower(language.Und)
	return caser.String
}

// Matcher answers Filter queries over a fixed candidate list, memoizing the
// results per query. Candidates are lowercased once up front. It is not safe for
// concurrent use.
type Matcher struct {
	candidates []string
	haystack   []string
	fold       func(string) string
	cache      *lru.Cache[string, []int]
	lastQuery  string
	lastIdx    []int
}

// NewMatcher prepares a matcher over a private copy of candidates.
func NewMatcher(candidates []string, caseInsensitive bool) *Matcher {
	candidates = CloneItems(candidates)
	fold := foldFunc(caseInsensitive)
	haystack := candidates
	if caseInsensitive {
		haystack = make([]string, len(candidates))
		for i, c := range candidates {
			haystack[i] = fold(c)
		}
	}
	cache, _ := lru.New[string, []int](matchCacheSize)
	return &Matcher{
		candidates: candidates,
		haystack:   haystack,
		fold:       fold,
		cache:      cache,
	}
}

// Candidates returns a copy of the full candidate list.
func (m *Matcher) Candidates() []string {
	if m == nil {
		return nil
	}
	return CloneItems(m.candidates)
}

// Match returns the candidates matching query.
func (m *Matcher) Match(query string) []string {
	if m == nil {
		return nil
	}
	if query == "" {
		return CloneItems(m.candidates)
	}
	idx := m.indices(m.fold(query))
	matches := make([]string, len(idx))
	for i, j := range idx {
		matches[i] = m.candidates[j]
	}
	return matches
}

// Count returns len(Match(query)) without building the string slice.
func (m *Matcher) Count(query string) int {
	if m == nil {
		return 0
	}
	if query == "" {
		return len(m.candidates)
	}
	return len(m.indices(m.fold(query)))
}

func (m *Matcher) indices(needle string) []int {
	if idx, ok := m.cache.Get(needle); ok {
		return idx
	}
	var idx []int
	if m.lastIdx != nil && strings.Contains(needle, m.lastQuery) {
		// anything containing needle also contains the previous query
		idx = make([]int, 0, len(m.lastIdx))
		for _, j := range m.lastIdx {
			if strings.Contains(m.haystack[j], needle) {
				idx = append(idx, j)
			}
		}
	} else {
		idx = make([]int, 0, len(m.haystack))
		for j, hay := range m.haystack {
			if strings.Contains(hay, needle) {
				idx = append(idx, j)
			}
		}
	}
	m.cache.Add(needle, idx)
	m.lastQuery = needle
	m.lastIdx = idx
	return idx
}
