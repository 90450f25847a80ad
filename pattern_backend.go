package itrans

import (
	"errors"
	"fmt"
)

// Backend names a pattern matcher implementation. All backends produce
// identical matches; they differ in how the pattern index is stored.
type Backend string

const (
	BackendDAT    Backend = "dat"    // frozen double-array trie
	BackendTrie   Backend = "trie"   // rune prefix trie
	BackendLinear Backend = "linear" // longest-first scan of the PatternIndex
)

// ErrUnknownBackend is returned for a backend name not listed above.
var ErrUnknownBackend = errors.New("unknown pattern backend")

// ParseBackend resolves a backend name. The empty name selects BackendDAT.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(name); b {
	case "":
		return BackendDAT, nil
	case BackendDAT, BackendTrie, BackendLinear:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// MatcherStats reports size and density metrics for one category matcher.
type MatcherStats struct {
	Category   Category
	Backend    Backend
	Patterns   int
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio is UsedSlots/TotalSlots, or 0 for backends without slots.
func (s MatcherStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// patternMatcher finds the longest pattern of one category starting at
// text[pos]. It returns the entry and the pattern length in code points.
type patternMatcher interface {
	Longest(text []rune, pos int) (Entry, int, bool)
	Stats() MatcherStats
}

// newMatcher compiles the entries of one category, visited in index order.
func newMatcher(backend Backend, cat Category, scheme *Scheme, index PatternIndex) (patternMatcher, error) {
	entries := make([]Entry, len(index))
	for i, pattern := range index {
		glyph, ok := scheme.Glyph(cat, pattern)
		assert(ok, "pattern index out of sync with scheme")
		entries[i] = Entry{Pattern: pattern, Glyph: glyph}
	}
	switch backend {
	case BackendDAT:
		m, err := newDATMatcher(cat, entries)
		if err != nil {
			return nil, err
		}
		return m, nil
	case BackendTrie:
		return newPrefixTrieMatcher(cat, entries), nil
	case BackendLinear:
		return newLinearMatcher(cat, entries), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(backend))
}

// --- Linear ----------------------------------------------------------------

type linearMatcher struct {
	category Category
	patterns [][]rune
	entries  []Entry
}

func newLinearMatcher(cat Category, entries []Entry) *linearMatcher {
	m := &linearMatcher{
		category: cat,
		patterns: make([][]rune, len(entries)),
		entries:  entries,
	}
	for i, e := range entries {
		m.patterns[i] = []rune(e.Pattern)
	}
	return m
}

func (m *linearMatcher) Longest(text []rune, pos int) (Entry, int, bool) {
	for i, p := range m.patterns {
		if hasPrefixAt(text, pos, p) {
			return m.entries[i], len(p), true
		}
	}
	return Entry{}, 0, false
}

func (m *linearMatcher) Stats() MatcherStats {
	return MatcherStats{
		Category: m.category,
		Backend:  BackendLinear,
		Patterns: len(m.entries),
	}
}

func hasPrefixAt(text []rune, pos int, prefix []rune) bool {
	if pos < 0 || pos+len(prefix) > len(text) {
		return false
	}
	for i, r := range prefix {
		if text[pos+i] != r {
			return false
		}
	}
	return true
}
