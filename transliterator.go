package itrans

import (
	"fmt"
	"sync"
)

// Transliterator converts ITRANS text to Devanagari.
//
// All tables are built by New and never modified afterwards, so a
// Transliterator may be used by multiple goroutines concurrently.
type Transliterator struct {
	backend  Backend
	scheme   *Scheme
	indexes  [categoryCount]PatternIndex
	matchers [categoryCount]patternMatcher
	rewriter *Rewriter
}

// New builds a transliterator for the built-in ITRANS scheme, storing the
// pattern indexes in the given backend.
func New(backend Backend) (*Transliterator, error) {
	return newTransliterator(ITRANS(), NewRewriter(), backend)
}

func newTransliterator(scheme *Scheme, rewriter *Rewriter, backend Backend) (*Transliterator, error) {
	backend, err := ParseBackend(string(backend))
	if err != nil {
		return nil, err
	}
	t := &Transliterator{
		backend:  backend,
		scheme:   scheme,
		rewriter: rewriter,
	}
	for cat := Category(0); cat < categoryCount; cat++ {
		t.indexes[cat] = BuildPatternIndex(scheme.Entries(cat))
		m, err := newMatcher(backend, cat, scheme, t.indexes[cat])
		if err != nil {
			return nil, fmt.Errorf("building %s matcher: %w", cat, err)
		}
		t.matchers[cat] = m
		stats := m.Stats()
		tracer().Infof("%s index built backend=%s patterns=%d used=%d total=%d fill=%.2f maxStateID=%d",
			cat, stats.Backend, stats.Patterns, stats.UsedSlots, stats.TotalSlots, stats.FillRatio(), stats.MaxStateID)
	}
	return t, nil
}

var (
	defaultOnce sync.Once
	defaultT    *Transliterator
)

// Default returns a shared transliterator using BackendDAT.
func Default() *Transliterator {
	defaultOnce.Do(func() {
		t, err := New(BackendDAT)
		assert(err == nil, "cannot build default transliterator")
		defaultT = t
	})
	return defaultT
}

// Translate converts text with the default transliterator.
func Translate(text string) string {
	return Default().Translate(text)
}

// Translate converts ITRANS text to Devanagari. It never fails: characters
// no table covers are copied unchanged.
//
// Example:
//
//	"namaste" => "नमस्ते"
func (t *Transliterator) Translate(text string) string {
	if text == "" {
		return ""
	}
	return t.scan([]rune(t.rewriter.Rewrite(text)))
}

// Backend returns the backend the pattern indexes are stored in.
func (t *Transliterator) Backend() Backend {
	return t.backend
}

// Scheme returns the transliteration tables.
func (t *Transliterator) Scheme() *Scheme {
	return t.scheme
}

// PatternIndex returns a copy of the longest-first index of category cat.
func (t *Transliterator) PatternIndex(cat Category) PatternIndex {
	return append(PatternIndex(nil), t.indexes[cat]...)
}

// Stats reports matcher metrics for all four categories.
func (t *Transliterator) Stats() []MatcherStats {
	stats := make([]MatcherStats, 0, categoryCount)
	for _, m := range t.matchers {
		stats = append(stats, m.Stats())
	}
	return stats
}
