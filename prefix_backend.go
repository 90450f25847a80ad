package itrans

import (
	"github.com/derekparker/trie"
)

// prefixTrieMatcher keeps one category in a rune prefix trie. Entries are
// stored as node metadata.
type prefixTrieMatcher struct {
	category Category
	trie     *trie.Trie
	patterns int
	maxLen   int
}

func newPrefixTrieMatcher(cat Category, entries []Entry) *prefixTrieMatcher {
	m := &prefixTrieMatcher{
		category: cat,
		trie:     trie.New(),
		patterns: len(entries),
	}
	for _, e := range entries {
		m.trie.Add(e.Pattern, e)
		m.maxLen = max(m.maxLen, len([]rune(e.Pattern)))
	}
	return m
}

// Longest grows the key one rune at a time until no stored pattern has it
// as a prefix, keeping the last key that is itself a pattern.
func (m *prefixTrieMatcher) Longest(text []rune, pos int) (Entry, int, bool) {
	var best Entry
	bestLen := 0
	for n := 1; n <= m.maxLen && pos+n <= len(text); n++ {
		if text[pos+n-1] == 0 {
			break // nul marks terminals inside the trie
		}
		key := string(text[pos : pos+n])
		if !m.trie.HasKeysWithPrefix(key) {
			break
		}
		if node, ok := m.trie.Find(key); ok {
			if e, ok := node.Meta().(Entry); ok {
				best, bestLen = e, n
			}
		}
	}
	return best, bestLen, bestLen > 0
}

func (m *prefixTrieMatcher) Stats() MatcherStats {
	return MatcherStats{
		Category: m.category,
		Backend:  BackendTrie,
		Patterns: m.patterns,
	}
}
