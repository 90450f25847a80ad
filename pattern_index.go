package itrans

import (
	"sort"
	"unicode/utf8"
)

// PatternIndex lists the patterns of one category longest first. Patterns of
// equal length keep their declaration order.
//
// Scanning a PatternIndex front to back and taking the first pattern that
// matches yields the longest match: if pattern A is a strict prefix of B, B is
// visited before A.
type PatternIndex []string

// BuildPatternIndex derives the longest-first ordering for a table.
func BuildPatternIndex(entries []Entry) PatternIndex {
	index := make(PatternIndex, len(entries))
	for i, e := range entries {
		index[i] = e.Pattern
	}
	sort.SliceStable(index, func(i, j int) bool {
		return utf8.RuneCountInString(index[i]) > utf8.RuneCountInString(index[j])
	})
	return index
}

// MaxLen is the length in code points of the longest pattern.
func (index PatternIndex) MaxLen() int {
	if len(index) == 0 {
		return 0
	}
	return utf8.RuneCountInString(index[0])
}
