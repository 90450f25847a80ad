package itrans

import (
	"strings"
	"testing"
)

func TestPatternIndexLongestFirst(t *testing.T) {
	index := BuildPatternIndex([]Entry{
		{"k", "क"}, {"kh", "ख"}, {"chh", "छ"}, {"ch", "च"}, {"j~n", "ज्ञ"},
	})
	want := PatternIndex{"chh", "j~n", "kh", "ch", "k"}
	if len(index) != len(want) {
		t.Fatalf("index length %d, want %d", len(index), len(want))
	}
	for i := range want {
		if index[i] != want[i] {
			t.Fatalf("index = %v, want %v", index, want)
		}
	}
	if index.MaxLen() != 3 {
		t.Fatalf("MaxLen = %d, want 3", index.MaxLen())
	}
	if (PatternIndex{}).MaxLen() != 0 {
		t.Fatalf("empty index must have MaxLen 0")
	}
}

func TestPatternIndexPrefixOrder(t *testing.T) {
	scheme := ITRANS()
	for cat := Category(0); cat < categoryCount; cat++ {
		index := BuildPatternIndex(scheme.Entries(cat))
		if len(index) != len(scheme.Entries(cat)) {
			t.Fatalf("%s: index has %d patterns, table has %d", cat, len(index), len(scheme.Entries(cat)))
		}
		for i := range index {
			for j := i + 1; j < len(index); j++ {
				if strings.HasPrefix(index[j], index[i]) && index[j] != index[i] {
					t.Fatalf("%s: %q is visited before its extension %q", cat, index[i], index[j])
				}
			}
		}
	}
}

func TestPatternIndexKeepsDeclarationOrderForTies(t *testing.T) {
	index := BuildPatternIndex(ITRANS().Entries(Consonant))
	want := []string{"chh", "j~n", "kh", "gh", "~N", "N^", "ch", "Ch"}
	for i, p := range want {
		if index[i] != p {
			t.Fatalf("index[%d] = %q, want %q (index %v)", i, index[i], p, index[:len(want)])
		}
	}
}
