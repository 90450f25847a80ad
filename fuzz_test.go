package itrans

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// patternRunes are all runes occurring in some pattern of the built-in scheme.
const patternRunes = "abcdeghijklmnoprstuvwxyACDEGHIJLMNORSTUY~^."

func FuzzTranslate(f *testing.F) {
	f.Add("namaste")
	f.Add("sanskrit bharat")
	f.Add("kShatriya j~naana")
	f.Add("raama..")
	f.Add("n")
	f.Add("")
	f.Add("   ")
	f.Add("123 !?")
	f.Add("\xff\xfe")
	f.Add("\x00")
	f.Add("नमस्ते")

	dat := mustNewF(f, BackendDAT)
	trie := mustNewF(f, BackendTrie)
	linear := mustNewF(f, BackendLinear)

	f.Fuzz(func(t *testing.T, s string) {
		result := dat.Translate(s)

		if got := trie.Translate(s); got != result {
			t.Errorf("backends disagree on %q:\ndat:  %q\ntrie: %q", s, result, got)
		}
		if got := linear.Translate(s); got != result {
			t.Errorf("backends disagree on %q:\ndat:    %q\nlinear: %q", s, result, got)
		}

		// Text without any pattern rune passes through unchanged.
		if utf8.ValidString(s) && !strings.ContainsAny(s, patternRunes) && result != s {
			t.Errorf("passthrough changed text:\ninput:  %q\noutput: %q", s, result)
		}
	})
}

func mustNewF(f *testing.F, backend Backend) *Transliterator {
	f.Helper()
	tr, err := New(backend)
	if err != nil {
		f.Fatal(err)
	}
	return tr
}
