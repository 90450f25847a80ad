package itrans

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Alias is a common simplified spelling and its canonical ITRANS form.
type Alias struct {
	Word      string // lower case
	Expansion string
}

// itransAliases are checked in this order; see Rewriter.Rewrite.
var itransAliases = []Alias{
	{Word: "shri", Expansion: "shrii"},
	{Word: "bharat", Expansion: "bhaarat"},
	{Word: "sanskrit", Expansion: "saMskR^it"},
	{Word: "hindi", Expansion: "hiMdii"},
}

// Rewriter substitutes whole-word aliases before scanning. It is immutable
// and safe for concurrent use.
type Rewriter struct {
	aliases []Alias
}

// NewRewriter returns a rewriter for the built-in alias table.
func NewRewriter() *Rewriter {
	return newRewriter(itransAliases)
}

func newRewriter(aliases []Alias) *Rewriter {
	return &Rewriter{aliases: append([]Alias(nil), aliases...)}
}

// Aliases returns a copy of the alias table in check order.
func (rw *Rewriter) Aliases() []Alias {
	return append([]Alias(nil), rw.aliases...)
}

// Rewrite replaces words equal to an alias after lower-casing.
//
// The alias pass is triggered by a substring test on the whole lower-cased
// text: the first alias occurring anywhere selects the pass, and only words
// equal to that alias are replaced, even if a later alias would match a
// word exactly. Text without any alias is returned unchanged. Whitespace and
// all other words are kept as they are.
func (rw *Rewriter) Rewrite(text string) string {
	if text == "" {
		return text
	}
	lower := cases.Lower(language.Und)
	lowered := lower.String(text)
	for _, alias := range rw.aliases {
		if !strings.Contains(lowered, alias.Word) {
			continue
		}
		tracer().Debugf("alias %q found, rewriting words to %q", alias.Word, alias.Expansion)
		return replaceWords(text, func(word string) string {
			if lower.String(word) == alias.Word {
				return alias.Expansion
			}
			return word
		})
	}
	return text
}

// replaceWords calls subst for every maximal run of non-space runes and
// copies whitespace through.
func replaceWords(text string, subst func(string) string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	start := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				b.WriteString(subst(text[start:i]))
				start = -1
			}
			b.WriteString(text[i : i+size])
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		b.WriteString(subst(text[start:]))
	}
	return b.String()
}
