package itrans

import "strings"

// outputBuffer collects glyph clusters. Clusters are only appended, except
// for word-final nasalization, which replaces the last one.
type outputBuffer struct {
	clusters []string
}

func (b *outputBuffer) emit(cluster string) {
	b.clusters = append(b.clusters, cluster)
}

func (b *outputBuffer) replaceLast(cluster string) {
	assert(len(b.clusters) > 0, "replaceLast on empty output")
	b.clusters[len(b.clusters)-1] = cluster
}

func (b *outputBuffer) String() string {
	return strings.Join(b.clusters, "")
}

// scan converts rewritten ITRANS text to Devanagari. At every position it
// tries, in this order: a literal space, the longest consonant, the longest
// independent vowel, the longest special mark. Anything else is copied.
func (t *Transliterator) scan(text []rune) string {
	out := outputBuffer{clusters: make([]string, 0, len(text))}
	pos := 0
	for pos < len(text) {
		if text[pos] == ' ' {
			out.emit(" ")
			pos++
			continue
		}
		if c, n, ok := t.matchers[Consonant].Longest(text, pos); ok {
			pos = t.consonant(text, pos, c, n, &out)
			continue
		}
		if v, n, ok := t.matchers[Vowel].Longest(text, pos); ok {
			out.emit(v.Glyph)
			pos += n
			continue
		}
		if s, n, ok := t.matchers[Special].Longest(text, pos); ok {
			out.emit(s.Glyph)
			pos += n
			continue
		}
		out.emit(string(text[pos]))
		pos++
	}
	return out.String()
}

// consonant emits consonant c matched at pos with length n, resolves what
// follows it and returns the first unconsumed position.
func (t *Transliterator) consonant(text []rune, pos int, c Entry, n int, out *outputBuffer) int {
	out.emit(c.Glyph)
	next := pos + n
	if end, ok := t.vowelSign(text, next, out); ok {
		return end
	}
	atEnd := next >= len(text)
	switch {
	case c.Pattern == "n" && atEnd:
		out.replaceLast(Anusvara)
	case !atEnd && text[next] != ' ' && t.startsWithConsonantOnly(text, next):
		out.emit(Virama)
	}
	return next
}

// vowelSign looks for the vowel of a consonant at pos: a matra, or else an
// independent vowel. The inherent a is consumed without output.
func (t *Transliterator) vowelSign(text []rune, pos int, out *outputBuffer) (int, bool) {
	for _, cat := range [...]Category{Matra, Vowel} {
		v, n, ok := t.matchers[cat].Longest(text, pos)
		if !ok {
			continue
		}
		if v.Pattern != inherentVowel {
			out.emit(v.Glyph)
		}
		return pos + n, true
	}
	return pos, false
}

// startsWithConsonantOnly reports whether a consonant, and no vowel or
// special mark, begins at pos.
func (t *Transliterator) startsWithConsonantOnly(text []rune, pos int) bool {
	if _, _, ok := t.matchers[Consonant].Longest(text, pos); !ok {
		return false
	}
	for _, cat := range [...]Category{Vowel, Special} {
		if _, _, ok := t.matchers[cat].Longest(text, pos); ok {
			return false
		}
	}
	return true
}
