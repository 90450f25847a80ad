/*
Package itrans transliterates Roman-letter text written in the ITRANS scheme
into Devanagari script.

The engine holds four symbol tables (independent vowels, consonants, dependent
vowel signs (matras), special marks). For each table it builds a longest-first
pattern index, which is compiled into a matcher backend; the default backend is
a frozen double-array trie (DAT). Translation first rewrites a few common
simplified spellings ("bharat", "shri", ...) and then scans the text left to
right with greedy longest matches:

	namaste   => नमस्ते
	sanskrit  => संस्कृत

A consonant is followed by its matra if one is present; otherwise a virama is
placed if another consonant follows directly, and a final "n" becomes an
anusvara. Input that no table covers is copied through unchanged, so
translation never fails.

Further Reading

	https://www.aczoom.com/itrans/
	https://www.unicode.org/charts/PDF/U0900.pdf

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package itrans

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'itrans'
func tracer() tracing.Trace {
	return tracing.Select("itrans")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
