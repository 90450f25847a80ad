package golden

import (
	"fmt"
	"io"

	"golang.org/x/text/unicode/runenames"
)

// CodePoint describes one rune of a string.
type CodePoint struct {
	Index int // position in runes
	Rune  rune
	Name  string
}

// String formats a code point as "2: स (U+0938 DEVANAGARI LETTER SA)".
func (cp CodePoint) String() string {
	if cp.Name == "" {
		return fmt.Sprintf("%d: %q (U+%04X)", cp.Index, cp.Rune, cp.Rune)
	}
	return fmt.Sprintf("%d: %c (U+%04X %s)", cp.Index, cp.Rune, cp.Rune, cp.Name)
}

// Breakdown lists the code points of s with their Unicode names.
func Breakdown(s string) []CodePoint {
	cps := make([]CodePoint, 0, len(s))
	i := 0
	for _, r := range s {
		cps = append(cps, CodePoint{Index: i, Rune: r, Name: runenames.Name(r)})
		i++
	}
	return cps
}

// WriteBreakdown writes one line per code point of s, indented by two spaces.
func WriteBreakdown(w io.Writer, s string) error {
	for _, cp := range Breakdown(s) {
		if _, err := fmt.Fprintf(w, "  %s\n", cp); err != nil {
			return err
		}
	}
	return nil
}
