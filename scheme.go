package itrans

import (
	"errors"
	"fmt"
)

// Category selects one of the four symbol tables of a scheme.
type Category int

const (
	Vowel     Category = iota // independent vowels (plus marks usable standalone)
	Consonant                 // consonants, including the ligatures x, j~n, GY
	Matra                     // dependent vowel signs
	Special                   // anusvara, visarga, danda, double danda

	categoryCount = 4
)

var categoryNames = [categoryCount]string{"vowel", "consonant", "matra", "special"}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Devanagari code points the scanner emits on its own account.
const (
	Anusvara = "\u0902"
	Virama   = "\u094D" // halant
)

// inherentVowel is consumed silently after a consonant.
const inherentVowel = "a"

var (
	// ErrEmptyPattern is returned when a scheme table contains an empty pattern.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrDuplicatePattern is returned when a pattern occurs twice within one category.
	ErrDuplicatePattern = errors.New("duplicate pattern")
)

// Entry maps one ITRANS pattern to its Devanagari glyph cluster.
type Entry struct {
	Pattern string
	Glyph   string
}

// Scheme is an immutable set of transliteration tables. Entries keep their
// declaration order, which breaks ties between patterns of equal length.
type Scheme struct {
	tables [categoryCount][]Entry
	glyphs [categoryCount]map[string]string
}

func newScheme(vowels, consonants, matras, specials []Entry) (*Scheme, error) {
	s := &Scheme{}
	for cat, entries := range [categoryCount][]Entry{vowels, consonants, matras, specials} {
		lookup := make(map[string]string, len(entries))
		for _, e := range entries {
			if e.Pattern == "" {
				return nil, fmt.Errorf("%s table: %w", Category(cat), ErrEmptyPattern)
			}
			if _, dup := lookup[e.Pattern]; dup {
				return nil, fmt.Errorf("%s table, pattern %q: %w", Category(cat), e.Pattern, ErrDuplicatePattern)
			}
			lookup[e.Pattern] = e.Glyph
		}
		s.tables[cat] = append([]Entry(nil), entries...)
		s.glyphs[cat] = lookup
	}
	return s, nil
}

// Entries returns a copy of the entries of category cat in declaration order.
func (s *Scheme) Entries(cat Category) []Entry {
	return append([]Entry(nil), s.tables[cat]...)
}

// Glyph returns the glyph cluster for pattern in category cat.
func (s *Scheme) Glyph(cat Category, pattern string) (string, bool) {
	g, ok := s.glyphs[cat][pattern]
	return g, ok
}

// ITRANS returns the built-in ITRANS scheme. Long a is written aa or A.
func ITRANS() *Scheme {
	s, err := newScheme(itransVowels, itransConsonants, itransMatras, itransSpecials)
	assert(err == nil, "built-in ITRANS tables are inconsistent")
	return s
}

// The vowel table carries the standalone marks too: after a consonant the
// scanner retries vowels, and M, H, . and .. must be consumed there.
var itransVowels = []Entry{
	{"a", "अ"},
	{"aa", "आ"}, {"A", "आ"},
	{"i", "इ"},
	{"ii", "ई"}, {"I", "ई"},
	{"u", "उ"},
	{"uu", "ऊ"}, {"U", "ऊ"},
	{"RRi", "ऋ"}, {"R^i", "ऋ"},
	{"RRI", "ॠ"}, {"R^I", "ॠ"},
	{"LLi", "ऌ"}, {"L^i", "ऌ"},
	{"LLI", "ॡ"}, {"L^I", "ॡ"},
	{"e", "ए"},
	{"ai", "ऐ"}, {"E", "ऐ"},
	{"o", "ओ"},
	{"au", "औ"}, {"O", "औ"},
	{"M", "ं"},
	{"H", "ः"},
	{".", "।"},
	{"..", "॥"},
}

// Case matters: T, D, N are retroflex, t, d, n are dental.
var itransConsonants = []Entry{
	// velars
	{"k", "क"}, {"kh", "ख"}, {"g", "ग"}, {"gh", "घ"}, {"~N", "ङ"}, {"N^", "ङ"},
	// palatals
	{"ch", "च"}, {"Ch", "छ"}, {"chh", "छ"}, {"j", "ज"}, {"jh", "झ"},
	{"~n", "ञ"}, {"JN", "ञ"}, {"j~n", "ज्ञ"}, {"GY", "ज्ञ"},
	// retroflex
	{"T", "ट"}, {"Th", "ठ"}, {"D", "ड"}, {"Dh", "ढ"}, {"N", "ण"},
	// dentals
	{"t", "त"}, {"th", "थ"}, {"d", "द"}, {"dh", "ध"}, {"n", "न"},
	// labials
	{"p", "प"}, {"ph", "फ"}, {"b", "ब"}, {"bh", "भ"}, {"m", "म"},
	// semivowels
	{"y", "य"}, {"r", "र"}, {"l", "ल"}, {"v", "व"}, {"w", "व"},
	// sibilants and aspirate
	{"sh", "श"}, {"Sh", "ष"}, {"S", "ष"}, {"s", "स"}, {"h", "ह"},
	{"x", "क्ष"},
}

var itransMatras = []Entry{
	{"aa", "ा"}, {"A", "ा"},
	{"i", "ि"},
	{"ii", "ी"}, {"I", "ी"},
	{"u", "ु"},
	{"uu", "ू"}, {"U", "ू"},
	{"RRi", "ृ"}, {"R^i", "ृ"},
	{"RRI", "ॄ"}, {"R^I", "ॄ"},
	{"e", "े"},
	{"ai", "ै"}, {"E", "ै"},
	{"o", "ो"},
	{"au", "ौ"}, {"O", "ौ"},
}

var itransSpecials = []Entry{
	{"M", "ं"},
	{"H", "ः"},
	{".", "।"},
	{"..", "॥"},
}
