package dat

import "testing"

func TestAlphabetMapSetAndClear(t *testing.T) {
	var m AlphabetMap
	m.Set('k', 3)
	m.Set(0x0915, 4) // DEVANAGARI LETTER KA lives on another page
	if m.Pages() != 2 {
		t.Fatalf("expected 2 pages, got %d", m.Pages())
	}
	if d := m.Lookup('k'); d != 3 {
		t.Fatalf("Lookup('k') = %d, want 3", d)
	}
	if d := m.Lookup(0x0915); d != 4 {
		t.Fatalf("Lookup(U+0915) = %d, want 4", d)
	}
	if d := m.Lookup('z'); d != 0 {
		t.Fatalf("Lookup('z') = %d, want 0", d)
	}
	m.Set('k', 0)
	if d := m.Lookup('k'); d != 0 {
		t.Fatalf("cleared Lookup('k') = %d, want 0", d)
	}
	m.Set(0x2000, 0) // clearing an absent page must not allocate
	if m.Pages() != 2 {
		t.Fatalf("clearing allocated a page, have %d", m.Pages())
	}
}

func TestTransition(t *testing.T) {
	// root=1 with a single child labelled 2 at slot 3
	d := &DAT{
		Root:  1,
		Sigma: 2,
		Base:  []int32{0, 1, 0, 0},
		Check: []int32{0, 0, 0, 1},
	}
	d.Alphabet.Set('a', 2)
	next, ok := d.Transition(d.Root, d.Dense('a'))
	if !ok || next != 3 {
		t.Fatalf("Transition(root, a) = (%d, %v), want (3, true)", next, ok)
	}
	if _, ok := d.Transition(d.Root, 1); ok {
		t.Fatalf("unexpected transition for label 1")
	}
	if _, ok := d.Transition(99, 1); ok {
		t.Fatalf("unexpected transition from out-of-range state")
	}
	if d.Dense(0x1F600) != 0 {
		t.Fatalf("non-BMP rune must not be in the alphabet")
	}
}
