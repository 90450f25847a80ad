package itrans

import (
	"fmt"
	"sort"

	"github.com/npillmayer/itrans/dat"
)

type datBuildNode struct {
	state    uint32
	id       int // 1-based entry id if a pattern ends here
	children map[uint16]*datBuildNode
}

// datMatcher compiles one category into a frozen double-array trie. Terminal
// states are recorded in a glyphStore.
type datMatcher struct {
	category    Category
	entries     []Entry
	frozen      bool
	root        *datBuildNode
	runeToDense map[rune]uint16
	nextDenseID uint16
	compiled    *dat.DAT
	glyphs      *glyphStore
}

func newDATMatcher(cat Category, entries []Entry) (*datMatcher, error) {
	m := &datMatcher{
		category:    cat,
		entries:     entries,
		root:        &datBuildNode{children: make(map[uint16]*datBuildNode)},
		runeToDense: make(map[rune]uint16),
		compiled: &dat.DAT{
			Root: 1,
		},
	}
	for i, e := range entries {
		key, ok := m.encodeKey(e.Pattern)
		if !ok {
			return nil, fmt.Errorf("%s pattern %q cannot be stored in a DAT", cat, e.Pattern)
		}
		m.insert(key, i+1)
	}
	if err := m.freeze(); err != nil {
		return nil, err
	}
	return m, nil
}

// encodeKey assigns dense alphabet ids while the trie is under construction.
func (m *datMatcher) encodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			return nil, false
		}
		dense, ok := m.runeToDense[r]
		if !ok {
			if m.nextDenseID == ^uint16(0) {
				return nil, false
			}
			m.nextDenseID++
			dense = m.nextDenseID
			m.runeToDense[r] = dense
			m.compiled.Alphabet.Set(uint16(r), dense)
		}
		key = append(key, dense)
	}
	return key, len(key) > 0
}

func (m *datMatcher) insert(key []uint16, id int) {
	n := m.root
	for _, c := range key {
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{children: make(map[uint16]*datBuildNode)}
			n.children[c] = child
		}
		n = child
	}
	n.id = id
}

func (m *datMatcher) freeze() error {
	if m.frozen {
		return nil
	}
	d := m.compiled
	d.Sigma = m.nextDenseID
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	m.root.state = d.Root
	var terminals []*datBuildNode
	queue := []*datBuildNode{m.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if n.id != absentEntry {
			terminals = append(terminals, n)
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, labels)
		ensureDATIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	m.glyphs = newGlyphStore(d.NStates())
	for _, n := range terminals {
		if err := m.glyphs.Put(int(n.state), n.id); err != nil {
			return err
		}
	}
	m.root = nil
	m.runeToDense = nil
	m.frozen = true
	return nil
}

// Longest walks successive prefix states of text[pos:] and remembers the
// deepest state that terminates a pattern.
func (m *datMatcher) Longest(text []rune, pos int) (Entry, int, bool) {
	it := m.iterator()
	best, bestLen := absentEntry, 0
	for i := pos; i < len(text); i++ {
		state := it.Next(text[i])
		if state == 0 {
			break
		}
		if id, ok := m.glyphs.At(state); ok {
			best, bestLen = id, i-pos+1
		}
	}
	if best == absentEntry {
		return Entry{}, 0, false
	}
	return m.entries[best-1], bestLen, true
}

func (m *datMatcher) iterator() *datIterator {
	return &datIterator{d: m.compiled, state: m.compiled.Root}
}

type datIterator struct {
	d     *dat.DAT
	state uint32
	dead  bool
}

// Next advances by one rune and returns the new state, or 0 once the
// prefix has left the trie.
func (it *datIterator) Next(r rune) int {
	if it.dead {
		return 0
	}
	symbol := it.d.Dense(r)
	if symbol == 0 {
		it.dead = true
		return 0
	}
	next, ok := it.d.Transition(it.state, symbol)
	if !ok {
		it.dead = true
		return 0
	}
	it.state = next
	return int(next)
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

func (m *datMatcher) String() string {
	return fmt.Sprintf("DAT(category=%s,states=%d,sigma=%d)", m.category, m.compiled.NStates(), m.compiled.Sigma)
}

func (m *datMatcher) Stats() MatcherStats {
	d := m.compiled
	stats := MatcherStats{
		Category:   m.category,
		Backend:    BackendDAT,
		Patterns:   m.glyphs.Terminals(),
		TotalSlots: d.NStates(),
		MaxStateID: int(d.Root),
	}
	used := 0
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
			stats.MaxStateID = max(stats.MaxStateID, i)
		}
	}
	stats.UsedSlots = used
	return stats
}
