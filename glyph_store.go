package itrans

import "fmt"

const absentEntry = 0
const initialGlyphStoreSlots = 2 // include slot 0 + root slot

// glyphStore records which trie states terminate a pattern. Entry ids are
// 1-based indexes into the matcher's entry list; absentEntry marks states
// that are only a proper prefix of some pattern.
type glyphStore struct {
	ids []int32 // will grow with demand
}

func newGlyphStore(states int) *glyphStore {
	if states < initialGlyphStoreSlots {
		states = initialGlyphStoreSlots
	}
	return &glyphStore{ids: make([]int32, states)}
}

func (s *glyphStore) ensure(state int) {
	if state < len(s.ids) {
		return
	}
	s.ids = append(s.ids, make([]int32, state+1-len(s.ids))...)
}

// Put marks state as terminal for entry id.
func (s *glyphStore) Put(state int, id int) error {
	if state <= 0 {
		return fmt.Errorf("invalid trie state: %d", state)
	}
	if id <= absentEntry {
		return fmt.Errorf("invalid entry id: %d", id)
	}
	s.ensure(state)
	s.ids[state] = int32(id)
	return nil
}

// At returns the entry id terminating at state.
func (s *glyphStore) At(state int) (int, bool) {
	if state <= 0 || state >= len(s.ids) {
		return absentEntry, false
	}
	id := s.ids[state]
	if id == absentEntry {
		return absentEntry, false
	}
	return int(id), true
}

// Terminals counts the states carrying an entry.
func (s *glyphStore) Terminals() int {
	n := 0
	for _, id := range s.ids {
		if id != absentEntry {
			n++
		}
	}
	return n
}
