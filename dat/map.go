package dat

// AlphabetMap assigns the runes of a pattern alphabet their dense IDs in
// [1..Sigma]. ITRANS patterns are written in ASCII, so in practice one
// page of 256 runes is populated; a Devanagari key would add a second.
//
// Runes are split into a high byte, selecting a page, and a low byte
// indexing into it. Only pages holding at least one rune are allocated.
type AlphabetMap struct {
	pageOf [256]uint16 // 1-based page number per high byte, 0 if none
	ids    []uint16    // pages laid out one after the other
}

// Lookup returns the dense ID of r, or 0 if r is not part of the alphabet.
func (m *AlphabetMap) Lookup(r uint16) uint16 {
	p := m.pageOf[r>>8]
	if p == 0 {
		return 0
	}
	return m.ids[pageStart(p)+int(r&0xFF)]
}

// Set assigns id to r. An id of 0 removes r from the alphabet.
func (m *AlphabetMap) Set(r uint16, id uint16) {
	p := m.pageOf[r>>8]
	if p == 0 {
		if id == 0 {
			return
		}
		m.ids = append(m.ids, make([]uint16, 256)...)
		p = uint16(len(m.ids) >> 8)
		m.pageOf[r>>8] = p
	}
	m.ids[pageStart(p)+int(r&0xFF)] = id
}

// Pages returns the number of allocated pages.
func (m *AlphabetMap) Pages() int {
	return len(m.ids) >> 8
}

func pageStart(p uint16) int {
	return int(p-1) << 8
}
