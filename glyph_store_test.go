package itrans

import "testing"

func TestGlyphStorePutAt(t *testing.T) {
	s := newGlyphStore(4)
	if err := s.Put(42, 7); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	id, ok := s.At(42)
	if !ok || id != 7 {
		t.Fatalf("At(42) = (%d, %v), want (7, true)", id, ok)
	}
	if _, ok := s.At(41); ok {
		t.Fatalf("expected no entry at state 41")
	}
	if _, ok := s.At(1000); ok {
		t.Fatalf("expected no entry beyond the store")
	}
}

func TestGlyphStoreOverwrite(t *testing.T) {
	s := newGlyphStore(0)
	if err := s.Put(7, 3); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := s.Put(7, 9); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	if id, _ := s.At(7); id != 9 {
		t.Fatalf("At(7) after overwrite = %d, want 9", id)
	}
	if n := s.Terminals(); n != 1 {
		t.Fatalf("expected 1 terminal, got %d", n)
	}
}

func TestGlyphStoreRejectsInvalid(t *testing.T) {
	s := newGlyphStore(4)
	if err := s.Put(0, 1); err == nil {
		t.Fatalf("expected error for state 0")
	}
	if err := s.Put(3, absentEntry); err == nil {
		t.Fatalf("expected error for absent entry id")
	}
}
