package web

import (
	"testing"

	"github.com/CrestNiraj12/postcards/tui/card"
)

func TestPageStore_EvictsOldest(t *testing.T) {
	s := newPageStore(2)
	first := s.put(&card.Board{})
	second := s.put(&card.Board{})
	third := s.put(&card.Board{})

	if _, ok := s.get(first); ok {
		t.Fatalf("expected oldest page evicted")
	}
	for _, id := range []string{second, third} {
		if _, ok := s.get(id); !ok {
			t.Fatalf("expected page %q kept", id)
		}
	}
	if s.len() != 2 {
		t.Fatalf("expected 2 pages, got %d", s.len())
	}
}

func TestPageStore_RejectsMalformedID(t *testing.T) {
	s := newPageStore(0)
	if _, ok := s.get("../etc"); ok {
		t.Fatalf("expected malformed id rejected")
	}
}

func (s *pageStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}
