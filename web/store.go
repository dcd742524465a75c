package web

import (
	"sync"

	"github.com/google/uuid"

	"github.com/CrestNiraj12/postcards/tui/card"
)

const defaultMaxPages = 64

// pageStore keeps the boards of recently rendered pages so an activation is
// resolved against the exact cards the user saw. The oldest page is evicted
// once the store is full.
type pageStore struct {
	mu    sync.Mutex
	max   int
	pages map[string]*card.Board
	order []string
}

func newPageStore(max int) *pageStore {
	if max <= 0 {
		max = defaultMaxPages
	}
	return &pageStore{max: max, pages: make(map[string]*card.Board, max)}
}

func (s *pageStore) put(b *card.Board) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.order) >= s.max {
		delete(s.pages, s.order[0])
		s.order = s.order[1:]
	}
	s.pages[id] = b
	s.order = append(s.order, id)
	return id
}

func (s *pageStore) get(id string) (*card.Board, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.pages[id]
	return b, ok
}
