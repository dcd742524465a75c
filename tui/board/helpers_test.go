package board

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postcards/domain"
)

type stubTimeline struct {
	mu      sync.Mutex
	posts   []domain.Post
	err     error
	authors []string
}

func (s *stubTimeline) FetchPosts(context.Context, int) ([]domain.Post, error) {
	return s.posts, s.err
}

func (s *stubTimeline) FetchByAuthor(_ context.Context, author string, _ int) ([]domain.Post, error) {
	s.mu.Lock()
	s.authors = append(s.authors, author)
	s.mu.Unlock()
	return s.posts, s.err
}

func makePost(id string, own bool) domain.Post {
	return domain.Post{
		ID:           domain.PostID(id),
		Author:       "author" + id,
		DateCreated:  "Jan 05, 2024",
		Title:        "Title " + id,
		Body:         "Body " + id,
		CommentCount: 1,
		LikeCount:    2,
		IsOwn:        own,
	}
}

func loaded(posts ...domain.Post) Model {
	m := New(&stubTimeline{}, "me", ScopeAll, 10)
	m, _ = m.Update(PostsLoadedMsg{Posts: posts})
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}
