package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postcards/domain"
	"github.com/CrestNiraj12/postcards/infra/config"
	"github.com/CrestNiraj12/postcards/tui/board"
	"github.com/CrestNiraj12/postcards/tui/compose"
)

type stubTimeline struct{ posts []domain.Post }

func (s stubTimeline) FetchPosts(context.Context, int) ([]domain.Post, error) { return s.posts, nil }
func (s stubTimeline) FetchByAuthor(context.Context, string, int) ([]domain.Post, error) {
	return s.posts, nil
}

type stubPosts struct {
	mu      sync.Mutex
	deleted []domain.PostID
	updated []domain.Draft
	err     error
}

func (s *stubPosts) Update(_ context.Context, id domain.PostID, d domain.Draft) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updated = append(s.updated, d)
	return domain.Post{ID: id, Title: d.Title, Body: d.Body, Author: "me"}, s.err
}

func (s *stubPosts) Delete(_ context.Context, id domain.PostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	return s.err
}

func newTestApp(posts *stubPosts) App {
	own := domain.Post{ID: "1", Author: "me", Title: "Mine", Body: "text", IsOwn: true}
	a := NewApp(Deps{Timeline: stubTimeline{posts: []domain.Post{own}}, Post: posts, CurrentUser: "me"})
	m, _ := a.Update(board.PostsLoadedMsg{Posts: []domain.Post{own}})
	return m.(App)
}

func step(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func TestApp_DeleteFlowCallsServiceOnce(t *testing.T) {
	posts := &stubPosts{}
	a := newTestApp(posts)

	a, cmd := step(t, a, board.DeletePostMsg{ID: "1"})
	if a.status != "Deleting..." {
		t.Fatalf("expected deleting status, got %q", a.status)
	}
	msg := cmd()
	if len(posts.deleted) != 1 || posts.deleted[0] != "1" {
		t.Fatalf("expected exactly one delete, got %#v", posts.deleted)
	}
	a, _ = step(t, a, msg)
	if a.status != "Post deleted." {
		t.Fatalf("expected deleted status, got %q", a.status)
	}
}

func TestApp_EditRoundTrip(t *testing.T) {
	posts := &stubPosts{}
	a := newTestApp(posts)

	a, _ = step(t, a, board.EditRequestedMsg{Post: domain.Post{ID: "1", Title: "Mine"}})
	if a.active != composeView {
		t.Fatalf("expected compose view")
	}
	a, cmd := step(t, a, compose.DoneMsg{PostID: "1", Draft: domain.Draft{Title: "New"}})
	if a.active != boardView || !strings.Contains(a.View(), "(updating...)") {
		t.Fatalf("expected optimistic update on board, got %q", a.View())
	}
	a, _ = step(t, a, cmd())
	if len(posts.updated) != 1 || posts.updated[0].Title != "New" {
		t.Fatalf("expected one update, got %#v", posts.updated)
	}
	if a.status != "Post updated." {
		t.Fatalf("unexpected status %q", a.status)
	}
}

func TestApp_CancelledEditDoesNothing(t *testing.T) {
	posts := &stubPosts{}
	a := newTestApp(posts)
	a, _ = step(t, a, board.EditRequestedMsg{Post: domain.Post{ID: "1"}})
	a, cmd := step(t, a, compose.DoneMsg{PostID: "1"})
	if cmd != nil || a.status != "Cancelled." || len(posts.updated) != 0 {
		t.Fatalf("expected cancel without service calls")
	}
}

func TestApp_UpdateErrorShowsFirstLine(t *testing.T) {
	a := newTestApp(&stubPosts{})
	a, _ = step(t, a, board.UpdateResultMsg{ID: "1", Err: errors.New("bad\ndetails")})
	if a.status != "Error updating: bad" {
		t.Fatalf("unexpected status %q", a.status)
	}
}

func TestApp_QuitKey(t *testing.T) {
	a := newTestApp(&stubPosts{})
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit msg")
	}
}

func TestApp_ScopeChangePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	a := NewApp(Deps{Timeline: stubTimeline{}, Post: &stubPosts{}, CurrentUser: "me", StatePath: path})
	_, cmd := a.Update(board.ScopeChangedMsg{Scope: board.ScopeMine})
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	cmd()
	st, err := config.LoadUIState(path)
	if err != nil || st.Scope != "mine" {
		t.Fatalf("expected persisted scope, got %#v (%v)", st, err)
	}
}

func TestApp_LoadWhileEditingReachesBoard(t *testing.T) {
	a := newTestApp(&stubPosts{})
	a, _ = step(t, a, board.EditRequestedMsg{Post: domain.Post{ID: "1", Title: "Mine"}})
	two := []domain.Post{{ID: "1", IsOwn: true}, {ID: "2"}}
	a, _ = step(t, a, board.PostsLoadedMsg{Posts: two})
	a, _ = step(t, a, compose.DoneMsg{PostID: "1"})
	if a.board.Len() != 2 {
		t.Fatalf("expected board reloaded behind the edit form, got %d cards", a.board.Len())
	}
}
