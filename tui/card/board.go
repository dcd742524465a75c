package card

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postcards/domain"
)

type controlKey struct {
	action Action
	postID domain.PostID
}

// Board is the set of cards rendered on one page, indexed by control so an
// activation always reaches the post it was rendered for.
type Board struct {
	posts    []domain.Post
	cards    []Element
	controls map[controlKey]*Control
}

// NewBoard builds one card per post, in order. handlersFor may be nil, which
// yields read-only cards. Post ids must be unique on a page; a duplicate
// fails the whole board with domain.ErrDuplicatePostID.
func NewBoard(posts []domain.Post, handlersFor func(domain.Post) Handlers) (*Board, error) {
	b := &Board{
		posts:    make([]domain.Post, 0, len(posts)),
		cards:    make([]Element, 0, len(posts)),
		controls: make(map[controlKey]*Control, len(posts)*2),
	}
	seen := make(map[domain.PostID]struct{}, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicatePostID, p.ID)
		}
		seen[p.ID] = struct{}{}

		var h Handlers
		if handlersFor != nil {
			h = handlersFor(p)
		}
		c := Card(p, h)
		for _, ctl := range c.Controls() {
			b.controls[controlKey{action: ctl.action, postID: ctl.postID}] = ctl
		}
		b.posts = append(b.posts, p)
		b.cards = append(b.cards, c)
	}
	return b, nil
}

// Len returns the number of cards.
func (b *Board) Len() int {
	if b == nil {
		return 0
	}
	return len(b.cards)
}

// Card returns the i-th card.
func (b *Board) Card(i int) Element { return b.cards[i] }

// Post returns the post behind the i-th card.
func (b *Board) Post(i int) domain.Post { return b.posts[i] }

// Index returns the position of the card for id, or -1.
func (b *Board) Index(id domain.PostID) int {
	if b == nil {
		return -1
	}
	for i, p := range b.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Control returns the control for the given action on post id.
func (b *Board) Control(action Action, id domain.PostID) (*Control, bool) {
	if b == nil {
		return nil, false
	}
	c, ok := b.controls[controlKey{action: action, postID: id}]
	return c, ok
}

// Activate activates the control for the given action on post id.
func (b *Board) Activate(action Action, id domain.PostID) (tea.Cmd, error) {
	c, ok := b.Control(action, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrControlNotFound, action, id)
	}
	return c.Activate(), nil
}
