package card

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postcards/domain"
)

func samplePost(id string) domain.Post {
	return domain.Post{
		ID:           domain.PostID(id),
		Author:       "Jane Doe",
		AvatarURL:    "/img/jane.png",
		MediaURL:     "/img/post.png",
		DateCreated:  "Jan 05, 2024",
		Title:        "Hello",
		Body:         "World",
		CommentCount: 3,
		LikeCount:    10,
	}
}

func countingHandler(n *int) Handler {
	return func(Activation) tea.Cmd {
		*n++
		return nil
	}
}

// texts returns every non-empty text content under e in document order.
func texts(e Element) []string {
	var out []string
	e.Walk(func(n Element) bool {
		if n.Text != "" {
			out = append(out, n.Text)
		}
		return true
	})
	return out
}

// find returns the first element under e whose class list contains class.
func find(e Element, class string) (Element, bool) {
	var (
		found Element
		ok    bool
	)
	e.Walk(func(n Element) bool {
		if hasClass(n.Class, class) {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// sameTree compares structure. Controls compare by action and post id,
// never by handler.
func sameTree(a, b Element) bool {
	if a.Tag != b.Tag || a.Class != b.Class || a.Text != b.Text || !slices.Equal(a.Attrs, b.Attrs) {
		return false
	}
	if (a.Control == nil) != (b.Control == nil) {
		return false
	}
	if a.Control != nil && (a.Control.action != b.Control.action || a.Control.postID != b.Control.postID) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !sameTree(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
