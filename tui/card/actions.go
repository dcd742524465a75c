package card

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postcards/domain"
)

// Action names what an interactive control does.
type Action string

const (
	ActionDelete Action = "delete"
	ActionEdit   Action = "edit"
)

// Activation is passed to a Handler when its control is activated.
type Activation struct {
	Action Action
	PostID domain.PostID
}

// Handler reacts to an activation. It runs once per activation and may return
// a command for the caller's event loop.
type Handler func(Activation) tea.Cmd

// Control is the interactive part of an action element.
type Control struct {
	action  Action
	postID  domain.PostID
	handler Handler
}

// Action returns what the control does.
func (c *Control) Action() Action { return c.action }

// PostID returns the post the control targets.
func (c *Control) PostID() domain.PostID { return c.postID }

// Activate invokes the bound handler exactly once. A control without a
// handler does nothing.
func (c *Control) Activate() tea.Cmd {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler(Activation{Action: c.action, PostID: c.postID})
}

// DeleteButton renders the delete marker for a post. Its id attribute is the
// post id, and activating it calls onDelete.
func DeleteButton(id domain.PostID, onDelete Handler) Element {
	icon := Element{
		Tag:     TagIcon,
		Class:   ClassDeleteIcon,
		Attrs:   []Attr{{Key: AttrID, Val: id.String()}},
		Control: &Control{action: ActionDelete, postID: id, handler: onDelete},
	}
	return Element{Tag: TagDiv, Class: ClassDeleteWrapper, Children: []Element{icon}}
}

// EditButton renders the "Edit post" label for a post, bound to onEdit.
func EditButton(id domain.PostID, onEdit Handler) Element {
	label := Element{
		Tag:     TagParagraph,
		Class:   ClassEditLabel,
		Text:    "Edit post",
		Attrs:   []Attr{{Key: AttrID, Val: id.String()}},
		Control: &Control{action: ActionEdit, postID: id, handler: onEdit},
	}
	return Element{Tag: TagDiv, Class: ClassEditWrapper, Children: []Element{label}}
}
