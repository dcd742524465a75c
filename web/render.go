package web

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/CrestNiraj12/postcards/tui/card"
)

// ActionURL returns the form action that activates c.
type ActionURL func(c *card.Control) string

// Node converts a card element tree to HTML nodes. Text always becomes a
// text node, so post data is escaped on render and never parsed as markup.
// Controls are wrapped in a POST form so they work without scripts.
func Node(e card.Element, actionURL ActionURL) *html.Node {
	n := elementNode(string(e.Tag))
	if e.Class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: e.Class})
	}
	for _, a := range e.Attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if e.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.Text})
	}
	for _, c := range e.Children {
		n.AppendChild(Node(c, actionURL))
	}

	if e.Control == nil || actionURL == nil {
		return n
	}
	form := elementNode("form")
	form.Attr = []html.Attribute{
		{Key: "method", Val: "post"},
		{Key: "action", Val: actionURL(e.Control)},
		{Key: "class", Val: "d-inline"},
	}
	button := elementNode("button")
	button.Attr = []html.Attribute{
		{Key: "type", Val: "submit"},
		{Key: "class", Val: "btn btn-link p-0 text-reset"},
		{Key: "aria-label", Val: string(e.Control.Action()) + " post"},
	}
	button.AppendChild(n)
	form.AppendChild(button)
	return form
}

// Render writes the HTML for e.
func Render(w io.Writer, e card.Element, actionURL ActionURL) error {
	return html.Render(w, Node(e, actionURL))
}

func elementNode(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withAttrs(n *html.Node, kv ...string) *html.Node {
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func appendAll(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		parent.AppendChild(c)
	}
	return parent
}
