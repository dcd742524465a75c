package web

import (
	"io"

	"golang.org/x/net/html"

	"github.com/CrestNiraj12/postcards/domain"
	"github.com/CrestNiraj12/postcards/tui/card"
)

const stylesheet = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
const iconSheet = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css"

// document wraps body content in a full HTML page.
func document(title string, content ...*html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := appendAll(elementNode("head"),
		withAttrs(elementNode("meta"), "charset", "utf-8"),
		withAttrs(elementNode("meta"), "name", "viewport", "content", "width=device-width, initial-scale=1"),
		appendAll(elementNode("title"), textNode(title)),
		withAttrs(elementNode("link"), "rel", "stylesheet", "href", stylesheet),
		withAttrs(elementNode("link"), "rel", "stylesheet", "href", iconSheet),
	)
	container := withAttrs(elementNode("main"), "class", "container py-4")
	container.AppendChild(withAttrs(appendAll(elementNode("h1"), textNode(domain.DisplayAppTitle())), "class", "h3 mb-4"))
	appendAll(container, content...)

	body := appendAll(elementNode("body"), container)
	doc.AppendChild(appendAll(withAttrs(elementNode("html"), "lang", "en"), head, body))
	return doc
}

func renderBoardPage(w io.Writer, b *card.Board, actionURL ActionURL, notice string) error {
	var content []*html.Node
	if notice != "" {
		content = append(content, withAttrs(appendAll(elementNode("p"), textNode(notice)), "class", "alert alert-secondary"))
	}
	if b.Len() == 0 {
		content = append(content, withAttrs(appendAll(elementNode("p"), textNode("No posts yet.")), "class", "text-muted"))
	}
	for i := 0; i < b.Len(); i++ {
		content = append(content, Node(b.Card(i), actionURL))
	}
	return html.Render(w, document(domain.AppName, content...))
}

func renderEditPage(w io.Writer, p domain.Post, formAction string) error {
	form := withAttrs(elementNode("form"), "method", "post", "action", formAction, "class", "card card-body")
	appendAll(form,
		withAttrs(appendAll(elementNode("label"), textNode("Title")), "for", "title", "class", "form-label"),
		withAttrs(elementNode("input"), "id", "title", "name", "title", "class", "form-control mb-3", "required", "", "value", p.Title),
		withAttrs(appendAll(elementNode("label"), textNode("Body")), "for", "body", "class", "form-label"),
		withAttrs(appendAll(elementNode("textarea"), textNode(p.Body)), "id", "body", "name", "body", "rows", "8", "class", "form-control mb-3"),
		withAttrs(appendAll(elementNode("label"), textNode("Media URL")), "for", "media", "class", "form-label"),
		withAttrs(elementNode("input"), "id", "media", "name", "media", "type", "url", "class", "form-control mb-3", "value", p.MediaURL),
		withAttrs(appendAll(elementNode("button"), textNode("Save")), "type", "submit", "class", "btn btn-primary"),
	)
	return html.Render(w, document("Edit post | "+domain.AppName, form))
}
