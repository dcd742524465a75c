// Package card composes a single post into a tree of display elements.
//
// Builders are pure: each call returns a fresh tree that the caller owns and
// assembles. The only side effect is binding an action control to an
// injected Handler.
package card

// Tag names the kind of display element.
type Tag string

const (
	TagDiv       Tag = "div"
	TagImg       Tag = "img"
	TagParagraph Tag = "p"
	TagHeading   Tag = "h2"
	TagIcon      Tag = "i"
)

// Attribute keys set by the builders.
const (
	AttrID  = "id"
	AttrSrc = "src"
	AttrAlt = "alt"
)

// Attr is a single element attribute. Order is preserved for rendering.
type Attr struct {
	Key string
	Val string
}

// Element is one node of a composed card. Text is literal text content and is
// never interpreted as markup by any renderer.
type Element struct {
	Tag      Tag
	Class    string
	Text     string
	Attrs    []Attr
	Children []Element
	Control  *Control // Non-nil for interactive controls
}

// Attr returns the value of the attribute with the given key.
func (e Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Append returns a copy of e with children added after the existing ones.
// The receiver's child slice is never shared with the result.
func (e Element) Append(children ...Element) Element {
	out := e
	out.Children = make([]Element, 0, len(e.Children)+len(children))
	out.Children = append(out.Children, e.Children...)
	out.Children = append(out.Children, children...)
	return out
}

// Walk visits e and its descendants in document order until fn returns false.
func (e Element) Walk(fn func(Element) bool) {
	e.walk(fn)
}

func (e Element) walk(fn func(Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// Controls returns the interactive controls under e in document order.
func (e Element) Controls() []*Control {
	var out []*Control
	e.Walk(func(n Element) bool {
		if n.Control != nil {
			out = append(out, n.Control)
		}
		return true
	})
	return out
}

func hasClass(classList, class string) bool {
	if class == "" {
		return false
	}
	for _, c := range splitClasses(classList) {
		if c == class {
			return true
		}
	}
	return false
}
