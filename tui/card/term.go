package card

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/postcards/domain"
)

// Focus identifies one control of a rendered tree.
type Focus struct {
	Action Action
	PostID domain.PostID
}

// RenderOptions control terminal rendering.
type RenderOptions struct {
	Width    int // Wrap/clip width for text; 0 means unlimited
	Theme    Theme
	Focus    *Focus
	Selected bool // Draw the root with SelectedCardStyle instead of its theme style
}

var iconGlyphs = []struct {
	class string
	glyph string
}{
	{class: "fa-comment", glyph: "💬"},
	{class: "fa-heart", glyph: "♥"},
	{class: "fa-xmark", glyph: "✕"},
}

// Render draws e for the terminal. Text is always shown literally: escape
// sequences and control characters in post data are stripped, never sent to
// the terminal.
func Render(e Element, opts RenderOptions) string {
	if opts.Theme == nil {
		opts.Theme = DefaultTheme()
	}
	r := renderer{opts: opts}
	out := r.render(e, true)
	if opts.Width > 0 {
		out = clampLinesToWidth(out, opts.Width+4)
	}
	return out
}

type renderer struct {
	opts RenderOptions
}

func (r renderer) style(e Element, root bool) lipgloss.Style {
	if root && r.opts.Selected {
		return SelectedCardStyle
	}
	if s, ok := r.opts.Theme[e.Class]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

func (r renderer) render(e Element, root bool) string {
	var out string
	switch e.Tag {
	case TagImg:
		out = r.style(e, root).Render(r.clip(imagePlaceholder(e)))
	case TagIcon:
		out = r.style(e, root).Render(iconGlyph(e.Class))
	case TagParagraph, TagHeading:
		out = r.style(e, root).Render(r.wrap(SanitizeText(e.Text)))
	default:
		parts := make([]string, 0, len(e.Children))
		for _, c := range e.Children {
			if s := r.render(c, false); s != "" {
				parts = append(parts, s)
			}
		}
		switch {
		case len(parts) == 0:
			out = ""
		case isHorizontal(e.Class):
			out = lipgloss.JoinHorizontal(lipgloss.Center, interleave(parts, " ")...)
		default:
			out = lipgloss.JoinVertical(lipgloss.Left, parts...)
		}
		if out != "" {
			out = r.style(e, root).Render(out)
		}
	}
	if e.Control != nil && r.focused(e.Control) {
		out = FocusedControlStyle.Render(ansi.Strip(out))
	}
	return out
}

func (r renderer) focused(c *Control) bool {
	f := r.opts.Focus
	return f != nil && f.Action == c.action && f.PostID == c.postID
}

func (r renderer) wrap(text string) string {
	if r.opts.Width <= 0 || ansi.StringWidth(text) <= r.opts.Width {
		return text
	}
	return lipgloss.NewStyle().Width(r.opts.Width).Render(text)
}

func (r renderer) clip(text string) string {
	if r.opts.Width <= 0 {
		return text
	}
	return ansi.Truncate(text, r.opts.Width, "…")
}

func imagePlaceholder(e Element) string {
	if alt, ok := e.Attr(AttrAlt); ok && alt != "" {
		return "[" + SanitizeText(alt) + "]"
	}
	src, _ := e.Attr(AttrSrc)
	if strings.TrimSpace(src) == "" {
		return "[media]"
	}
	return "[media " + SanitizeText(src) + "]"
}

func iconGlyph(class string) string {
	for _, g := range iconGlyphs {
		if hasClass(class, g.class) {
			return g.glyph
		}
	}
	return "•"
}

func isHorizontal(class string) bool {
	if hasClass(class, "flex-column") {
		return false
	}
	return hasClass(class, "d-flex") || hasClass(class, "row")
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

// SanitizeText removes terminal escape sequences and control characters,
// keeping newlines and tabs.
func SanitizeText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func clampLinesToWidth(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}
