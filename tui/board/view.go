package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/postcards/domain"
	"github.com/CrestNiraj12/postcards/tui/card"
	"github.com/CrestNiraj12/postcards/tui/common"
)

const defaultCardWidth = 72

// View renders the board.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.loading && m.board.Len() == 0:
		b.WriteString(m.spinner.View() + " Loading posts...\n")
	case m.err != nil && m.board.Len() == 0:
		b.WriteString(common.ErrorStyle.Render("Error: "+common.FirstLine(m.err.Error())) + "\n")
		b.WriteString(common.MetadataStyle.Render("Press r to retry.") + "\n")
	case m.board.Len() == 0:
		b.WriteString(common.MetadataStyle.Render("No posts yet.") + "\n")
	default:
		b.WriteString(m.renderCards())
		if m.err != nil {
			b.WriteString(common.ErrorStyle.Render(common.FirstLine(m.err.Error())) + "\n")
		}
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := common.AppTitleStyle.Render(domain.DisplayAppTitle())
	scope := "All posts"
	if m.scope == ScopeMine {
		scope = "My posts"
	}
	line := title + "  " + common.ScopeStyle.Render(scope)
	if m.loading && m.board.Len() > 0 {
		line += " " + m.spinner.View()
	}
	return line
}

func (m Model) cardWidth() int {
	if m.width > 8 {
		return min(m.width-6, defaultCardWidth)
	}
	return defaultCardWidth
}

// renderCards draws the cards from m.start, moving the window down until the
// selected card fits the terminal height.
func (m Model) renderCards() string {
	rendered := make([]string, m.board.Len())
	for i := range rendered {
		rendered[i] = m.renderCard(i)
	}

	budget := m.height - 8
	start := min(m.start, m.cursor)
	if budget > 0 {
		for start < m.cursor && linesBetween(rendered, start, m.cursor) > budget {
			start++
		}
	}

	var b strings.Builder
	used := 0
	for i := start; i < len(rendered); i++ {
		h := lipgloss.Height(rendered[i])
		if budget > 0 && used > 0 && used+h > budget {
			break
		}
		b.WriteString(rendered[i])
		b.WriteString("\n")
		used += h
	}
	return b.String()
}

func linesBetween(rendered []string, from, to int) int {
	n := 0
	for i := from; i <= to; i++ {
		n += lipgloss.Height(rendered[i])
	}
	return n
}

func (m Model) renderCard(i int) string {
	p := m.board.Post(i)
	opts := card.RenderOptions{
		Width:    m.cardWidth(),
		Selected: i == m.cursor,
	}
	if i == m.cursor && m.focus >= 0 {
		if controls := m.selectedControls(); m.focus < len(controls) {
			ctl := controls[m.focus]
			opts.Focus = &card.Focus{Action: ctl.Action(), PostID: ctl.PostID()}
		}
	}
	out := card.Render(m.board.Card(i), opts)
	if status := m.renderStatus(p.ID); status != "" {
		out += "\n" + status
	}
	return out
}

func (m Model) renderStatus(id domain.PostID) string {
	st, ok := m.state[id]
	if !ok {
		return ""
	}
	switch st.status {
	case StatusPendingUpdate:
		return common.MetadataStyle.Render("(updating...)")
	case StatusPendingDelete:
		return common.MetadataStyle.Render("(deleting...)")
	case StatusFailed:
		msg := "(failed)"
		if st.err != nil {
			msg = fmt.Sprintf("(failed: %s)", common.FirstLine(st.err.Error()))
		}
		return common.ErrorStyle.Render(msg)
	}
	return ""
}

func (m Model) renderFooter() string {
	if m.confirmDelete != "" {
		return common.ConfirmStyle.Render("Delete this post? (y/n)")
	}
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.NextControl, m.keys.Activate, m.keys.Edit, m.keys.Delete, m.keys.ToggleHints, m.keys.Quit}
	if m.showHints {
		bindings = []key.Binding{
			m.keys.Up, m.keys.Down, m.keys.NextControl, m.keys.PrevControl, m.keys.Activate,
			m.keys.Edit, m.keys.Delete, m.keys.ToggleScope, m.keys.Refresh, m.keys.ToggleHints, m.keys.Quit,
		}
		return common.DialogStyle.Render(helpLines(bindings, "\n"))
	}
	return common.StatusBarStyle.Render(helpLines(bindings, " • "))
}

func helpLines(bindings []key.Binding, sep string) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, sep)
}
