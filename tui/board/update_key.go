package board

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postcards/domain"
	"github.com/CrestNiraj12/postcards/tui/card"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.confirmDelete != "" {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m.Refresh()

	case key.Matches(msg, m.keys.ToggleScope):
		if m.currentUser == "" {
			m.err = errors.New("sign in to see your own posts")
			return m, nil
		}
		if m.scope == ScopeMine {
			m.scope = ScopeAll
		} else {
			m.scope = ScopeMine
		}
		scope := m.scope
		var cmd tea.Cmd
		m, cmd = m.Refresh()
		return m, tea.Batch(cmd, func() tea.Msg { return ScopeChangedMsg{Scope: scope} })

	case key.Matches(msg, m.keys.ToggleHints):
		m.showHints = !m.showHints
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.focus = -1
		}
		if m.cursor < m.start {
			m.start = m.cursor
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.board.Len()-1 {
			m.cursor++
			m.focus = -1
		}
		return m, nil

	case key.Matches(msg, m.keys.NextControl):
		if n := len(m.selectedControls()); n > 0 {
			m.focus = (m.focus + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevControl):
		if n := len(m.selectedControls()); n > 0 {
			if m.focus <= 0 {
				m.focus = n - 1
			} else {
				m.focus--
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		controls := m.selectedControls()
		if len(controls) == 0 {
			return m, nil
		}
		if m.focus < 0 {
			m.focus = 0
			return m, nil
		}
		return m.activate(controls[m.focus].Action())

	case key.Matches(msg, m.keys.Edit):
		return m.activate(card.ActionEdit)

	case key.Matches(msg, m.keys.Delete):
		return m.activate(card.ActionDelete)
	}
	return m, nil
}

// activate routes an action on the selected card through the board so the
// handler bound to that card's control is the one that runs.
func (m Model) activate(action card.Action) (Model, tea.Cmd) {
	if m.board.Len() == 0 {
		return m, nil
	}
	id := m.board.Post(m.cursor).ID
	if st := m.state[id].status; st == StatusPendingDelete || st == StatusPendingUpdate {
		return m, nil
	}
	cmd, err := m.board.Activate(action, id)
	if errors.Is(err, domain.ErrControlNotFound) {
		// Not an own post, or the card has no such control.
		return m, nil
	}
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmDelete
		m.confirmDelete = ""
		if i := m.indexOf(id); i < 0 {
			return m, nil
		}
		m.state[id] = itemState{status: StatusPendingDelete}
		return m, func() tea.Msg { return DeletePostMsg{ID: id} }

	case key.Matches(msg, m.keys.Cancel):
		m.confirmDelete = ""
	}
	return m, nil
}
