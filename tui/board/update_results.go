package board

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleResultMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateOptimisticMsg:
		i := m.indexOf(msg.ID)
		if i < 0 {
			return m, nil
		}
		prev := m.posts[i]
		next := prev
		next.Title = strings.TrimSpace(msg.Draft.Title)
		next.Body = strings.TrimSpace(msg.Draft.Body)
		if media := strings.TrimSpace(msg.Draft.MediaURL); media != "" {
			next.MediaURL = media
		}
		m.posts = replaceAt(m.posts, i, next)
		m.state[msg.ID] = itemState{status: StatusPendingUpdate, prev: prev}
		m.rebuild()
		return m, nil

	case UpdateResultMsg:
		i := m.indexOf(msg.ID)
		if i < 0 {
			return m, nil
		}
		st := m.state[msg.ID]
		if msg.Err != nil {
			if st.status == StatusPendingUpdate {
				m.posts = replaceAt(m.posts, i, st.prev)
			}
			m.state[msg.ID] = itemState{status: StatusFailed, err: msg.Err}
			m.rebuild()
			return m, nil
		}
		// The update response carries no author profile; keep what the card had.
		next := msg.Post
		if next.AvatarURL == "" {
			next.AvatarURL = m.posts[i].AvatarURL
		}
		next.ID = msg.ID
		next.IsOwn = true
		m.posts = replaceAt(m.posts, i, next)
		delete(m.state, msg.ID)
		m.rebuild()
		return m, nil

	case DeleteResultMsg:
		i := m.indexOf(msg.ID)
		if i < 0 {
			return m, nil
		}
		if msg.Err != nil {
			m.state[msg.ID] = itemState{status: StatusFailed, err: msg.Err}
			return m, nil
		}
		delete(m.state, msg.ID)
		m.posts = removeAt(m.posts, i)
		if m.cursor >= len(m.posts) && m.cursor > 0 {
			m.cursor--
		}
		m.focus = -1
		m.rebuild()
		return m, nil
	}
	return m, nil
}

// replaceAt and removeAt copy so a posts slice handed to an earlier board is
// never mutated under it.
func replaceAt[T any](s []T, i int, v T) []T {
	out := append([]T(nil), s...)
	out[i] = v
	return out
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
