package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postcards/domain"
	"github.com/CrestNiraj12/postcards/infra/editor"
)

const (
	titleLimit = 280
	bodyLimit  = 2000
)

// --- Mode ---

type mode int

const (
	inlineMode mode = iota
	editorMode
)

type field int

const (
	titleField field = iota
	bodyField
)

// --- Messages ---

// DoneMsg is sent when editing is complete. A zero Draft means the edit
// was cancelled.
type DoneMsg struct {
	PostID domain.PostID
	Draft  domain.Draft
	Err    error
}

// Cancelled reports whether the user backed out without changes.
func (m DoneMsg) Cancelled() bool {
	return m.Err == nil && strings.TrimSpace(m.Draft.Title) == ""
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for the edit view of one post.
type Model struct {
	mode     mode
	editor   *editor.EnvEditor
	postID   domain.PostID
	original domain.Draft
	status   string
	focused  field
	title    textinput.Model
	body     textarea.Model
}

// NewInline creates an inline edit form prefilled with p.
func NewInline(ed *editor.EnvEditor, p domain.Post) Model {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = titleLimit
	ti.Width = 68
	ti.SetValue(p.Title)
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.CharLimit = bodyLimit
	ta.SetWidth(72)
	ta.SetHeight(8)
	ta.SetValue(p.Body)
	ta.Blur()

	return Model{
		mode:     inlineMode,
		editor:   ed,
		postID:   p.ID,
		original: domain.DraftOf(p),
		title:    ti,
		body:     ta,
	}
}

// NewEditor creates an edit session that opens $EDITOR via tea.ExecProcess.
func NewEditor(ed *editor.EnvEditor, p domain.Post) Model {
	m := NewInline(ed, p)
	m.mode = editorMode
	m.status = "Opening editor..."
	return m
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case editorMode:
		return m.launchEditor(m.draft())
	case inlineMode:
		return textinput.Blink
	}
	return nil
}

// PostID returns the post being edited.
func (m Model) PostID() domain.PostID { return m.postID }

func (m Model) draft() domain.Draft {
	return domain.Draft{
		Title:    m.title.Value(),
		Body:     m.body.Value(),
		MediaURL: m.original.MediaURL,
	}
}

// launchEditor prepares the editor command. tea.ExecProcess suspends the
// program while the editor owns the terminal.
func (m Model) launchEditor(d domain.Draft) tea.Cmd {
	if m.editor == nil {
		return done(DoneMsg{PostID: m.postID, Err: fmt.Errorf("no editor configured")})
	}
	cmd, tmpPath, err := m.editor.Cmd(d)
	if err != nil {
		return done(DoneMsg{PostID: m.postID, Err: fmt.Errorf("preparing editor: %w", err)})
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the compose view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	// --- Editor mode messages ---

	case editorFinishedMsg:
		if msg.err != nil {
			return m, done(DoneMsg{PostID: m.postID, Err: fmt.Errorf("editor: %w", msg.err)})
		}
		d, err := m.editor.ReadDraft(msg.tmpPath)
		if err != nil {
			return m, done(DoneMsg{PostID: m.postID, Err: err})
		}
		d.MediaURL = m.original.MediaURL
		return m, m.finish(d)

	// --- Inline mode messages ---

	case tea.KeyMsg:
		if m.mode != inlineMode {
			break
		}

		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{PostID: m.postID})

		case "ctrl+s":
			return m, m.finish(m.draft())

		case "ctrl+e":
			m.mode = editorMode
			m.status = "Opening editor..."
			return m, m.launchEditor(m.draft())

		case "tab", "shift+tab":
			m = m.toggleField()
			return m, nil
		}
	}

	if m.mode != inlineMode {
		return m, nil
	}

	var cmd tea.Cmd
	if m.focused == titleField {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleField() Model {
	if m.focused == titleField {
		m.focused = bodyField
		m.title.Blur()
		m.body.Focus()
	} else {
		m.focused = titleField
		m.body.Blur()
		m.title.Focus()
	}
	return m
}

// finish emits the draft, or a cancel when the title is empty or nothing changed.
func (m Model) finish(d domain.Draft) tea.Cmd {
	d.Title = strings.TrimSpace(d.Title)
	d.Body = strings.TrimSpace(d.Body)
	if d.Title == "" || (d.Title == strings.TrimSpace(m.original.Title) && d.Body == strings.TrimSpace(m.original.Body)) {
		return done(DoneMsg{PostID: m.postID})
	}
	return done(DoneMsg{PostID: m.postID, Draft: d})
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
