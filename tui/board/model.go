package board

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/postcards/app"
	"github.com/CrestNiraj12/postcards/domain"
	"github.com/CrestNiraj12/postcards/tui/card"
	"github.com/CrestNiraj12/postcards/tui/common"
)

const defaultLimit = 20

// Scope selects which posts the board shows.
type Scope string

const (
	ScopeAll  Scope = "all"
	ScopeMine Scope = "mine"
)

// ParseScope maps a stored scope name to a Scope, defaulting to ScopeAll.
func ParseScope(s string) Scope {
	if Scope(s) == ScopeMine {
		return ScopeMine
	}
	return ScopeAll
}

// --- Messages ---

// PostsLoadedMsg is sent when a fetch completes successfully.
type PostsLoadedMsg struct {
	Posts  []domain.Post
	ReqSeq int
}

// PostsErrorMsg is sent when a fetch fails.
type PostsErrorMsg struct {
	Err    error
	ReqSeq int
}

// EditRequestedMsg is emitted by a card's Edit control.
type EditRequestedMsg struct {
	Post domain.Post
}

// DeleteRequestedMsg is emitted by a card's Delete control. The board asks
// for confirmation before anything is deleted.
type DeleteRequestedMsg struct {
	ID domain.PostID
}

// DeletePostMsg is emitted once the user confirms a delete.
type DeletePostMsg struct {
	ID domain.PostID
}

// DeleteResultMsg is sent after a delete attempt.
type DeleteResultMsg struct {
	ID  domain.PostID
	Err error
}

// UpdateOptimisticMsg shows an edit on the card before the server confirms it.
type UpdateOptimisticMsg struct {
	ID    domain.PostID
	Draft domain.Draft
}

// UpdateResultMsg is sent after an update attempt.
type UpdateResultMsg struct {
	ID   domain.PostID
	Post domain.Post
	Err  error
}

// ScopeChangedMsg is emitted when the user toggles the scope.
type ScopeChangedMsg struct {
	Scope Scope
}

// --- Model ---

// Status is the per-post pending state shown under a card.
type Status int

const (
	StatusNormal Status = iota
	StatusPendingUpdate
	StatusPendingDelete
	StatusFailed
)

type itemState struct {
	status Status
	err    error
	prev   domain.Post // Rollback copy for a pending update
}

// Model holds the state for the card board view.
type Model struct {
	timeline    app.TimelineService
	currentUser string
	limit       int
	scope       Scope

	posts []domain.Post
	state map[domain.PostID]itemState
	board *card.Board

	cursor        int
	start         int // First card drawn
	focus         int // Index into the selected card's controls; -1 for none
	confirmDelete domain.PostID

	loading   bool
	err       error
	reqSeq    int
	keys      common.KeyMap
	spinner   spinner.Model
	showHints bool
	width     int
	height    int
}

// New creates a board model with injected dependencies.
func New(timeline app.TimelineService, currentUser string, scope Scope, limit int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	if limit <= 0 {
		limit = defaultLimit
	}
	if currentUser == "" {
		scope = ScopeAll
	}

	return Model{
		timeline:    timeline,
		currentUser: currentUser,
		limit:       limit,
		scope:       scope,
		state:       map[domain.PostID]itemState{},
		focus:       -1,
		loading:     true,
		keys:        common.DefaultKeyMap(),
		spinner:     s,
	}
}

// Init starts the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchPosts(m.reqSeq), m.spinner.Tick)
}

// Scope returns the active scope.
func (m Model) Scope() Scope { return m.scope }

// Len returns the number of cards on the board.
func (m Model) Len() int { return m.board.Len() }

// Confirming reports whether a delete confirmation is open.
func (m Model) Confirming() bool { return m.confirmDelete != "" }

// Update handles messages for the board view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PostsLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.posts = msg.Posts
		m.state = map[domain.PostID]itemState{}
		m.cursor, m.start, m.focus = 0, 0, -1
		m.confirmDelete = ""
		m.rebuild()
		return m, nil

	case PostsErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		return m, nil

	case DeleteRequestedMsg:
		if m.board.Index(msg.ID) < 0 {
			return m, nil
		}
		m.confirmDelete = msg.ID
		return m, nil

	case DeleteResultMsg, UpdateOptimisticMsg, UpdateResultMsg:
		return m.handleResultMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// Refresh re-fetches the current scope.
func (m Model) Refresh() (Model, tea.Cmd) {
	m.reqSeq++
	m.loading = true
	return m, tea.Batch(m.fetchPosts(m.reqSeq), m.spinner.Tick)
}

func (m Model) fetchPosts(reqSeq int) tea.Cmd {
	timeline := m.timeline
	scope := m.scope
	user := m.currentUser
	limit := m.limit
	return func() tea.Msg {
		var (
			posts []domain.Post
			err   error
		)
		switch scope {
		case ScopeMine:
			posts, err = timeline.FetchByAuthor(context.Background(), user, limit)
		default:
			posts, err = timeline.FetchPosts(context.Background(), limit)
		}
		if err != nil {
			return PostsErrorMsg{Err: err, ReqSeq: reqSeq}
		}
		return PostsLoadedMsg{Posts: posts, ReqSeq: reqSeq}
	}
}

// rebuild recreates the card board from the current posts. Only own posts
// get action controls.
func (m *Model) rebuild() {
	b, err := card.NewBoard(m.posts, handlersFor)
	if err != nil {
		m.board = nil
		m.err = fmt.Errorf("building board: %w", err)
		return
	}
	m.board = b
	if m.cursor >= b.Len() {
		m.cursor = max(b.Len()-1, 0)
	}
	if m.start > m.cursor {
		m.start = m.cursor
	}
	m.clampFocus()
}

func handlersFor(p domain.Post) card.Handlers {
	if !p.IsOwn {
		return card.Handlers{}
	}
	return card.Handlers{
		OnEdit: func(a card.Activation) tea.Cmd {
			return func() tea.Msg { return EditRequestedMsg{Post: p} }
		},
		OnDelete: func(a card.Activation) tea.Cmd {
			return func() tea.Msg { return DeleteRequestedMsg{ID: a.PostID} }
		},
	}
}

func (m Model) selectedControls() []*card.Control {
	if m.board.Len() == 0 {
		return nil
	}
	return m.board.Card(m.cursor).Controls()
}

func (m *Model) clampFocus() {
	if m.focus >= len(m.selectedControls()) {
		m.focus = -1
	}
}

func (m Model) indexOf(id domain.PostID) int {
	for i, p := range m.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
