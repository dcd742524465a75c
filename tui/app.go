package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/postcards/app"
	"github.com/CrestNiraj12/postcards/infra/config"
	"github.com/CrestNiraj12/postcards/infra/editor"
	"github.com/CrestNiraj12/postcards/tui/board"
	"github.com/CrestNiraj12/postcards/tui/common"
	"github.com/CrestNiraj12/postcards/tui/compose"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Timeline    app.TimelineService
	Post        app.PostService
	Editor      *editor.EnvEditor
	Logger      *zap.Logger
	CurrentUser string
	Scope       board.Scope
	Limit       int
	StatePath   string // Empty disables persisting the scope
	UseEditor   bool   // Edit in $EDITOR instead of the inline form
}

type activeView int

const (
	boardView activeView = iota
	composeView
)

// App is the root Bubble Tea model. It routes between the board and the
// edit form and runs post service calls.
type App struct {
	deps    Deps
	log     *zap.Logger
	active  activeView
	board   board.Model
	compose compose.Model
	keys    common.KeyMap
	status  string // Transient status message (e.g. "Post deleted.")
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return App{
		deps:   deps,
		log:    log,
		active: boardView,
		board:  board.New(deps.Timeline, deps.CurrentUser, deps.Scope, deps.Limit),
		keys:   common.DefaultKeyMap(),
	}
}

// Init starts the first fetch.
func (a App) Init() tea.Cmd {
	return a.board.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active == boardView && !a.board.Confirming() && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.active == boardView {
			a.status = ""
		}

	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(msg)
		return a, cmd

	case board.PostsErrorMsg:
		a.log.Warn("fetching posts failed", zap.Error(msg.Err))
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(msg)
		return a, cmd

	case board.PostsLoadedMsg, spinner.TickMsg:
		// Fetches finish in the background, even while the edit form is open.
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(msg)
		return a, cmd

	case board.ScopeChangedMsg:
		return a, a.saveScope(msg.Scope)

	case board.EditRequestedMsg:
		a.active = composeView
		a.status = ""
		if a.deps.UseEditor {
			a.compose = compose.NewEditor(a.deps.Editor, msg.Post)
		} else {
			a.compose = compose.NewInline(a.deps.Editor, msg.Post)
		}
		return a, a.compose.Init()

	case board.DeletePostMsg:
		a.status = "Deleting..."
		return a, a.deletePost(msg)

	case board.DeleteResultMsg:
		a.board, _ = a.board.Update(msg)
		if msg.Err != nil {
			a.log.Error("delete failed", zap.String("post_id", msg.ID.String()), zap.Error(msg.Err))
			a.status = "Error deleting: " + common.FirstLine(msg.Err.Error())
		} else {
			a.log.Info("post deleted", zap.String("post_id", msg.ID.String()))
			a.status = "Post deleted."
		}
		return a, nil

	case compose.DoneMsg:
		a.active = boardView
		if msg.Err != nil {
			a.log.Error("edit failed", zap.String("post_id", msg.PostID.String()), zap.Error(msg.Err))
			a.status = "Error: " + common.FirstLine(msg.Err.Error())
			return a, nil
		}
		if msg.Cancelled() {
			a.status = "Cancelled."
			return a, nil
		}
		a.board, _ = a.board.Update(board.UpdateOptimisticMsg{ID: msg.PostID, Draft: msg.Draft})
		a.status = "Updating..."
		return a, a.updatePost(msg)

	case board.UpdateResultMsg:
		a.board, _ = a.board.Update(msg)
		if msg.Err != nil {
			a.log.Error("update failed", zap.String("post_id", msg.ID.String()), zap.Error(msg.Err))
			a.status = "Error updating: " + common.FirstLine(msg.Err.Error())
		} else {
			a.log.Info("post updated", zap.String("post_id", msg.ID.String()))
			a.status = "Post updated."
		}
		return a, nil
	}

	// Delegate to the active sub-model.
	switch a.active {
	case boardView:
		updated, cmd := a.board.Update(msg)
		a.board = updated
		return a, cmd
	case composeView:
		updated, cmd := a.compose.Update(msg)
		a.compose = updated
		return a, cmd
	}
	return a, nil
}

func (a App) deletePost(msg board.DeletePostMsg) tea.Cmd {
	post := a.deps.Post
	return func() tea.Msg {
		err := post.Delete(context.Background(), msg.ID)
		return board.DeleteResultMsg{ID: msg.ID, Err: err}
	}
}

func (a App) updatePost(msg compose.DoneMsg) tea.Cmd {
	post := a.deps.Post
	return func() tea.Msg {
		p, err := post.Update(context.Background(), msg.PostID, msg.Draft)
		return board.UpdateResultMsg{ID: msg.PostID, Post: p, Err: err}
	}
}

func (a App) saveScope(scope board.Scope) tea.Cmd {
	path := a.deps.StatePath
	if path == "" {
		return nil
	}
	log := a.log
	return func() tea.Msg {
		if err := config.SaveUIState(path, config.UIState{Scope: string(scope)}); err != nil {
			log.Warn("saving ui state failed", zap.Error(err))
		}
		return nil
	}
}

// View renders the active sub-model.
func (a App) View() string {
	var s string
	switch a.active {
	case boardView:
		s = a.board.View()
	case composeView:
		s = a.compose.View()
	}

	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}
	return s
}
