package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/postcards/app"
	"github.com/CrestNiraj12/postcards/domain"
	"github.com/CrestNiraj12/postcards/tui/card"
)

// deleteMsg and editMsg are what the web card handlers produce. The server
// runs the handler's command inline and acts on the message.
type deleteMsg struct{ id domain.PostID }

type editMsg struct{ id domain.PostID }

// Server renders the card board as HTML and serves card activations.
type Server struct {
	timeline    app.TimelineService
	posts       app.PostService
	log         *zap.Logger
	limit       int
	pages       *pageStore
	registry    *prometheus.Registry
	activations *prometheus.CounterVec
	router      *mux.Router
}

// NewServer creates a server. A nil logger disables logging.
func NewServer(timeline app.TimelineService, posts app.PostService, log *zap.Logger, limit int) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		timeline: timeline,
		posts:    posts,
		log:      log,
		limit:    limit,
		pages:    newPageStore(defaultMaxPages),
		registry: prometheus.NewRegistry(),
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "postcards_activations_total",
			Help: "Card control activations by action.",
		}, []string{"action"}),
	}
	s.registry.MustRegister(s.activations)

	r := mux.NewRouter()
	r.Handle("/", wrap(s.log, s.handleBoard)).Methods(http.MethodGet)
	r.Handle("/pages/{pageID}/posts/{postID}/edit", wrap(s.log, s.handleEditForm)).Methods(http.MethodGet)
	r.Handle("/pages/{pageID}/posts/{postID}/{action}", wrap(s.log, s.handleActivate)).Methods(http.MethodPost)
	r.Handle("/pages/{pageID}/posts/{postID}", wrap(s.log, s.handleUpdate)).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.router, "postcards")
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("serving", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handlersFor(p domain.Post) card.Handlers {
	if !p.IsOwn {
		return card.Handlers{}
	}
	return card.Handlers{
		OnDelete: func(a card.Activation) tea.Cmd {
			return func() tea.Msg { return deleteMsg{id: a.PostID} }
		},
		OnEdit: func(a card.Activation) tea.Cmd {
			return func() tea.Msg { return editMsg{id: a.PostID} }
		},
	}
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) error {
	posts, err := s.timeline.FetchPosts(r.Context(), s.limit)
	if err != nil {
		return fmt.Errorf("fetching posts: %w", err)
	}
	b, err := card.NewBoard(posts, s.handlersFor)
	if err != nil {
		return err
	}
	pageID := s.pages.put(b)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return renderBoardPage(w, b, func(c *card.Control) string {
		return activationPath(pageID, c.PostID(), c.Action())
	}, r.URL.Query().Get("notice"))
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) error {
	vars := mux.Vars(r)
	b, ok := s.pages.get(vars["pageID"])
	if !ok {
		redirectExpired(w, r)
		return nil
	}
	action := card.Action(vars["action"])
	id := domain.PostID(vars["postID"])

	cmd, err := b.Activate(action, id)
	if err != nil {
		return err
	}
	s.activations.WithLabelValues(string(action)).Inc()
	if cmd == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}

	switch msg := cmd().(type) {
	case deleteMsg:
		if err := s.posts.Delete(r.Context(), msg.id); err != nil {
			return fmt.Errorf("deleting post %s: %w", msg.id, err)
		}
		s.log.Info("post deleted", zap.String("post_id", msg.id.String()))
		http.Redirect(w, r, "/?notice="+url.QueryEscape("Post deleted."), http.StatusSeeOther)
	case editMsg:
		http.Redirect(w, r, postPath(vars["pageID"], msg.id)+"/edit", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
	return nil
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) error {
	vars := mux.Vars(r)
	b, ok := s.pages.get(vars["pageID"])
	if !ok {
		redirectExpired(w, r)
		return nil
	}
	id := domain.PostID(vars["postID"])
	p, err := editablePost(b, id)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return renderEditPage(w, p, postPath(vars["pageID"], id))
}

// handleUpdate only accepts edits for a post that had an Edit control on a
// page this server rendered.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) error {
	vars := mux.Vars(r)
	b, ok := s.pages.get(vars["pageID"])
	if !ok {
		return fmt.Errorf("%w: page %q", domain.ErrControlNotFound, vars["pageID"])
	}
	id := domain.PostID(vars["postID"])
	if _, err := editablePost(b, id); err != nil {
		return err
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", errBadForm, err)
	}
	draft := domain.Draft{
		Title:    strings.TrimSpace(r.PostFormValue("title")),
		Body:     r.PostFormValue("body"),
		MediaURL: strings.TrimSpace(r.PostFormValue("media")),
	}
	if _, err := s.posts.Update(r.Context(), id, draft); err != nil {
		return fmt.Errorf("updating post %s: %w", id, err)
	}
	s.log.Info("post updated", zap.String("post_id", id.String()))
	http.Redirect(w, r, "/?notice="+url.QueryEscape("Post updated."), http.StatusSeeOther)
	return nil
}

func editablePost(b *card.Board, id domain.PostID) (domain.Post, error) {
	if _, ok := b.Control(card.ActionEdit, id); !ok {
		return domain.Post{}, fmt.Errorf("%w: edit %q", domain.ErrControlNotFound, id)
	}
	return b.Post(b.Index(id)), nil
}

func redirectExpired(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/?notice="+url.QueryEscape("That page expired, here is a fresh one."), http.StatusSeeOther)
}

func postPath(pageID string, id domain.PostID) string {
	return "/pages/" + pageID + "/posts/" + url.PathEscape(id.String())
}

func activationPath(pageID string, id domain.PostID, action card.Action) string {
	return postPath(pageID, id) + "/" + string(action)
}
