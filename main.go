package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/postcards/infra/api"
	"github.com/CrestNiraj12/postcards/infra/auth"
	"github.com/CrestNiraj12/postcards/infra/config"
	"github.com/CrestNiraj12/postcards/infra/editor"
	"github.com/CrestNiraj12/postcards/infra/logging"
	"github.com/CrestNiraj12/postcards/tui"
	"github.com/CrestNiraj12/postcards/tui/board"
	"github.com/CrestNiraj12/postcards/web"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliServe
	cliRunEditor
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "serve":
		if len(args) > 1 {
			return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args[1:], " "))
		}
		return cliServe, ""
	case "--editor", "-e":
		return cliRunEditor, ""
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return `Usage: postcards [serve] [--editor|-e] [--version|-version|-v] [--help|-h]

  postcards          browse posts in the terminal
  postcards --editor edit posts in $EDITOR instead of the inline form
  postcards serve    serve the card board as HTML on $POSTCARDS_LISTEN`
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("PostCards %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	if err := run(mode); err != nil {
		fmt.Fprintf(os.Stderr, "postcards: %v\n", err)
		os.Exit(1)
	}
}

func run(mode cliMode) error {
	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Build infrastructure.
	if err := auth.EnsureLogin(ctx, cfg.APIURL, cfg.TokenPath, cfg.Email, cfg.Password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	tokenProvider := auth.NewFileTokenProvider(cfg.TokenPath)
	httpClient := api.NewClient(cfg.APIURL, tokenProvider)

	// 3. Build services (concrete types satisfy app.* interfaces).
	accountSvc := auth.NewTokenAccount(tokenProvider)
	currentUser, err := accountSvc.CurrentUser(ctx)
	if err != nil {
		log.Warn("current user unknown, posts are read-only", zap.Error(err))
	}
	timelineSvc := api.NewTimelineService(httpClient, currentUser)
	postSvc := api.NewPostService(httpClient, currentUser)

	if mode == cliServe {
		srv := web.NewServer(timelineSvc, postSvc, log, cfg.Limit)
		fmt.Fprintf(os.Stderr, "serving on http://%s\n", cfg.Listen)
		return srv.ListenAndServe(ctx, cfg.Listen)
	}

	uiState, err := config.LoadUIState(cfg.StatePath)
	if err != nil {
		log.Warn("ignoring ui state", zap.Error(err))
	}

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Timeline:    timelineSvc,
		Post:        postSvc,
		Editor:      editor.NewEnvEditor(),
		Logger:      log,
		CurrentUser: currentUser,
		Scope:       board.ParseScope(uiState.Scope),
		Limit:       cfg.Limit,
		StatePath:   cfg.StatePath,
		UseEditor:   mode == cliRunEditor,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
