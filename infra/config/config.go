package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds application-level configuration.
type Config struct {
	APIURL    string // e.g. "https://api.noroff.dev/api/v1"
	TokenPath string // Path to file containing the access token
	Email     string // Optional login e-mail used when no token is stored
	Password  string
	Limit     int    // Posts per fetch
	LogPath   string // Empty disables logging
	Listen    string // Address for `postcards serve`
	StatePath string // UI state file
}

const defaultLimit = 20

// Load reads configuration from environment variables.
//
//	POSTCARDS_API_URL : API base URL (default: https://api.noroff.dev/api/v1)
//	POSTCARDS_TOKEN   : Path to token file (default: ~/.config/postcards/token)
//	POSTCARDS_EMAIL   : Login e-mail, used with POSTCARDS_PASSWORD when no token is stored
//	POSTCARDS_PASSWORD: Login password
//	POSTCARDS_LIMIT   : Posts per page (default: 20)
//	POSTCARDS_LOG     : Log file (default: ~/.config/postcards/postcards.log, "off" disables)
//	POSTCARDS_LISTEN  : HTTP listen address for serve mode (default: 127.0.0.1:8080)
//	POSTCARDS_STATE   : UI state file (default: ~/.config/postcards/ui_state.json)
func Load() (Config, error) {
	api := os.Getenv("POSTCARDS_API_URL")
	if api == "" {
		api = "https://api.noroff.dev/api/v1"
	}
	parsed, err := url.Parse(api)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid POSTCARDS_API_URL: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid POSTCARDS_API_URL: only https is allowed")
	}
	api = strings.TrimRight(parsed.String(), "/")

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	base := filepath.Join(home, ".config", "postcards")

	limit := defaultLimit
	if raw := strings.TrimSpace(os.Getenv("POSTCARDS_LIMIT")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			return Config{}, fmt.Errorf("invalid POSTCARDS_LIMIT: must be between 1 and 100")
		}
		limit = n
	}

	logPath := envOr("POSTCARDS_LOG", filepath.Join(base, "postcards.log"))
	if strings.EqualFold(logPath, "off") {
		logPath = ""
	}

	return Config{
		APIURL:    api,
		TokenPath: envOr("POSTCARDS_TOKEN", filepath.Join(base, "token")),
		Email:     strings.TrimSpace(os.Getenv("POSTCARDS_EMAIL")),
		Password:  os.Getenv("POSTCARDS_PASSWORD"),
		Limit:     limit,
		LogPath:   logPath,
		Listen:    envOr("POSTCARDS_LISTEN", "127.0.0.1:8080"),
		StatePath: envOr("POSTCARDS_STATE", filepath.Join(base, "ui_state.json")),
	}, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// UIState is persisted between runs.
type UIState struct {
	Scope string `json:"scope,omitempty"` // "all" or "mine"
}

// LoadUIState reads the UI state file. A missing file is not an error.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return UIState{}, nil
	}
	if err != nil {
		return UIState{}, fmt.Errorf("reading ui state: %w", err)
	}
	var st UIState
	if err := json.Unmarshal(data, &st); err != nil {
		return UIState{}, fmt.Errorf("parsing ui state: %w", err)
	}
	return st, nil
}

// SaveUIState writes the UI state file, creating its directory.
func SaveUIState(path string, st UIState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing ui state: %w", err)
	}
	return nil
}
