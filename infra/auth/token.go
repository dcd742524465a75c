package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/CrestNiraj12/postcards/domain"
)

// TokenProvider supplies an access token for API authentication.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads a bearer token from a file on disk on every call,
// so a token refreshed by EnsureLogin is picked up without a restart.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken reads and returns the token, trimming whitespace. A missing or
// empty file wraps domain.ErrUnauthorized.
func (f *FileTokenProvider) AccessToken() (string, error) {
	token, err := readToken(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: no token at %s", domain.ErrUnauthorized, f.path)
	}
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}
	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: token file %s is empty", domain.ErrUnauthorized, f.path)
	}
	return token, nil
}
