package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CrestNiraj12/postcards/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
}

// EnsureLogin guarantees a usable access token exists at tokenPath.
// A stored, unexpired token is kept; otherwise it logs in with email and
// password and stores the new token.
func EnsureLogin(ctx context.Context, apiURL, tokenPath, email, password string) error {
	token, err := readToken(tokenPath)
	if err == nil && token != "" && !tokenExpired(token, time.Now()) {
		return nil
	}
	if email == "" || password == "" {
		return fmt.Errorf("no usable token at %s: set POSTCARDS_EMAIL and POSTCARDS_PASSWORD to log in", tokenPath)
	}

	token, err = Login(ctx, apiURL, email, password)
	if err != nil {
		return err
	}
	return writeToken(tokenPath, token)
}

// Login exchanges credentials for an access token.
func Login(ctx context.Context, apiURL, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encoding login request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/social/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := (&http.Client{Timeout: 10 * time.Second}).Do(req)
	if err != nil {
		return "", fmt.Errorf("logging in: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", domain.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("login failed: %d %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("parsing login response: %w", err)
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return "", fmt.Errorf("login response has no access token")
	}
	return out.AccessToken, nil
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func writeToken(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating auth directory: %w", err)
	}
	return os.WriteFile(path, []byte(strings.TrimSpace(token)), 0o600)
}
