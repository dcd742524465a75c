package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CrestNiraj12/postcards/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func withMockDefaultTransport(t *testing.T, rt roundTripFunc) {
	t.Helper()
	prev := http.DefaultTransport
	http.DefaultTransport = rt
	t.Cleanup(func() { http.DefaultTransport = prev })
}

func response(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return tok
}

func TestLogin_StatusHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr error
	}{
		{name: "ok", status: http.StatusOK, body: `{"name":"jane","accessToken":"tok123"}`, want: "tok123"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, wantErr: domain.ErrUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: errors.New("any")},
		{name: "missing token", status: http.StatusOK, body: `{"name":"jane"}`, wantErr: errors.New("any")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withMockDefaultTransport(t, roundTripFunc(func(r *http.Request) (*http.Response, error) {
				if r.Method != http.MethodPost || r.URL.Path != "/social/auth/login" {
					t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				var in loginRequest
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Email != "jane@example.com" {
					t.Fatalf("unexpected login body: %#v %v", in, err)
				}
				return response(r, tc.status, tc.body), nil
			}))

			got, err := Login(context.Background(), "http://example.test", "jane@example.com", "secret")
			if tc.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error")
				}
				if errors.Is(tc.wantErr, domain.ErrUnauthorized) && !errors.Is(err, domain.ErrUnauthorized) {
					t.Fatalf("expected unauthorized, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("unexpected login result: %q %v", got, err)
			}
		})
	}
}

func TestEnsureLogin_KeepsValidToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	tok := signedToken(t, jwt.MapClaims{"name": "jane", "exp": time.Now().Add(time.Hour).Unix()})
	if err := os.WriteFile(path, []byte(tok), 0o600); err != nil {
		t.Fatalf("write token failed: %v", err)
	}
	withMockDefaultTransport(t, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		t.Fatalf("no request expected for a valid token")
		return nil, nil
	}))
	if err := EnsureLogin(context.Background(), "http://example.test", path, "", ""); err != nil {
		t.Fatalf("ensure login failed: %v", err)
	}
}

func TestEnsureLogin_RefreshesExpiredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth", "token")
	old := signedToken(t, jwt.MapClaims{"name": "jane", "exp": time.Now().Add(-time.Hour).Unix()})
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(old), 0o600); err != nil {
		t.Fatalf("write token failed: %v", err)
	}
	withMockDefaultTransport(t, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return response(r, http.StatusOK, `{"name":"jane","accessToken":"fresh"}`), nil
	}))

	if err := EnsureLogin(context.Background(), "http://example.test", path, "jane@example.com", "pw"); err != nil {
		t.Fatalf("ensure login failed: %v", err)
	}
	got, err := readToken(path)
	if err != nil || got != "fresh" {
		t.Fatalf("expected refreshed token, got %q %v", got, err)
	}
}

func TestEnsureLogin_RequiresCredentialsWithoutToken(t *testing.T) {
	err := EnsureLogin(context.Background(), "http://example.test", filepath.Join(t.TempDir(), "token"), "", "")
	if err == nil || !strings.Contains(err.Error(), "POSTCARDS_EMAIL") {
		t.Fatalf("expected credentials hint, got %v", err)
	}
}
