package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type staticToken string

func (s staticToken) AccessToken() (string, error) { return string(s), nil }

func TestTokenAccount_CurrentUser(t *testing.T) {
	acct := NewTokenAccount(staticToken(signedToken(t, jwt.MapClaims{"name": "jane_doe", "email": "jane@example.com"})))
	got, err := acct.CurrentUser(context.Background())
	if err != nil || got != "jane_doe" {
		t.Fatalf("unexpected user: %q %v", got, err)
	}
}

func TestTokenAccount_Errors(t *testing.T) {
	if _, err := NewTokenAccount(staticToken("not-a-jwt")).CurrentUser(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
	noName := signedToken(t, jwt.MapClaims{"email": "x@example.com"})
	if _, err := NewTokenAccount(staticToken(noName)).CurrentUser(context.Background()); err == nil {
		t.Fatalf("expected missing-name error")
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	if tokenExpired(signedToken(t, jwt.MapClaims{"name": "a"}), now) {
		t.Fatalf("token without exp should not expire")
	}
	if !tokenExpired(signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), now) {
		t.Fatalf("past exp should be expired")
	}
	if tokenExpired(signedToken(t, jwt.MapClaims{"exp": now.Add(time.Minute).Unix()}), now) {
		t.Fatalf("future exp should be valid")
	}
	if !tokenExpired("garbage", now) {
		t.Fatalf("unparseable token counts as expired")
	}
}
