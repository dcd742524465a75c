package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenAccount implements app.AccountService from the claims of the stored
// access token. Signatures are not checked here; the API verifies tokens.
type TokenAccount struct {
	tokens TokenProvider
}

// NewTokenAccount creates an AccountService backed by tp.
func NewTokenAccount(tp TokenProvider) *TokenAccount {
	return &TokenAccount{tokens: tp}
}

// CurrentUser returns the "name" claim of the access token.
func (a *TokenAccount) CurrentUser(_ context.Context) (string, error) {
	token, err := a.tokens.AccessToken()
	if err != nil {
		return "", err
	}
	claims, err := parseClaims(token)
	if err != nil {
		return "", err
	}
	name, _ := claims["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("access token has no name claim")
	}
	return name, nil
}

func parseClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parsing access token: %w", err)
	}
	return claims, nil
}

// tokenExpired reports whether the token carries an exp claim in the past.
// Tokens that cannot be parsed count as expired.
func tokenExpired(token string, now time.Time) bool {
	claims, err := parseClaims(token)
	if err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
