package app

import "context"

// AccountService provides information about the authenticated user.
type AccountService interface {
	// CurrentUser returns the profile name of the authenticated user.
	CurrentUser(ctx context.Context) (string, error)
}
