package app

import (
	"context"

	"github.com/CrestNiraj12/postcards/domain"
)

// TimelineService fetches posts for display.
type TimelineService interface {
	// FetchPosts returns the newest posts from everyone.
	FetchPosts(ctx context.Context, limit int) ([]domain.Post, error)

	// FetchByAuthor returns the newest posts of one author.
	FetchByAuthor(ctx context.Context, author string, limit int) ([]domain.Post, error)
}
