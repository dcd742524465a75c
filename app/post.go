package app

import (
	"context"

	"github.com/CrestNiraj12/postcards/domain"
)

// PostService edits and deletes posts on the social backend.
type PostService interface {
	// Update replaces a post's editable fields and returns the stored post.
	Update(ctx context.Context, id domain.PostID, draft domain.Draft) (domain.Post, error)

	// Delete removes a post by ID.
	Delete(ctx context.Context, id domain.PostID) error
}
