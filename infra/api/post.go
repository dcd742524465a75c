package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/CrestNiraj12/postcards/domain"
)

// postService implements app.PostService using the posts API.
type postService struct {
	client      *Client
	currentUser string
}

// NewPostService creates a PostService backed by the posts API.
func NewPostService(client *Client, currentUser string) *postService {
	return &postService{client: client, currentUser: currentUser}
}

type updateRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Media string `json:"media"` // Empty clears the media
}

func (s *postService) Update(ctx context.Context, id domain.PostID, draft domain.Draft) (domain.Post, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return domain.Post{}, domain.ErrEmptyPost
	}

	body, err := json.Marshal(updateRequest{
		Title: title,
		Body:  strings.TrimSpace(draft.Body),
		Media: strings.TrimSpace(draft.MediaURL),
	})
	if err != nil {
		return domain.Post{}, fmt.Errorf("encoding post: %w", err)
	}

	data, err := s.client.Put(ctx, postPath(id), bytes.NewReader(body))
	if err != nil {
		return domain.Post{}, fmt.Errorf("updating post: %w", err)
	}

	var p apiPost
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Post{}, fmt.Errorf("parsing post response: %w", err)
	}
	return mapPost(p, s.currentUser), nil
}

func (s *postService) Delete(ctx context.Context, id domain.PostID) error {
	if _, err := s.client.Delete(ctx, postPath(id)); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	return nil
}

func postPath(id domain.PostID) string {
	return "/social/posts/" + url.PathEscape(id.String())
}
