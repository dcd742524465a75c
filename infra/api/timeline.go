package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/CrestNiraj12/postcards/domain"
)

// DateLayout is how creation dates are shown on cards.
const DateLayout = "Jan 02, 2006"

// timelineService implements app.TimelineService using the posts API.
type timelineService struct {
	client      *Client
	currentUser string // Marks the user's own posts.
}

// NewTimelineService creates a TimelineService. Pass currentUser to mark the
// user's own posts.
func NewTimelineService(client *Client, currentUser string) *timelineService {
	return &timelineService{
		client:      client,
		currentUser: currentUser,
	}
}

// apiPost is the subset of the API's post entity we care about.
type apiPost struct {
	ID      postID      `json:"id"`
	Title   string      `json:"title"`
	Body    string      `json:"body"`
	Media   string      `json:"media"`
	Created string      `json:"created"`
	Owner   string      `json:"owner"`
	Author  *apiAuthor  `json:"author"`
	Count   struct {
		Comments  int `json:"comments"`
		Reactions int `json:"reactions"`
	} `json:"_count"`
}

// postID accepts an id sent either as a JSON number or a JSON string.
type postID string

func (id *postID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = postID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("post id: %w", err)
	}
	*id = postID(n.String())
	return nil
}

type apiAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (s *timelineService) FetchPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	path := fmt.Sprintf("/social/posts?_author=true&sort=created&sortOrder=desc&limit=%d", limit)
	return s.fetch(ctx, path)
}

func (s *timelineService) FetchByAuthor(ctx context.Context, author string, limit int) ([]domain.Post, error) {
	path := fmt.Sprintf("/social/profiles/%s/posts?_author=true&sort=created&sortOrder=desc&limit=%d", url.PathEscape(author), limit)
	return s.fetch(ctx, path)
}

func (s *timelineService) fetch(ctx context.Context, path string) ([]domain.Post, error) {
	data, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}

	var posts []apiPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing posts: %w", err)
	}
	return mapPosts(posts, s.currentUser), nil
}

func mapPosts(posts []apiPost, currentUser string) []domain.Post {
	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, mapPost(p, currentUser))
	}
	return out
}

func mapPost(p apiPost, currentUser string) domain.Post {
	author, avatar := p.Owner, ""
	if p.Author != nil {
		if p.Author.Name != "" {
			author = p.Author.Name
		}
		avatar = p.Author.Avatar
	}
	return domain.Post{
		ID:           domain.PostID(p.ID),
		Author:       author,
		AvatarURL:    avatar,
		MediaURL:     p.Media,
		DateCreated:  formatDate(p.Created),
		Title:        p.Title,
		Body:         p.Body,
		CommentCount: p.Count.Comments,
		LikeCount:    p.Count.Reactions,
		IsOwn:        currentUser != "" && strings.EqualFold(author, currentUser),
	}
}

func formatDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format(DateLayout)
}
