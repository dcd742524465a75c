package domain

// AppName is shown in the title bar and the HTML page title.
const AppName = "PostCards"

// DisplayAppTitle returns the title used in headers.
func DisplayAppTitle() string {
	return "📮 " + AppName
}

// PostID identifies a post. Numeric ids from the API are carried as their decimal text.
type PostID string

// String returns the id as text.
func (id PostID) String() string { return string(id) }

// Post is a single user-authored entry as it is shown on a card.
// Every field is presentation-ready; nothing here is validated or reformatted.
type Post struct {
	ID           PostID
	Author       string
	AvatarURL    string
	MediaURL     string
	DateCreated  string // Already formatted for display
	Title        string
	Body         string
	CommentCount int
	LikeCount    int
	IsOwn        bool // True if the authenticated user wrote this post
}

// Draft carries the editable fields of a post.
type Draft struct {
	Title    string
	Body     string
	MediaURL string
}

// DraftOf returns the editable fields of p.
func DraftOf(p Post) Draft {
	return Draft{Title: p.Title, Body: p.Body, MediaURL: p.MediaURL}
}
