package domain

import "errors"

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyPost indicates a draft without a title.
	ErrEmptyPost = errors.New("post title cannot be empty")

	// ErrPostNotFound indicates the backend has no post with the given id.
	ErrPostNotFound = errors.New("post not found")

	// ErrDuplicatePostID indicates two posts on one page share an id.
	ErrDuplicatePostID = errors.New("duplicate post id on page")

	// ErrControlNotFound indicates no action control matches the request.
	ErrControlNotFound = errors.New("no such control")
)
