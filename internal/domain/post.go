package domain

import "time"

// Post is a blog entry owned by the user who created it. AuthorID is set
// from the requester at creation and never changes; AuthorName is denormalized
// onto reads so responses can render the author as a username.
type Post struct {
	ID         int64
	Title      string
	Content    string
	AuthorID   int64
	AuthorName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
