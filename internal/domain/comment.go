package domain

import "time"

// Comment belongs to exactly one post and one author, both fixed at creation.
type Comment struct {
	ID         int64
	Content    string
	AuthorID   int64
	AuthorName string
	PostID     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
