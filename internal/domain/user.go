package domain

import "time"

// User represents a registered account. PasswordHash never leaves the
// repository/service layers; the HTTP layer projects users without it.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
