package service

import "errors"

var (
	// ErrNotFound indicates the operation's target resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUserNotFound distinguishes a missing user from a missing resource
	// where one operation can fail either way.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotAuthorized indicates an authenticated requester who is neither
	// the author nor staff nor a superuser.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when registering an existing username.
	ErrUserAlreadyExists = errors.New("user already exists")
)
