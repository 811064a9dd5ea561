package http

import (
	"strings"
	"time"

	"blog-api/internal/domain"
)

const (
	msgFieldRequired = "This field is required."
	msgFieldBlank    = "This field may not be blank."
	msgUsernameTaken = "A user with that username already exists."
)

// fieldErrors collects validation failures keyed by input field.
type fieldErrors map[string][]string

func (e fieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

func (e fieldErrors) empty() bool {
	return len(e) == 0
}

// Request types declare the exact input field set per operation. Fields the
// clients must never set (ids, authors, parent references, timestamps) simply
// do not exist here. Pointers distinguish absent from blank.

type registerRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r registerRequest) validate() fieldErrors {
	errs := fieldErrors{}
	requireField(errs, "username", r.Username)
	requireField(errs, "password", r.Password)
	return errs
}

type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r loginRequest) validate() fieldErrors {
	errs := fieldErrors{}
	requireField(errs, "username", r.Username)
	requireField(errs, "password", r.Password)
	return errs
}

type postCreateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r postCreateRequest) validate() fieldErrors {
	errs := fieldErrors{}
	requireField(errs, "title", r.Title)
	requireField(errs, "content", r.Content)
	return errs
}

// postUpdateRequest accepts any subset of the mutable fields; an absent field
// is left unchanged, a present one may not be blank.
type postUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r postUpdateRequest) validate() fieldErrors {
	errs := fieldErrors{}
	optionalField(errs, "title", r.Title)
	optionalField(errs, "content", r.Content)
	return errs
}

type commentCreateRequest struct {
	Content *string `json:"content"`
}

func (r commentCreateRequest) validate() fieldErrors {
	errs := fieldErrors{}
	requireField(errs, "content", r.Content)
	return errs
}

func requireField(errs fieldErrors, name string, value *string) {
	switch {
	case value == nil:
		errs.add(name, msgFieldRequired)
	case strings.TrimSpace(*value) == "":
		errs.add(name, msgFieldBlank)
	}
}

func optionalField(errs fieldErrors, name string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		errs.add(name, msgFieldBlank)
	}
}

// Response types define the output projection per resource. The password is
// write-only: no response type carries it.

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PostResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CommentResponse struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	PostID    int64  `json:"post_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func postToResponse(post domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Author:    post.AuthorName,
		Content:   post.Content,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		UpdatedAt: post.UpdatedAt.Format(time.RFC3339),
	}
}

func commentToResponse(comment domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Author:    comment.AuthorName,
		Content:   comment.Content,
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.Format(time.RFC3339),
	}
}
