package service

import (
	"context"
	"errors"

	"blog-api/internal/authz"
	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

// CommentService coordinates comment operations. Comments attach to an
// existing post at creation; there is no update operation.
type CommentService interface {
	List(ctx context.Context) ([]domain.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	Create(ctx context.Context, requester authz.Identity, postID int64, content string) (*domain.Comment, error)
	Delete(ctx context.Context, requester authz.Identity, id int64) (*domain.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

func (s *commentService) List(ctx context.Context) ([]domain.Comment, error) {
	return s.comments.List(ctx)
}

// ListByPost reports zero comments as ErrNotFound; whether the post itself
// exists is not surfaced.
func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrNotFound
	}
	return comments, nil
}

// Create attaches a comment to the given post, failing with ErrNotFound when
// the post does not exist. The author is always the requester.
func (s *commentService) Create(ctx context.Context, requester authz.Identity, postID int64, content string) (*domain.Comment, error) {
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &domain.Comment{
		Content:    content,
		AuthorID:   requester.ID,
		AuthorName: requester.Username,
		PostID:     post.ID,
	}
	if _, err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete applies the same authorization rule as post deletion against the
// comment's author.
func (s *commentService) Delete(ctx context.Context, requester authz.Identity, id int64) (*domain.Comment, error) {
	comment, err := s.comments.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !authz.CanDelete(requester, comment.AuthorID) {
		return nil, ErrNotAuthorized
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}
