package service

import (
	"context"
	"errors"

	"blog-api/internal/authz"
	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

// PostService coordinates post operations backed by repositories. The author
// of a created post is always the requesting identity; callers cannot supply
// one.
type PostService interface {
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	ListByAuthor(ctx context.Context, username string) ([]domain.Post, error)
	Create(ctx context.Context, requester authz.Identity, title, content string) (*domain.Post, error)
	Update(ctx context.Context, id int64, title, content *string) (*domain.Post, error)
	Delete(ctx context.Context, requester authz.Identity, id int64) (*domain.Post, error)
}

type postService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) PostService {
	return &postService{posts: posts, users: users}
}

func (s *postService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *postService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// ListByAuthor resolves the username first so an unknown user and a user with
// zero posts fail differently. Zero posts is reported as ErrNotFound, not an
// empty list.
func (s *postService) ListByAuthor(ctx context.Context, username string) ([]domain.Post, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	posts, err := s.posts.ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNotFound
	}
	return posts, nil
}

func (s *postService) Create(ctx context.Context, requester authz.Identity, title, content string) (*domain.Post, error) {
	post := &domain.Post{
		Title:      title,
		Content:    content,
		AuthorID:   requester.ID,
		AuthorName: requester.Username,
	}
	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies any subset of the mutable fields, leaving the rest
// unchanged. It deliberately performs no ownership check: any authenticated
// user may edit any post.
func (s *postService) Update(ctx context.Context, id int64, title, content *string) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// Delete removes the post if the requester is its author, a superuser, or
// staff, and returns the removed post so callers can name it.
func (s *postService) Delete(ctx context.Context, requester authz.Identity, id int64) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !authz.CanDelete(requester, post.AuthorID) {
		return nil, ErrNotAuthorized
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}
