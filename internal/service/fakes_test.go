package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}}
}

func (r *fakeUserRepo) Init(ctx context.Context) error { return nil }

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return 0, fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
	}
	r.nextID++
	user.ID = r.nextID
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone
	return user.ID, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
	}
	clone := *user
	return &clone, nil
}

type fakePostRepo struct {
	posts  map[int64]*domain.Post
	nextID int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[int64]*domain.Post{}}
}

func (r *fakePostRepo) Init(ctx context.Context) error { return nil }

func (r *fakePostRepo) Create(ctx context.Context, post *domain.Post) (int64, error) {
	r.nextID++
	post.ID = r.nextID
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	clone := *post
	r.posts[post.ID] = &clone
	return post.ID, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *domain.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return fmt.Errorf("post: %w", repository.ErrNotFound)
	}
	post.UpdatedAt = time.Now().UTC()
	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post: %w", repository.ErrNotFound)
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post: %w", repository.ErrNotFound)
	}
	clone := *post
	return &clone, nil
}

func (r *fakePostRepo) List(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	for _, post := range r.posts {
		posts = append(posts, *post)
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func (r *fakePostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	var posts []domain.Post
	for _, post := range r.posts {
		if post.AuthorID == authorID {
			posts = append(posts, *post)
		}
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func sortPostsNewestFirst(posts []domain.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

type fakeCommentRepo struct {
	comments map[int64]*domain.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[int64]*domain.Comment{}}
}

func (r *fakeCommentRepo) Init(ctx context.Context) error { return nil }

func (r *fakeCommentRepo) Create(ctx context.Context, comment *domain.Comment) (int64, error) {
	r.nextID++
	comment.ID = r.nextID
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	clone := *comment
	r.comments[comment.ID] = &clone
	return comment.ID, nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.comments[id]; !ok {
		return fmt.Errorf("comment: %w", repository.ErrNotFound)
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment: %w", repository.ErrNotFound)
	}
	clone := *comment
	return &clone, nil
}

func (r *fakeCommentRepo) List(ctx context.Context) ([]domain.Comment, error) {
	var comments []domain.Comment
	for _, comment := range r.comments {
		comments = append(comments, *comment)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID > comments[j].ID })
	return comments, nil
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID {
			comments = append(comments, *comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID > comments[j].ID })
	return comments, nil
}
