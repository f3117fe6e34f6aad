package service

import (
	"context"
	"errors"
	"time"

	"goblog/internal/models"
	"goblog/internal/repository"
)

// Domain errors for post flows.
var (
	ErrTitleTaken   = errors.New("title already in use")
	ErrPostNotFound = errors.New("post not found")
)

// postDateLayout matches the human-readable date stored on each post.
const postDateLayout = "January 2, 2006"

// BlogService implements post listing and the admin-gated mutations.
type BlogService struct {
	posts    repository.Posts
	comments repository.Comments
	now      func() time.Time
}

func NewBlogService(posts repository.Posts, comments repository.Comments) *BlogService {
	return &BlogService{posts: posts, comments: comments, now: time.Now}
}

// List returns all posts in storage order.
func (s *BlogService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

// Get returns the post or ErrPostNotFound.
func (s *BlogService) Get(ctx context.Context, id int) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Create stamps the post with the current calendar date and the given author.
// Duplicate titles are rejected up front instead of surfacing as a constraint
// violation from the store.
func (s *BlogService) Create(ctx context.Context, authorID int, in PostInput) (int, error) {
	existing, err := s.posts.GetByTitle(ctx, in.Title)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrTitleTaken
	}

	return s.posts.Create(ctx, models.Post{
		AuthorID: authorID,
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Date:     s.now().Format(postDateLayout),
		Body:     in.Body,
		ImageURL: in.ImageURL,
	})
}

// Edit overwrites the writable fields of an existing post. The original author
// and creation date are preserved.
func (s *BlogService) Edit(ctx context.Context, id int, in PostInput) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}

	if in.Title != p.Title {
		other, err := s.posts.GetByTitle(ctx, in.Title)
		if err != nil {
			return err
		}
		if other != nil {
			return ErrTitleTaken
		}
	}

	p.Title = in.Title
	p.Subtitle = in.Subtitle
	p.Body = in.Body
	p.ImageURL = in.ImageURL
	return s.posts.Update(ctx, *p)
}

// Delete removes a post and all of its comments. Comments go first so a
// failure never leaves them orphaned behind a deleted post.
func (s *BlogService) Delete(ctx context.Context, id int) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}

	if err := s.comments.DeleteByPost(ctx, id); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
