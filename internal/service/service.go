package service

import (
	"context"
	"time"

	"goblog/internal/models"
	"goblog/internal/repository"
)

// Identity is the authenticated actor carried by a session token.
type Identity struct {
	UserID  int
	Name    string
	IsAdmin bool
}

type Authorization interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (Identity, error)
}

// PostInput carries the writable fields of a post.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImageURL string
}

// Blog exposes post listing and the admin-gated mutations.
type Blog interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int) (*models.Post, error)
	Create(ctx context.Context, authorID int, in PostInput) (int, error)
	Edit(ctx context.Context, id int, in PostInput) error
	Delete(ctx context.Context, id int) error
}

// Comments exposes the per-post comment thread.
type Comments interface {
	ListForPost(ctx context.Context, postID int) ([]models.Comment, error)
	Add(ctx context.Context, postID, authorID int, text string) (int, error)
}

// AuthConfig holds session token parameters supplied by the configuration.
type AuthConfig struct {
	SigningKey []byte
	TokenTTL   time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Blog
	Comments
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, authCfg),
		Blog:          NewBlogService(repos.Posts, repos.Comments),
		Comments:      NewCommentService(repos.Comments),
	}
}
