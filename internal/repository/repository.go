package repository

import (
	"context"
	"database/sql"

	"goblog/internal/models"
	repodb "goblog/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, name, email, passwordHash string, isAdmin bool) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

type Posts interface {
	Create(ctx context.Context, p models.Post) (int, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	GetByTitle(ctx context.Context, title string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, p models.Post) error
	Delete(ctx context.Context, id int) error
}

type Comments interface {
	Create(ctx context.Context, c models.Comment) (int, error)
	ListByPost(ctx context.Context, postID int) ([]models.Comment, error)
	DeleteByPost(ctx context.Context, postID int) error
}

type Repository struct {
	Users    Users
	Posts    Posts
	Comments Comments
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
	}
}

// InitDB opens the SQLite database and applies the idempotent schema.
func InitDB(path string) (*sql.DB, error) {
	return repodb.InitDB(path)
}
