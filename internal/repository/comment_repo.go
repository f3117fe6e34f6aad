package repository

import (
	"context"
	"database/sql"
	"fmt"

	"goblog/internal/models"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Ensure implementation of Comments interface at compile time.
var _ Comments = (*CommentRepository)(nil)

const (
	insertCommentSQL = `INSERT INTO comments (post_id, author_id, text) VALUES (?, ?, ?)`

	selectCommentsByPostSQL = `SELECT c.id, c.post_id, c.author_id, u.name, c.text
FROM comments c JOIN users u ON u.id = c.author_id WHERE c.post_id = ? ORDER BY c.id ASC`

	deleteCommentsByPostSQL = `DELETE FROM comments WHERE post_id = ?`
)

// Create inserts a new comment and returns its ID.
func (r *CommentRepository) Create(ctx context.Context, c models.Comment) (int, error) {
	res, err := r.db.ExecContext(ctx, insertCommentSQL, c.PostID, c.AuthorID, c.Text)
	if err != nil {
		return 0, fmt.Errorf("insert comment for post id=%d: %w", c.PostID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for comment: %w", err)
	}
	return int(lastID), nil
}

// ListByPost returns a post's comments with author names, oldest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, selectCommentsByPostSQL, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments for post id=%d: %w", postID, err)
	}
	defer rows.Close()

	out := make([]models.Comment, 0, 16)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.AuthorName, &c.Text); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}
	return out, nil
}

// DeleteByPost removes every comment attached to the given post.
func (r *CommentRepository) DeleteByPost(ctx context.Context, postID int) error {
	if _, err := r.db.ExecContext(ctx, deleteCommentsByPostSQL, postID); err != nil {
		return fmt.Errorf("delete comments for post id=%d: %w", postID, err)
	}
	return nil
}
