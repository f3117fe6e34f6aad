package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"goblog/internal/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Ensure implementation of Posts interface at compile time.
var _ Posts = (*PostRepository)(nil)

const (
	insertPostSQL = `INSERT INTO blog_posts (author_id, title, subtitle, date, body, img_url) VALUES (?, ?, ?, ?, ?, ?)`

	selectPostByIDSQL = `SELECT p.id, p.author_id, u.name, p.title, p.subtitle, p.date, p.body, p.img_url
FROM blog_posts p JOIN users u ON u.id = p.author_id WHERE p.id = ?`

	selectPostByTitleSQL = `SELECT p.id, p.author_id, u.name, p.title, p.subtitle, p.date, p.body, p.img_url
FROM blog_posts p JOIN users u ON u.id = p.author_id WHERE p.title = ?`

	listPostsSQL = `SELECT p.id, p.author_id, u.name, p.title, p.subtitle, p.date, p.body, p.img_url
FROM blog_posts p JOIN users u ON u.id = p.author_id ORDER BY p.id ASC`

	// author_id is deliberately not part of the update set; edits never
	// reassign a post to the editing user.
	updatePostSQL = `UPDATE blog_posts SET title = ?, subtitle = ?, body = ?, img_url = ? WHERE id = ?`

	deletePostSQL = `DELETE FROM blog_posts WHERE id = ?`
)

// Create inserts a new post and returns its ID.
func (r *PostRepository) Create(ctx context.Context, p models.Post) (int, error) {
	res, err := r.db.ExecContext(ctx, insertPostSQL,
		p.AuthorID, p.Title, p.Subtitle, p.Date, p.Body, p.ImageURL)
	if err != nil {
		return 0, fmt.Errorf("insert post %q: %w", p.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post %q: %w", p.Title, err)
	}
	return int(lastID), nil
}

// GetByID fetches a post with its author name. Returns (nil, nil) if not found.
func (r *PostRepository) GetByID(ctx context.Context, id int) (*models.Post, error) {
	p, err := r.scanOne(r.db.QueryRowContext(ctx, selectPostByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select post id=%d: %w", id, err)
	}
	return p, nil
}

// GetByTitle fetches a post by its unique title. Returns (nil, nil) if not found.
func (r *PostRepository) GetByTitle(ctx context.Context, title string) (*models.Post, error) {
	p, err := r.scanOne(r.db.QueryRowContext(ctx, selectPostByTitleSQL, title))
	if err != nil {
		return nil, fmt.Errorf("select post %q: %w", title, err)
	}
	return p, nil
}

// List returns all posts in insertion order.
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, 16)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return out, nil
}

// Update overwrites the editable fields of a post.
func (r *PostRepository) Update(ctx context.Context, p models.Post) error {
	if _, err := r.db.ExecContext(ctx, updatePostSQL,
		p.Title, p.Subtitle, p.Body, p.ImageURL, p.ID); err != nil {
		return fmt.Errorf("update post id=%d: %w", p.ID, err)
	}
	return nil
}

// Delete removes a post. Its comments are removed separately beforehand.
func (r *PostRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deletePostSQL, id); err != nil {
		return fmt.Errorf("delete post id=%d: %w", id, err)
	}
	return nil
}

func (r *PostRepository) scanOne(row *sql.Row) (*models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
