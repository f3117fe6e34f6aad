package service

import (
	"context"
	"errors"
	"strings"

	"goblog/internal/models"
	"goblog/internal/repository"
)

// ErrEmptyComment rejects blank comment submissions.
var ErrEmptyComment = errors.New("comment text is empty")

// CommentService implements the per-post comment thread.
type CommentService struct {
	comments repository.Comments
}

func NewCommentService(comments repository.Comments) *CommentService {
	return &CommentService{comments: comments}
}

// ListForPost returns a post's comments, oldest first.
func (s *CommentService) ListForPost(ctx context.Context, postID int) ([]models.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// Add creates a comment owned by the given author on the given post.
func (s *CommentService) Add(ctx context.Context, postID, authorID int, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrEmptyComment
	}
	return s.comments.Create(ctx, models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	})
}
