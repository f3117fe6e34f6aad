package service

import (
	"context"
	"errors"
	"testing"

	"goblog/internal/models"
)

func TestCommentService_Add(t *testing.T) {
	comments := &mockCommentsRepo{
		CreateFn: func(c models.Comment) (int, error) { return 21, nil },
	}
	svc := NewCommentService(comments)

	id, err := svc.Add(context.Background(), 4, 2, "nice post")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if id != 21 {
		t.Fatalf("expected id 21, got %d", id)
	}

	if len(comments.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(comments.createCalls))
	}
	created := comments.createCalls[0]
	if created.PostID != 4 || created.AuthorID != 2 || created.Text != "nice post" {
		t.Fatalf("unexpected comment: %+v", created)
	}
}

func TestCommentService_Add_EmptyText(t *testing.T) {
	comments := &mockCommentsRepo{
		CreateFn: func(c models.Comment) (int, error) {
			t.Fatal("Create should not be called for empty text")
			return 0, nil
		},
	}
	svc := NewCommentService(comments)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Add(context.Background(), 4, 2, text); !errors.Is(err, ErrEmptyComment) {
			t.Fatalf("text %q: expected ErrEmptyComment, got: %v", text, err)
		}
	}
	if len(comments.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(comments.createCalls))
	}
}

func TestCommentService_ListForPost(t *testing.T) {
	want := []models.Comment{{ID: 1, PostID: 4, Text: "first"}}
	comments := &mockCommentsRepo{
		ListByPostFn: func(postID int) ([]models.Comment, error) {
			if postID != 4 {
				t.Fatalf("expected post id 4, got %d", postID)
			}
			return want, nil
		},
	}
	svc := NewCommentService(comments)

	got, err := svc.ListForPost(context.Background(), 4)
	if err != nil {
		t.Fatalf("ListForPost returned error: %v", err)
	}
	if len(got) != 1 || got[0].Text != "first" {
		t.Fatalf("unexpected comments: %+v", got)
	}
}
