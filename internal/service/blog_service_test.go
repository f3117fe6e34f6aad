package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"goblog/internal/models"
)

// mockPostsRepo is a lightweight in-test mock for repository.Posts.
type mockPostsRepo struct {
	CreateFn     func(p models.Post) (int, error)
	GetByIDFn    func(id int) (*models.Post, error)
	GetByTitleFn func(title string) (*models.Post, error)
	ListFn       func() ([]models.Post, error)
	UpdateFn     func(p models.Post) error
	DeleteFn     func(id int) error

	createCalls []models.Post
	updateCalls []models.Post
	deleteCalls []int
}

func (m *mockPostsRepo) Create(_ context.Context, p models.Post) (int, error) {
	m.createCalls = append(m.createCalls, p)
	return m.CreateFn(p)
}

func (m *mockPostsRepo) GetByID(_ context.Context, id int) (*models.Post, error) {
	return m.GetByIDFn(id)
}

func (m *mockPostsRepo) GetByTitle(_ context.Context, title string) (*models.Post, error) {
	return m.GetByTitleFn(title)
}

func (m *mockPostsRepo) List(_ context.Context) ([]models.Post, error) {
	return m.ListFn()
}

func (m *mockPostsRepo) Update(_ context.Context, p models.Post) error {
	m.updateCalls = append(m.updateCalls, p)
	return m.UpdateFn(p)
}

func (m *mockPostsRepo) Delete(_ context.Context, id int) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(id)
}

// mockCommentsRepo is a lightweight in-test mock for repository.Comments.
type mockCommentsRepo struct {
	CreateFn       func(c models.Comment) (int, error)
	ListByPostFn   func(postID int) ([]models.Comment, error)
	DeleteByPostFn func(postID int) error

	createCalls       []models.Comment
	deleteByPostCalls []int
}

func (m *mockCommentsRepo) Create(_ context.Context, c models.Comment) (int, error) {
	m.createCalls = append(m.createCalls, c)
	return m.CreateFn(c)
}

func (m *mockCommentsRepo) ListByPost(_ context.Context, postID int) ([]models.Comment, error) {
	return m.ListByPostFn(postID)
}

func (m *mockCommentsRepo) DeleteByPost(_ context.Context, postID int) error {
	m.deleteByPostCalls = append(m.deleteByPostCalls, postID)
	return m.DeleteByPostFn(postID)
}

var errNotCalled = errors.New("unexpected call")

func newBlogService(posts *mockPostsRepo, comments *mockCommentsRepo) *BlogService {
	if comments == nil {
		comments = &mockCommentsRepo{}
	}
	return NewBlogService(posts, comments)
}

// --- Get / List ---

func TestBlogService_Get_NotFound(t *testing.T) {
	posts := &mockPostsRepo{
		GetByIDFn: func(id int) (*models.Post, error) { return nil, nil },
	}
	svc := newBlogService(posts, nil)

	_, err := svc.Get(context.Background(), 42)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got: %v", err)
	}
}

func TestBlogService_List_PassesThrough(t *testing.T) {
	want := []models.Post{{ID: 1, Title: "T1"}, {ID: 2, Title: "T2"}}
	posts := &mockPostsRepo{
		ListFn: func() ([]models.Post, error) { return want, nil },
	}
	svc := newBlogService(posts, nil)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 || got[0].Title != "T1" {
		t.Fatalf("unexpected posts: %+v", got)
	}
}

// --- Create ---

func TestBlogService_Create_StampsDateAndAuthor(t *testing.T) {
	posts := &mockPostsRepo{
		GetByTitleFn: func(title string) (*models.Post, error) { return nil, nil },
		CreateFn:     func(p models.Post) (int, error) { return 11, nil },
	}
	svc := newBlogService(posts, nil)
	fixed := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	id, err := svc.Create(context.Background(), 1, PostInput{
		Title:    "T1",
		Subtitle: "S1",
		Body:     "<p>b</p>",
		ImageURL: "https://img.example/1.png",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}

	if len(posts.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(posts.createCalls))
	}
	created := posts.createCalls[0]
	if created.AuthorID != 1 {
		t.Errorf("expected author id 1, got %d", created.AuthorID)
	}
	if created.Date != "August 31, 2026" {
		t.Errorf("unexpected date stamp: %q", created.Date)
	}
}

func TestBlogService_Create_DuplicateTitle(t *testing.T) {
	posts := &mockPostsRepo{
		GetByTitleFn: func(title string) (*models.Post, error) {
			return &models.Post{ID: 5, Title: title}, nil
		},
		CreateFn: func(p models.Post) (int, error) { return 0, errNotCalled },
	}
	svc := newBlogService(posts, nil)

	_, err := svc.Create(context.Background(), 1, PostInput{Title: "T1"})
	if !errors.Is(err, ErrTitleTaken) {
		t.Fatalf("expected ErrTitleTaken, got: %v", err)
	}
	if len(posts.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(posts.createCalls))
	}
}

// --- Edit ---

func TestBlogService_Edit_PreservesAuthor(t *testing.T) {
	existing := &models.Post{
		ID: 4, AuthorID: 1, Title: "T1", Subtitle: "S1",
		Date: "August 30, 2026", Body: "old", ImageURL: "https://img.example/1.png",
	}
	posts := &mockPostsRepo{
		GetByIDFn: func(id int) (*models.Post, error) {
			p := *existing
			return &p, nil
		},
		GetByTitleFn: func(title string) (*models.Post, error) { return nil, nil },
		UpdateFn:     func(p models.Post) error { return nil },
	}
	svc := newBlogService(posts, nil)

	err := svc.Edit(context.Background(), 4, PostInput{
		Title:    "T1 revised",
		Subtitle: "S1b",
		Body:     "new",
		ImageURL: "https://img.example/1b.png",
	})
	if err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}

	if len(posts.updateCalls) != 1 {
		t.Fatalf("expected 1 Update call, got %d", len(posts.updateCalls))
	}
	updated := posts.updateCalls[0]
	if updated.AuthorID != 1 {
		t.Errorf("author must be preserved on edit, got %d", updated.AuthorID)
	}
	if updated.Date != "August 30, 2026" {
		t.Errorf("creation date must be preserved on edit, got %q", updated.Date)
	}
	if updated.Title != "T1 revised" || updated.Body != "new" {
		t.Errorf("unexpected updated fields: %+v", updated)
	}
}

func TestBlogService_Edit_SameTitleSkipsUniquenessCheck(t *testing.T) {
	posts := &mockPostsRepo{
		GetByIDFn: func(id int) (*models.Post, error) {
			return &models.Post{ID: 4, AuthorID: 1, Title: "T1"}, nil
		},
		GetByTitleFn: func(title string) (*models.Post, error) {
			t.Fatal("GetByTitle should not be called when the title is unchanged")
			return nil, nil
		},
		UpdateFn: func(p models.Post) error { return nil },
	}
	svc := newBlogService(posts, nil)

	if err := svc.Edit(context.Background(), 4, PostInput{Title: "T1", Subtitle: "s", Body: "b", ImageURL: "u"}); err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}
}

func TestBlogService_Edit_DuplicateTitle(t *testing.T) {
	posts := &mockPostsRepo{
		GetByIDFn: func(id int) (*models.Post, error) {
			return &models.Post{ID: 4, Title: "T1"}, nil
		},
		GetByTitleFn: func(title string) (*models.Post, error) {
			return &models.Post{ID: 9, Title: title}, nil
		},
		UpdateFn: func(p models.Post) error { return errNotCalled },
	}
	svc := newBlogService(posts, nil)

	err := svc.Edit(context.Background(), 4, PostInput{Title: "T9"})
	if !errors.Is(err, ErrTitleTaken) {
		t.Fatalf("expected ErrTitleTaken, got: %v", err)
	}
	if len(posts.updateCalls) != 0 {
		t.Fatalf("expected no Update calls, got %d", len(posts.updateCalls))
	}
}

func TestBlogService_Edit_NotFound(t *testing.T) {
	posts := &mockPostsRepo{
		GetByIDFn: func(id int) (*models.Post, error) { return nil, nil },
	}
	svc := newBlogService(posts, nil)

	err := svc.Edit(context.Background(), 42, PostInput{Title: "T"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got: %v", err)
	}
}

// --- Delete ---

func TestBlogService_Delete_CascadesComments(t *testing.T) {
	var order []string
	posts := &mockPostsRepo{
		GetByIDFn: func(id int) (*models.Post, error) {
			return &models.Post{ID: 4, Title: "T1"}, nil
		},
		DeleteFn: func(id int) error {
			order = append(order, "post")
			return nil
		},
	}
	comments := &mockCommentsRepo{
		DeleteByPostFn: func(postID int) error {
			order = append(order, "comments")
			return nil
		},
	}
	svc := newBlogService(posts, comments)

	if err := svc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if len(comments.deleteByPostCalls) != 1 || comments.deleteByPostCalls[0] != 4 {
		t.Fatalf("expected comments for post 4 to be deleted, got %v", comments.deleteByPostCalls)
	}
	if len(posts.deleteCalls) != 1 || posts.deleteCalls[0] != 4 {
		t.Fatalf("expected post 4 to be deleted, got %v", posts.deleteCalls)
	}
	if len(order) != 2 || order[0] != "comments" || order[1] != "post" {
		t.Fatalf("expected comments to be deleted before the post, got %v", order)
	}
}

func TestBlogService_Delete_NotFound(t *testing.T) {
	posts := &mockPostsRepo{
		GetByIDFn: func(id int) (*models.Post, error) { return nil, nil },
	}
	comments := &mockCommentsRepo{
		DeleteByPostFn: func(postID int) error { return errNotCalled },
	}
	svc := newBlogService(posts, comments)

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got: %v", err)
	}
	if len(comments.deleteByPostCalls) != 0 {
		t.Fatalf("expected no comment deletions, got %v", comments.deleteByPostCalls)
	}
}

func TestBlogService_Delete_CommentCascadeErrorStopsPostDelete(t *testing.T) {
	posts := &mockPostsRepo{
		GetByIDFn: func(id int) (*models.Post, error) {
			return &models.Post{ID: 4}, nil
		},
		DeleteFn: func(id int) error {
			t.Fatal("post must not be deleted when the comment cascade fails")
			return nil
		},
	}
	comments := &mockCommentsRepo{
		DeleteByPostFn: func(postID int) error { return errors.New("db down") },
	}
	svc := newBlogService(posts, comments)

	if err := svc.Delete(context.Background(), 4); err == nil {
		t.Fatalf("expected cascade error, got nil")
	}
}
