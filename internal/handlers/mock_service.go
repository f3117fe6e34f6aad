package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"goblog/internal/models"
	"goblog/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	parseIdent    service.Identity
	parseErr      error

	registerCalls int
	loginCalls    int

	lastRegisterName     string
	lastRegisterEmail    string
	lastRegisterPassword string
	lastLoginEmail       string
	lastLoginPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, name, email, password string) (string, error) {
	m.registerCalls++
	m.lastRegisterName = name
	m.lastRegisterEmail = email
	m.lastRegisterPassword = password
	return m.registerToken, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	m.loginCalls++
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdent, m.parseErr
}

type mockBlog struct {
	listResp  []models.Post
	listErr   error
	getResp   *models.Post
	getErr    error
	createID  int
	createErr error
	editErr   error
	deleteErr error

	createCalls      int
	lastCreateAuthor int
	lastCreateInput  service.PostInput
	editCalls        int
	lastEditID       int
	lastEditInput    service.PostInput
	deleteCalls      []int
}

func (m *mockBlog) List(ctx context.Context) ([]models.Post, error) {
	return m.listResp, m.listErr
}

func (m *mockBlog) Get(ctx context.Context, id int) (*models.Post, error) {
	return m.getResp, m.getErr
}

func (m *mockBlog) Create(ctx context.Context, authorID int, in service.PostInput) (int, error) {
	m.createCalls++
	m.lastCreateAuthor = authorID
	m.lastCreateInput = in
	return m.createID, m.createErr
}

func (m *mockBlog) Edit(ctx context.Context, id int, in service.PostInput) error {
	m.editCalls++
	m.lastEditID = id
	m.lastEditInput = in
	return m.editErr
}

func (m *mockBlog) Delete(ctx context.Context, id int) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.deleteErr
}

type mockComments struct {
	listResp []models.Comment
	listErr  error
	addID    int
	addErr   error

	addCalls []struct {
		postID   int
		authorID int
		text     string
	}
}

func (m *mockComments) ListForPost(ctx context.Context, postID int) ([]models.Comment, error) {
	return m.listResp, m.listErr
}

func (m *mockComments) Add(ctx context.Context, postID, authorID int, text string) (int, error) {
	m.addCalls = append(m.addCalls, struct {
		postID   int
		authorID int
		text     string
	}{postID, authorID, text})
	return m.addID, m.addErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

// formRequest builds an urlencoded form POST.
func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: token}
}

// responseCookie returns the named cookie set on the response, if any.
func responseCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
