package handlers

import (
	"context"
	"sync"

	"github.com/lukhatek/Fsociety/internal/models"
	"github.com/lukhatek/Fsociety/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockIdentity struct {
	registerUser models.UserView
	registerErr  error
	authUser     models.UserView
	authErr      error

	lastRegister     service.RegisterInput
	lastAuthUsername string
	lastAuthPassword string
}

func (m *mockIdentity) Register(_ context.Context, in service.RegisterInput) (models.UserView, error) {
	m.lastRegister = in
	return m.registerUser, m.registerErr
}
func (m *mockIdentity) Authenticate(_ context.Context, username, password string) (models.UserView, error) {
	m.lastAuthUsername = username
	m.lastAuthPassword = password
	return m.authUser, m.authErr
}
func (m *mockIdentity) FindByUsername(context.Context, string) (*models.UserView, error) {
	return nil, nil
}

type mockTokens struct {
	token      string
	issueErr   error
	lastIssued string
}

func (m *mockTokens) Issue(username string) (string, error) {
	m.lastIssued = username
	return m.token, m.issueErr
}
func (m *mockTokens) Verify(string) (string, error) {
	return "", service.ErrInvalidToken
}

// mockGate knows a fixed set of tokens.
type mockGate struct {
	users     map[string]models.UserView
	err       error
	calls     int
	lastToken string
}

func (m *mockGate) Resolve(_ context.Context, token string) (models.UserView, error) {
	m.calls++
	m.lastToken = token
	if m.err != nil {
		return models.UserView{}, m.err
	}
	u, ok := m.users[token]
	if !ok {
		return models.UserView{}, service.ErrUnauthenticated
	}
	return u, nil
}

type mockContent struct {
	mu sync.Mutex

	posts     []models.Post
	comments  []models.Comment
	listErr   error
	getErr    error
	createErr error

	created        []models.Post
	createdComment []models.Comment
	lastAuthor     models.UserView
	lastPostID     string
	listCalls      int
}

func (m *mockContent) CreatePost(_ context.Context, author models.UserView, in service.PostInput) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return models.Post{}, m.createErr
	}
	m.lastAuthor = author
	p := models.Post{ID: "p1", Title: in.Title, Content: in.Content, AuthorID: author.ID, AuthorUsername: author.Username}
	m.created = append(m.created, p)
	return p, nil
}
func (m *mockContent) ListPosts(context.Context) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.posts == nil {
		return []models.Post{}, nil
	}
	return m.posts, nil
}
func (m *mockContent) GetPost(_ context.Context, id string) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastPostID = id
	if m.getErr != nil {
		return models.Post{}, m.getErr
	}
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, service.ErrNotFound
}
func (m *mockContent) CreateComment(_ context.Context, author models.UserView, in service.CommentInput) (models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return models.Comment{}, m.createErr
	}
	m.lastAuthor = author
	c := models.Comment{ID: "c1", PostID: in.PostID, Content: in.Content, AuthorID: author.ID, AuthorUsername: author.Username}
	m.createdComment = append(m.createdComment, c)
	return c, nil
}
func (m *mockContent) ListComments(_ context.Context, postID string) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastPostID = postID
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.Comment{}
	for _, c := range m.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

var neo = models.UserView{ID: "u-neo", Username: "neo", Email: "neo@x.com"}

// newMockServices returns a Service whose gate accepts "good" as neo's token.
func newMockServices() (*service.Service, *mockIdentity, *mockTokens, *mockGate, *mockContent) {
	id := &mockIdentity{}
	tok := &mockTokens{}
	gate := &mockGate{users: map[string]models.UserView{"good": neo}}
	content := &mockContent{}
	return &service.Service{Identity: id, Tokens: tok, Gate: gate, Content: content}, id, tok, gate, content
}

// newTestRouter builds the full router for a given service.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil).InitRoutes()
}
