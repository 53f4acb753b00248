package service

import (
	"context"
	"time"

	"github.com/lukhatek/Fsociety/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.UserRepo.
type mockUserRepo struct {
	CreateFn        func(u models.User) error
	GetByUsernameFn func(username string) (*models.User, error)
	ExistsFn        func(username, email string) (bool, error)

	created  []models.User
	getCalls []string
}

func (m *mockUserRepo) Create(_ context.Context, u models.User) error {
	m.created = append(m.created, u)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	if m.ExistsFn == nil {
		return false, nil
	}
	return m.ExistsFn(username, email)
}

// memUserRepo keeps users in a map; enough for flows that register and then look up.
type memUserRepo struct {
	byName map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byName: map[string]models.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u models.User) error {
	m.byName[u.Username] = u
	return nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := m.byName[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range m.byName {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakePostRepo struct {
	posts     []models.Post
	createErr error
	listErr   error
	getErr    error
	lastLimit int
}

func (f *fakePostRepo) Create(_ context.Context, p models.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.posts = append(f.posts, p)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.posts {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

// ListNewest walks the slice backwards; posts are appended in creation order.
func (f *fakePostRepo) ListNewest(_ context.Context, limit int) ([]models.Post, error) {
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Post
	for i := len(f.posts) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.posts[i])
	}
	return out, nil
}

type fakeCommentRepo struct {
	comments  []models.Comment
	createErr error
	lastLimit int
}

func (f *fakeCommentRepo) Create(_ context.Context, c models.Comment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.comments = append(f.comments, c)
	return nil
}

func (f *fakeCommentRepo) ListByPost(_ context.Context, postID string, limit int) ([]models.Comment, error) {
	f.lastLimit = limit
	var out []models.Comment
	for _, c := range f.comments {
		if c.PostID == postID && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

// tickingClock returns a clock that advances by step on every call.
func tickingClock(start time.Time, step time.Duration) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(step)
		return t
	}
}
