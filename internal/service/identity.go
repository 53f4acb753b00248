package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lukhatek/Fsociety/internal/models"
	"github.com/lukhatek/Fsociety/internal/repository"

	"github.com/google/uuid"
)

// IdentityConfig is injected at startup. An empty BootstrapAdmin makes nobody an admin.
type IdentityConfig struct {
	BootstrapAdmin string
	DefaultAvatar  string
}

// IdentityService is the user directory: registration, login checks and lookups.
type IdentityService struct {
	users  repository.UserRepo
	hasher PasswordHasher
	cfg    IdentityConfig
	now    func() time.Time

	// compared against when the username is unknown
	dummyHash string
}

func NewIdentityService(users repository.UserRepo, hasher PasswordHasher, cfg IdentityConfig) *IdentityService {
	if cfg.DefaultAvatar == "" {
		cfg.DefaultAvatar = models.DefaultAvatar
	}
	dummy, _ := hasher.Hash(uuid.NewString())
	return &IdentityService{users: users, hasher: hasher, cfg: cfg, now: time.Now, dummyHash: dummy}
}

// Register creates a user unless the username or the email is already taken.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (models.UserView, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return models.UserView{}, err
	}
	if exists {
		return models.UserView{}, ErrDuplicateIdentity
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.UserView{}, err
	}

	u := models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Avatar:       s.cfg.DefaultAvatar,
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
		IsAdmin:      s.cfg.BootstrapAdmin != "" && in.Username == s.cfg.BootstrapAdmin,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return models.UserView{}, ErrDuplicateIdentity
		}
		return models.UserView{}, fmt.Errorf("register %q: %w", in.Username, err)
	}
	return u.View(), nil
}

// Authenticate checks a username/password pair. Unknown users and wrong
// passwords both yield ErrInvalidCredentials after a bcrypt comparison.
func (s *IdentityService) Authenticate(ctx context.Context, username, password string) (models.UserView, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.UserView{}, err
	}
	if u == nil {
		s.hasher.Verify(password, s.dummyHash)
		return models.UserView{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return models.UserView{}, ErrInvalidCredentials
	}
	return u.View(), nil
}

// FindByUsername returns nil when no such user exists.
func (s *IdentityService) FindByUsername(ctx context.Context, username string) (*models.UserView, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || u == nil {
		return nil, err
	}
	v := u.View()
	return &v, nil
}
