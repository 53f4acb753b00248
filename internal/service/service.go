package service

import (
	"context"

	"github.com/lukhatek/Fsociety/internal/models"
	"github.com/lukhatek/Fsociety/internal/repository"
)

// Identity manages user records.
type Identity interface {
	Register(ctx context.Context, in RegisterInput) (models.UserView, error)
	Authenticate(ctx context.Context, username, password string) (models.UserView, error)
	FindByUsername(ctx context.Context, username string) (*models.UserView, error)
}

// Tokens issues and verifies session tokens.
type Tokens interface {
	Issue(username string) (string, error)
	Verify(token string) (string, error)
}

// Gate resolves a bearer token to the current user.
type Gate interface {
	Resolve(ctx context.Context, bearerToken string) (models.UserView, error)
}

// Content manages posts and comments.
type Content interface {
	CreatePost(ctx context.Context, author models.UserView, in PostInput) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	CreateComment(ctx context.Context, author models.UserView, in CommentInput) (models.Comment, error)
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
}

// Service aggregates all sub-services.
type Service struct {
	Identity
	Tokens
	Gate
	Content
}

// Config holds everything the services need besides the repositories.
type Config struct {
	Token      TokenConfig
	Identity   IdentityConfig
	BcryptCost int
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	identity := NewIdentityService(repos.Users, NewBcryptHasher(cfg.BcryptCost), cfg.Identity)
	tokens := NewTokenService(cfg.Token)
	return &Service{
		Identity: identity,
		Tokens:   tokens,
		Gate:     NewGateService(tokens, identity),
		Content:  NewContentService(repos.Posts, repos.Comments),
	}
}
