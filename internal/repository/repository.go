package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lukhatek/Fsociety/internal/models"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

type UserRepo interface {
	Create(ctx context.Context, u models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// ExistsByUsernameOrEmail runs one combined existence query.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type PostRepo interface {
	Create(ctx context.Context, p models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// ListNewest returns up to limit posts ordered by created_at DESC.
	ListNewest(ctx context.Context, limit int) ([]models.Post, error)
}

type CommentRepo interface {
	Create(ctx context.Context, c models.Comment) error
	// ListByPost returns up to limit comments of a post ordered by created_at ASC.
	ListByPost(ctx context.Context, postID string, limit int) ([]models.Comment, error)
}

type Repository struct {
	Users    UserRepo
	Posts    PostRepo
	Comments CommentRepo
}

// NewRepository builds the SQLite-backed repositories.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(db),
		Posts:    NewPostSQLite(db),
		Comments: NewCommentSQLite(db),
	}
}
