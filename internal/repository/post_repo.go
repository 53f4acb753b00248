package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lukhatek/Fsociety/internal/models"
)

type PostSQLite struct {
	db *sql.DB
}

func NewPostSQLite(db *sql.DB) *PostSQLite { return &PostSQLite{db: db} }

var _ PostRepo = (*PostSQLite)(nil)

const (
	insertPostSQL = `
		INSERT INTO posts (id, title, content, author_id, author_username, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectPostByIDSQL = `SELECT id, title, content, author_id, author_username, created_at, updated_at FROM posts WHERE id = ?`
	listPostsSQL      = `SELECT id, title, content, author_id, author_username, created_at, updated_at FROM posts ORDER BY created_at DESC, rowid DESC LIMIT ?`
)

func (r *PostSQLite) Create(ctx context.Context, p models.Post) error {
	_, err := r.db.ExecContext(ctx, insertPostSQL,
		p.ID,
		p.Title,
		p.Content,
		p.AuthorID,
		p.AuthorUsername,
		formatTimestamp(p.CreatedAt),
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert post %q: %w", p.ID, err)
	}
	return nil
}

// GetByID returns (nil, nil) when the post does not exist.
func (r *PostSQLite) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, selectPostByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %q: %w", id, err)
	}
	return &p, nil
}

func (r *PostSQLite) ListNewest(ctx context.Context, limit int) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPostsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, 64)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(s rowScanner) (models.Post, error) {
	var (
		p                models.Post
		created, updated string
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.AuthorUsername, &created, &updated); err != nil {
		return models.Post{}, err
	}
	var err error
	if p.CreatedAt, err = parseTimestamp(created); err != nil {
		return models.Post{}, err
	}
	if p.UpdatedAt, err = parseTimestamp(updated); err != nil {
		return models.Post{}, err
	}
	return p, nil
}
