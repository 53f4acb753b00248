package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lukhatek/Fsociety/internal/models"
)

type CommentSQLite struct {
	db *sql.DB
}

func NewCommentSQLite(db *sql.DB) *CommentSQLite { return &CommentSQLite{db: db} }

var _ CommentRepo = (*CommentSQLite)(nil)

const (
	insertCommentSQL = `
		INSERT INTO comments (id, post_id, content, author_id, author_username, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	listCommentsByPostSQL = `SELECT id, post_id, content, author_id, author_username, created_at FROM comments WHERE post_id = ? ORDER BY created_at ASC, rowid ASC LIMIT ?`
)

// Create stores the comment as given. post_id carries no foreign key.
func (r *CommentSQLite) Create(ctx context.Context, c models.Comment) error {
	_, err := r.db.ExecContext(ctx, insertCommentSQL,
		c.ID,
		c.PostID,
		c.Content,
		c.AuthorID,
		c.AuthorUsername,
		formatTimestamp(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert comment on post %q: %w", c.PostID, err)
	}
	return nil
}

func (r *CommentSQLite) ListByPost(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, listCommentsByPostSQL, postID, limit)
	if err != nil {
		return nil, fmt.Errorf("list comments of post %q: %w", postID, err)
	}
	defer rows.Close()

	out := make([]models.Comment, 0, 16)
	for rows.Next() {
		var (
			c       models.Comment
			created string
		)
		if err := rows.Scan(&c.ID, &c.PostID, &c.Content, &c.AuthorID, &c.AuthorUsername, &created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		if c.CreatedAt, err = parseTimestamp(created); err != nil {
			return nil, fmt.Errorf("scan comment %q: %w", c.ID, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments of post %q: %w", postID, err)
	}
	return out, nil
}
