package models

import "time"

type Comment struct {
	ID             string    `json:"id"`
	PostID         string    `json:"post_id"` // not checked against posts
	Content        string    `json:"content"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
}
