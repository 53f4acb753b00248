package service

import (
	"context"
	"time"

	"github.com/lukhatek/Fsociety/internal/models"
	"github.com/lukhatek/Fsociety/internal/repository"

	"github.com/google/uuid"
)

// MaxListResults caps every list response. It is not a pagination contract.
const MaxListResults = 1000

type ContentService struct {
	posts    repository.PostRepo
	comments repository.CommentRepo
	now      func() time.Time
}

func NewContentService(posts repository.PostRepo, comments repository.CommentRepo) *ContentService {
	return &ContentService{posts: posts, comments: comments, now: time.Now}
}

func (s *ContentService) CreatePost(ctx context.Context, author models.UserView, in PostInput) (models.Post, error) {
	now := s.now().UTC().Truncate(time.Millisecond)
	p := models.Post{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Content:        in.Content,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// ListPosts returns posts newest first.
func (s *ContentService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.ListNewest(ctx, MaxListResults)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (s *ContentService) GetPost(ctx context.Context, id string) (models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if p == nil {
		return models.Post{}, ErrNotFound
	}
	return *p, nil
}

// CreateComment attaches a comment to in.PostID.
//
// There is no referential check: the post is not looked up, so a comment may
// reference a post that does not exist.
func (s *ContentService) CreateComment(ctx context.Context, author models.UserView, in CommentInput) (models.Comment, error) {
	c := models.Comment{
		ID:             uuid.NewString(),
		PostID:         in.PostID,
		Content:        in.Content,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		CreatedAt:      s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

// ListComments returns the comments of a post oldest first.
func (s *ContentService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID, MaxListResults)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}
