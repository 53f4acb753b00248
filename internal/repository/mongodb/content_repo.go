package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lukhatek/Fsociety/internal/models"
	"github.com/lukhatek/Fsociety/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postDoc struct {
	ID             string    `bson:"id"`
	Title          string    `bson:"title"`
	Content        string    `bson:"content"`
	AuthorID       string    `bson:"author_id"`
	AuthorUsername string    `bson:"author_username"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

func (d postDoc) model() models.Post {
	return models.Post{
		ID:             d.ID,
		Title:          d.Title,
		Content:        d.Content,
		AuthorID:       d.AuthorID,
		AuthorUsername: d.AuthorUsername,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}

type commentDoc struct {
	ID             string    `bson:"id"`
	PostID         string    `bson:"post_id"`
	Content        string    `bson:"content"`
	AuthorID       string    `bson:"author_id"`
	AuthorUsername string    `bson:"author_username"`
	CreatedAt      time.Time `bson:"created_at"`
}

func (d commentDoc) model() models.Comment {
	return models.Comment{
		ID:             d.ID,
		PostID:         d.PostID,
		Content:        d.Content,
		AuthorID:       d.AuthorID,
		AuthorUsername: d.AuthorUsername,
		CreatedAt:      d.CreatedAt.UTC(),
	}
}

type PostRepo struct {
	coll *mongo.Collection
}

func NewPostRepo(db *mongo.Database) *PostRepo {
	return &PostRepo{coll: db.Collection(postsCollection)}
}

var _ repository.PostRepo = (*PostRepo)(nil)

func (r *PostRepo) Create(ctx context.Context, p models.Post) error {
	_, err := r.coll.InsertOne(ctx, postDoc{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		AuthorID:       p.AuthorID,
		AuthorUsername: p.AuthorUsername,
		CreatedAt:      p.CreatedAt.UTC(),
		UpdatedAt:      p.UpdatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert post %q: %w", p.ID, err)
	}
	return nil
}

func (r *PostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var d postDoc
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find post %q: %w", id, err)
	}
	p := d.model()
	return &p, nil
}

func (r *PostRepo) ListNewest(ctx context.Context, limit int) ([]models.Post, error) {
	opts := options.Find().
		SetSort(postsNewestFirst).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	out := make([]models.Post, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

// BSON dates keep milliseconds only, so equal created_at values are common.
// _id breaks those ties.
var (
	postsNewestFirst    = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	commentsOldestFirst = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
)

type CommentRepo struct {
	coll *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) *CommentRepo {
	return &CommentRepo{coll: db.Collection(commentsCollection)}
}

var _ repository.CommentRepo = (*CommentRepo)(nil)

// Create does not look up the referenced post.
func (r *CommentRepo) Create(ctx context.Context, c models.Comment) error {
	_, err := r.coll.InsertOne(ctx, commentDoc{
		ID:             c.ID,
		PostID:         c.PostID,
		Content:        c.Content,
		AuthorID:       c.AuthorID,
		AuthorUsername: c.AuthorUsername,
		CreatedAt:      c.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert comment on post %q: %w", c.PostID, err)
	}
	return nil
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
	opts := options.Find().
		SetSort(commentsOldestFirst).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments of post %q: %w", postID, err)
	}
	var docs []commentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	out := make([]models.Comment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}
