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

type userDoc struct {
	ID           string    `bson:"id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Avatar       string    `bson:"avatar"`
	CreatedAt    time.Time `bson:"created_at"`
	IsAdmin      bool      `bson:"is_admin"`
}

func (d userDoc) model() models.User {
	return models.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Avatar:       d.Avatar,
		CreatedAt:    d.CreatedAt.UTC(),
		IsAdmin:      d.IsAdmin,
	}
}

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(usersCollection)}
}

var _ repository.UserRepo = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, u models.User) error {
	_, err := r.coll.InsertOne(ctx, userDoc{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Avatar:       u.Avatar,
		CreatedAt:    u.CreatedAt.UTC(),
		IsAdmin:      u.IsAdmin,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert user %q: %w", u.Username, repository.ErrDuplicate)
		}
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByUsername returns (nil, nil) if no document matches.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var d userDoc
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	u := d.model()
	return &u, nil
}

func (r *UserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := r.coll.FindOne(ctx, filter, opts).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	default:
		return false, fmt.Errorf("check user %q exists: %w", username, err)
	}
}
