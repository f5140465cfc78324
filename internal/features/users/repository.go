package users

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/fitquest/api/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	})

	return &Repository{collection: collection}
}

// Create inserts a new user. A duplicate email is reported as
// ErrDuplicate so callers can treat re-registration as a no-op.
func (r *Repository) Create(ctx context.Context, user *User) error {
	user.CreatedAt = time.Now()
	user.LastLoginAt = user.CreatedAt
	if user.Role == "" {
		user.Role = RoleMember
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ResolveRole is the single point lookup the access gate uses. It hits
// storage on every call; a missing user is ErrNotFound, which the gate
// treats as non-privileged.
func (r *Repository) ResolveRole(ctx context.Context, email string) (string, error) {
	var doc struct {
		Role string `bson:"role"`
	}

	opts := options.FindOne().SetProjection(bson.M{"role": 1})
	err := r.collection.FindOne(ctx, bson.M{"email": email}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", apperrors.ErrNotFound
		}
		return "", err
	}

	return doc.Role, nil
}

// SetRole updates the authoritative role for a principal. Used by the
// trainer lifecycle transitions to keep both collections in agreement.
func (r *Repository) SetRole(ctx context.Context, email, role string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *Repository) TouchLogin(ctx context.Context, email string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"lastLoginAt": time.Now()}},
	)
	return err
}

func (r *Repository) List(ctx context.Context, skip, limit int64) ([]User, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []User{}
	}
	return users, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
