package bookings

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
	collection := db.Collection("payments")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "memberEmail", Value: 1}}},
		{Keys: bson.D{{Key: "trainerId", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, payment *Payment) error {
	payment.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return err
	}

	payment.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) ListByMember(ctx context.Context, email string, skip, limit int64) ([]Payment, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"memberEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []Payment{}
	}
	return payments, nil
}

func (r *Repository) CountByMember(ctx context.Context, email string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"memberEmail": email})
}

// BookedTrainer returns the member's single active trainer booking.
// Uniqueness is a query assumption (limit 1), not a stored constraint.
func (r *Repository) BookedTrainer(ctx context.Context, email string) (*Payment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var payment Payment
	err := r.collection.FindOne(ctx, bson.M{"memberEmail": email}, opts).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// Delete removes one payment by id and reports how many documents
// went away. A missing id is a zero count, not an error.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, apperrors.ErrBadRequest
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
