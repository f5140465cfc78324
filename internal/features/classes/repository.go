package classes

import (
	"context"
	"regexp"

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
	collection := db.Collection("classes")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "className", Value: 1}}},
		{Keys: bson.D{{Key: "totalBookings", Value: -1}}},
	})

	return &Repository{collection: collection}
}

// searchFilter builds a case-insensitive substring match on the class
// name. The user input is quoted so regex metacharacters in a search
// term match literally.
func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"className": primitive.Regex{
		Pattern: regexp.QuoteMeta(search),
		Options: "i",
	}}
}

func (r *Repository) List(ctx context.Context, search string, skip, limit int64) ([]Class, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, searchFilter(search), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []Class{}
	}
	return classes, nil
}

func (r *Repository) Count(ctx context.Context, search string) (int64, error) {
	return r.collection.CountDocuments(ctx, searchFilter(search))
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Class, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}

	var class Class
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

// TopByBookings runs the ranking aggregation for featured classes.
func (r *Repository) TopByBookings(ctx context.Context, limit int64) ([]Class, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "totalBookings", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []Class{}
	}
	return classes, nil
}
