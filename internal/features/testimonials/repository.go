package testimonials

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("testimonials")}
}

func (r *Repository) Create(ctx context.Context, testimonial *Testimonial) error {
	testimonial.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, testimonial)
	if err != nil {
		return err
	}

	testimonial.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) List(ctx context.Context) ([]Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var testimonials []Testimonial
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	if testimonials == nil {
		testimonials = []Testimonial{}
	}
	return testimonials, nil
}
