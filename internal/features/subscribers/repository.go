package subscribers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("subscribers")}
}

func (r *Repository) Create(ctx context.Context, subscriber *Subscriber) error {
	subscriber.SubscribedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, subscriber)
	if err != nil {
		return err
	}

	subscriber.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) List(ctx context.Context) ([]Subscriber, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subscribers []Subscriber
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, err
	}
	if subscribers == nil {
		subscribers = []Subscriber{}
	}
	return subscribers, nil
}
