package trainers

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
	collection := db.Collection("trainers")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "yearsOfExperience", Value: -1}}},
		{Keys: bson.D{{Key: "classes", Value: 1}}},
	})

	return &Repository{collection: collection}
}

// Create inserts a fresh pending application. Re-application after a
// demotion or rejection is a new insertion, not a state change.
func (r *Repository) Create(ctx context.Context, trainer *Trainer) error {
	trainer.Status = StatusPending
	trainer.Role = RoleMember
	trainer.AppliedAt = time.Now()
	if trainer.Classes == nil {
		trainer.Classes = []string{}
	}
	if trainer.AvailableDays == nil {
		trainer.AvailableDays = []string{}
	}

	result, err := r.collection.InsertOne(ctx, trainer)
	if err != nil {
		return err
	}

	trainer.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Trainer, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}

	var trainer Trainer
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&trainer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &trainer, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Trainer, error) {
	var trainer Trainer
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&trainer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &trainer, nil
}

// SetLifecycle updates the role/status pair and, when provided, the
// class assignment. Used by the transition engine for approve, demote,
// and its compensating revert.
func (r *Repository) SetLifecycle(ctx context.Context, id, role, status string, classes []string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrBadRequest
	}

	set := bson.M{"role": role, "status": status}
	if classes != nil {
		set["classes"] = classes
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Reject marks an existing application rejected with feedback. The
// update is deliberately not an upsert: a missing id is NotFound, it
// never creates an orphaned record. Role is left untouched.
func (r *Repository) Reject(ctx context.Context, id, feedback string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrBadRequest
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": StatusRejected, "feedback": feedback}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateSlots replaces availability keyed by the trainer's own email.
func (r *Repository) UpdateSlots(ctx context.Context, email string, days []string, slots int, classes []string) error {
	set := bson.M{
		"availableDays":  days,
		"slotsAvailable": slots,
	}
	if classes != nil {
		set["classes"] = classes
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context, skip, limit int64) ([]Trainer, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trainers []Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	if trainers == nil {
		trainers = []Trainer{}
	}
	return trainers, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *Repository) CountApplications(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": StatusPending})
}

// Featured returns the most experienced approved trainers.
func (r *Repository) Featured(ctx context.Context, limit int64) ([]Trainer, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "yearsOfExperience", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"status": StatusApproved}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trainers []Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	if trainers == nil {
		trainers = []Trainer{}
	}
	return trainers, nil
}

// Applications returns pending applications for admin review.
func (r *Repository) Applications(ctx context.Context, skip, limit int64) ([]Trainer, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "appliedAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"status": StatusPending}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []Trainer
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []Trainer{}
	}
	return apps, nil
}

// ForClass returns trainers whose class assignment contains the given
// class name, projected down to the card fields the frontend shows.
func (r *Repository) ForClass(ctx context.Context, className string, limit int64) ([]Trainer, error) {
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"fullName": 1, "profileImage": 1, "email": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"classes": className}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trainers []Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	if trainers == nil {
		trainers = []Trainer{}
	}
	return trainers, nil
}
