package pricing

import "go.mongodb.org/mongo-driver/bson/primitive"

// Plan is a membership tier shown on the pricing page. Plans are
// seeded directly into the collection and served read-only.
type Plan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       int64              `bson:"price" json:"price"` // cents per billing period
	Period      string             `bson:"period" json:"period"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Features    []string           `bson:"features,omitempty" json:"features,omitempty"`
	Popular     bool               `bson:"popular,omitempty" json:"popular,omitempty"`
}
