package subscribers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is an append-only newsletter signup
type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	SubscribedAt time.Time          `bson:"subscribedAt" json:"subscribedAt"`
}

// SubscribeRequest is the newsletter signup payload
type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}
