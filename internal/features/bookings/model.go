package bookings

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a member's booking of a trainer slot. It is the only
// entity the API ever hard-deletes (slot cancellation).
type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberEmail string             `bson:"memberEmail" json:"memberEmail"`
	TrainerID   string             `bson:"trainerId" json:"trainerId"`
	TrainerName string             `bson:"trainerName" json:"trainerName"`
	Slot        string             `bson:"slot" json:"slot"`
	Price       int64              `bson:"price" json:"price"` // USD cents
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreatePaymentRequest is the checkout payload
type CreatePaymentRequest struct {
	TrainerID   string `json:"trainerId" binding:"required"`
	TrainerName string `json:"trainerName" binding:"required"`
	Slot        string `json:"slot"`
	Price       int64  `json:"price" binding:"required"`
}

// PaymentIntentRequest asks the gateway for a client secret
type PaymentIntentRequest struct {
	Price int64 `json:"price" binding:"required"`
}

// PaymentIntentResponse carries the opaque client secret back
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
