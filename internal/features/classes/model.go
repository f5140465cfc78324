package classes

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class is a bookable fitness class. TotalBookings is incremented by
// the booking flow and read here for ranking; the document is
// otherwise read-mostly.
type Class struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassName     string             `bson:"className" json:"className"`
	Description   string             `bson:"description" json:"description"`
	ImageURL      string             `bson:"imageURL" json:"imageURL"`
	TotalBookings int                `bson:"totalBookings" json:"totalBookings"`
	Duration      string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Intensity     string             `bson:"intensity,omitempty" json:"intensity,omitempty"`
}

// TrainerCard is the projected trainer info shown on class cards
type TrainerCard struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	FullName     string             `bson:"fullName" json:"fullName"`
	ProfileImage string             `bson:"profileImage" json:"profileImage"`
}

// FeaturedClass pairs a top-ranked class with up to five of the
// trainers assigned to it.
type FeaturedClass struct {
	Class
	Trainers []TrainerCard `json:"trainers"`
}
