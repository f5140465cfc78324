package testimonials

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial is an append-only member review shown on the homepage
type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	PhotoURL  string             `bson:"photoURL" json:"photoURL"`
	Rating    int                `bson:"rating" json:"rating"`
	Review    string             `bson:"review" json:"review"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateTestimonialRequest is the payload for a new review
type CreateTestimonialRequest struct {
	Name     string `json:"name" binding:"required"`
	PhotoURL string `json:"photoURL"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Review   string `json:"review" binding:"required"`
}
