package trainers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application lifecycle states. A trainer document doubles as the
// application record: it is created pending, approved or rejected by
// an admin, and soft-demoted back to member rather than deleted.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
)

// Trainer represents a trainer application and, once approved, the
// trainer profile itself. Role mirrors the users collection after a
// completed transition.
type Trainer struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email             string             `bson:"email" json:"email"`
	FullName          string             `bson:"fullName" json:"fullName"`
	ProfileImage      string             `bson:"profileImage" json:"profileImage"`
	YearsOfExperience int                `bson:"yearsOfExperience" json:"yearsOfExperience"`
	Status            string             `bson:"status" json:"status"`
	Role              string             `bson:"role" json:"role"`
	Feedback          string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Classes           []string           `bson:"classes" json:"classes"`
	AvailableDays     []string           `bson:"availableDays" json:"availableDays"`
	SlotsAvailable    int                `bson:"slotsAvailable" json:"slotsAvailable"`
	AppliedAt         time.Time          `bson:"appliedAt" json:"appliedAt"`
}

// ApplyRequest is the payload for a member's trainer application
type ApplyRequest struct {
	FullName          string   `json:"fullName" binding:"required"`
	ProfileImage      string   `json:"profileImage"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Classes           []string `json:"classes"`
	AvailableDays     []string `json:"availableDays"`
	SlotsAvailable    int      `json:"slotsAvailable"`
}

// ApproveRequest optionally overrides the class assignment at approval
type ApproveRequest struct {
	Classes []string `json:"classes"`
}

// RejectRequest carries the feedback recorded on a rejected application
type RejectRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// UpdateSlotsRequest replaces a trainer's own availability
type UpdateSlotsRequest struct {
	AvailableDays  []string `json:"availableDays"`
	SlotsAvailable int      `json:"slotsAvailable"`
	Classes        []string `json:"classes"`
}
