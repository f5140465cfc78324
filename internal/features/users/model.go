package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a principal can hold. The role stored here is authoritative
// for access control; trainer records mirror it after a transition.
const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// User represents a registered user in the system
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	PhotoURL    string             `bson:"photoURL" json:"photoURL"`
	Role        string             `bson:"role" json:"role"`
	LastLoginAt time.Time          `bson:"lastLoginAt" json:"lastLoginAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// SignInRequest is the payload for first-party sign-in. IDToken is a
// Google ID token verified server-side when verification is configured.
type SignInRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	IDToken  string `json:"idToken"`
}

// RegisterRequest is the payload for explicit user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	PhotoURL string `json:"photoURL"`
}

// AuthResponse is returned after a successful sign-in
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
