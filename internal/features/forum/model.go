package forum

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a community forum post. Only the vote count ever changes
// after creation.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	AuthorRole  string             `bson:"authorRole" json:"authorRole"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	DateTime    time.Time          `bson:"dateTime" json:"dateTime"`
	UpVote      int                `bson:"upVote" json:"upVote"`
}

// CreatePostRequest is the payload for a new forum post
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=3"`
	Content string `json:"content" binding:"required"`
}
