package models

import "time"

// Reply represents a reply to a comment, stored in MongoDB. CommentID is
// the authoritative link back to the owning comment.
type Reply struct {
	ID        string    `json:"id" bson:"id"`
	CommentID string    `json:"comment_id" bson:"comment_id"`
	Author    Actor     `json:"author" bson:"author"`
	Text      string    `json:"text" bson:"text"`
	Likes     []Actor   `json:"likes" bson:"likes"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CreateReplyRequest defines the request body for creating a new reply
type CreateReplyRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// UpdateReplyRequest defines the request body for updating an existing reply
type UpdateReplyRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}
