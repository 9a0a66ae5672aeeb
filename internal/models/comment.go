package models

import "time"

// Comment represents a comment on a post, stored in MongoDB. PostID is the
// authoritative link back to the owning post; the post's comment id cache
// is only a hint.
type Comment struct {
	ID        string    `json:"id" bson:"id"`
	PostID    string    `json:"post_id" bson:"post_id"`
	Author    Actor     `json:"author" bson:"author"`
	Text      string    `json:"text" bson:"text"`
	Likes     []Actor   `json:"likes" bson:"likes"`
	Replies   []string  `json:"replies" bson:"replies"` // cached reply ids, not authoritative
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}
