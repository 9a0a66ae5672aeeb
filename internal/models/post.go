package models

import "time"

// Post represents a forum post stored in MongoDB. The id field is assigned
// by the application, not by MongoDB, so cross-references between documents
// never depend on the storage engine's native key.
type Post struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body,omitempty" bson:"body,omitempty"`
	ImageURL  string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Author    Actor     `json:"author" bson:"author"`
	Likes     []Actor   `json:"likes" bson:"likes"`
	Comments  []string  `json:"comments" bson:"comments"`                 // cached comment ids, not authoritative
	JobID     string    `json:"job_id,omitempty" bson:"job_id,omitempty"` // empty means general discussion
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Body     string `json:"body,omitempty" validate:"omitempty,max=5000"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
	JobID    string `json:"job_id,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Body  string `json:"body,omitempty" validate:"omitempty,max=5000"`
}
