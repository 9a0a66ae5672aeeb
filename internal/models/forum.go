package models

import "time"

// JobForum is a discussion space attached to a single job posting. At most
// one forum exists per job. Posts lists the post ids the forum owns for
// cascade purposes; like every cache list it is advisory.
type JobForum struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	JobID     string    `json:"job_id" bson:"job_id"`
	Members   []Actor   `json:"members" bson:"members"`
	Posts     []string  `json:"posts" bson:"posts"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CreateForumRequest defines the request body for creating a job forum
type CreateForumRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	JobID string `json:"job_id" validate:"required"`
}
