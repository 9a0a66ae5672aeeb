package models

import "time"

// TargetKind identifies which collection a report points into.
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
	TargetReply   TargetKind = "reply"
)

// Valid reports whether t names a reportable entity kind.
func (t TargetKind) Valid() bool {
	return t == TargetPost || t == TargetComment || t == TargetReply
}

// ReportStatus tracks a report through the moderation workflow.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
)

// Valid reports whether s is a known report status.
func (s ReportStatus) Valid() bool {
	return s == ReportPending || s == ReportReviewed || s == ReportResolved
}

// ReportEntry is one user's complaint about a target.
type ReportEntry struct {
	Reason    string    `json:"reason" bson:"reason"`
	Reporter  Actor     `json:"reporter" bson:"reporter"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Report groups every complaint filed against one target under a single
// document. A reporter contributes at most one entry per target.
type Report struct {
	ID         string        `json:"id" bson:"id"`
	TargetKind TargetKind    `json:"target_kind" bson:"target_kind"`
	TargetID   string        `json:"target_id" bson:"target_id"`
	Entries    []ReportEntry `json:"entries" bson:"entries"`
	Status     ReportStatus  `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}

// FileReportRequest defines the request body for reporting a post, comment or reply
type FileReportRequest struct {
	TargetKind string `json:"target_kind" validate:"required,oneof=post comment reply"`
	TargetID   string `json:"target_id" validate:"required"`
	Reason     string `json:"reason" validate:"required,max=500"`
}

// UpdateReportStatusRequest defines the request body for marking a report reviewed or resolved
type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=reviewed resolved"`
}
