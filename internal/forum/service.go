package forum

import (
	"context"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/placementcell/backend/internal/models"
	"go.uber.org/zap"
)

// PostRepository defines the store operations the service needs for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, opts ListOptions) ([]models.Post, error)
	ListByJob(ctx context.Context, jobID string, opts ListOptions) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	PushComment(ctx context.Context, postID, commentID string) error
	PullComment(ctx context.Context, postID, commentID string) error
}

// CommentRepository defines the store operations the service needs for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string, opts ListOptions) ([]models.Comment, error)
	IDsByPost(ctx context.Context, postID string) ([]string, error)
	IDsByPosts(ctx context.Context, postIDs []string) ([]string, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id string) error
	DeleteByPost(ctx context.Context, postID string) error
	DeleteByPosts(ctx context.Context, postIDs []string) error
	PushReply(ctx context.Context, commentID, replyID string) error
	PullReply(ctx context.Context, commentID, replyID string) error
}

// ReplyRepository defines the store operations the service needs for replies.
type ReplyRepository interface {
	Create(ctx context.Context, reply *models.Reply) error
	GetByID(ctx context.Context, id string) (*models.Reply, error)
	ListByComment(ctx context.Context, commentID string, opts ListOptions) ([]models.Reply, error)
	Update(ctx context.Context, reply *models.Reply) error
	Delete(ctx context.Context, id string) error
	DeleteByComments(ctx context.Context, commentIDs []string) error
}

// ReportRepository defines the store operations the service needs for reports.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id string) (*models.Report, error)
	GetByTarget(ctx context.Context, kind models.TargetKind, targetID string) (*models.Report, error)
	List(ctx context.Context, status models.ReportStatus, opts ListOptions) ([]models.Report, error)
	AddEntry(ctx context.Context, id string, entry models.ReportEntry) error
	SetStatus(ctx context.Context, id string, status models.ReportStatus) error
	Delete(ctx context.Context, id string) error
}

// ForumRepository defines the store operations the service needs for job forums.
type ForumRepository interface {
	Create(ctx context.Context, forum *models.JobForum) error
	GetByID(ctx context.Context, id string) (*models.JobForum, error)
	GetByJob(ctx context.Context, jobID string) (*models.JobForum, error)
	List(ctx context.Context, opts ListOptions) ([]models.JobForum, error)
	PushPost(ctx context.Context, jobID, postID string) error
	PullPost(ctx context.Context, jobID, postID string) error
	PushMember(ctx context.Context, id string, member models.Actor) error
	Delete(ctx context.Context, id string) error
}

// JobRegistry is the existence check the service consults when a post or
// forum references a job posting.
type JobRegistry interface {
	JobExists(ctx context.Context, jobID string) (bool, error)
}

// Service implements the forum graph: post/comment/reply CRUD, like
// toggles, cascading deletion and the report/moderation workflow. All
// cross-collection consistency lives here, not in the storage layer.
type Service struct {
	posts    PostRepository
	comments CommentRepository
	replies  ReplyRepository
	reports  ReportRepository
	forums   ForumRepository
	jobs     JobRegistry
	sanitize *bluemonday.Policy
	log      *zap.Logger
}

// NewService creates a forum Service with its collaborators injected.
func NewService(
	posts PostRepository,
	comments CommentRepository,
	replies ReplyRepository,
	reports ReportRepository,
	forums ForumRepository,
	jobs JobRegistry,
	log *zap.Logger,
) *Service {
	return &Service{
		posts:    posts,
		comments: comments,
		replies:  replies,
		reports:  reports,
		forums:   forums,
		jobs:     jobs,
		sanitize: bluemonday.UGCPolicy(),
		log:      log,
	}
}

// newID assigns the application-level identifier used in every
// cross-collection reference.
func newID() string {
	return uuid.NewString()
}
