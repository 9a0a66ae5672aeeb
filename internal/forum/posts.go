package forum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/placementcell/backend/internal/models"
	"go.uber.org/zap"
)

// CreatePostInput carries the fields of a new post after request binding.
type CreatePostInput struct {
	Title    string
	Body     string
	ImageURL string
	JobID    string
}

// CreatePost validates and persists a new post. When the post is attached
// to a job, the job must exist and the post id is appended to the job's
// forum cache list if a forum is open for that job.
func (s *Service) CreatePost(ctx context.Context, actor models.Actor, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("post title is required: %w", ErrValidation)
	}

	if in.JobID != "" {
		ok, err := s.jobs.JobExists(ctx, in.JobID)
		if err != nil {
			return nil, fmt.Errorf("forum: job lookup failed: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("job %s does not exist: %w", in.JobID, ErrNotFound)
		}
	}

	now := time.Now()
	post := &models.Post{
		ID:        newID(),
		Title:     strings.TrimSpace(in.Title),
		Body:      s.sanitize.Sanitize(in.Body),
		ImageURL:  in.ImageURL,
		Author:    actor,
		Likes:     []models.Actor{},
		Comments:  []string{},
		JobID:     in.JobID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("forum: failed creating post: %w", err)
	}

	// The forum's post list is a cache; failing to extend it is not fatal.
	if post.JobID != "" {
		if err := s.forums.PushPost(ctx, post.JobID, post.ID); err != nil {
			s.log.Warn("failed to add post to forum cache list",
				zap.String("post_id", post.ID), zap.String("job_id", post.JobID), zap.Error(err))
		}
	}

	return post, nil
}

// GetPost returns a single post by id.
func (s *Service) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// ListPosts returns a page of posts under the requested ordering.
func (s *Service) ListPosts(ctx context.Context, opts ListOptions) ([]models.Post, error) {
	return s.posts.List(ctx, opts)
}

// UpdatePost applies an author-only edit to a post's title and body.
func (s *Service) UpdatePost(ctx context.Context, actor models.Actor, id string, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canEdit(post.Author, actor); err != nil {
		return nil, err
	}

	if req.Title != "" {
		post.Title = strings.TrimSpace(req.Title)
	}
	if req.Body != "" {
		post.Body = s.sanitize.Sanitize(req.Body)
	}
	post.UpdatedAt = time.Now()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("forum: failed updating post: %w", err)
	}
	return post, nil
}

// DeletePost removes a post and everything beneath it. The actor must be
// the author or staff.
func (s *Service) DeletePost(ctx context.Context, actor models.Actor, id string) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canDelete(post.Author, actor); err != nil {
		return err
	}
	return s.cascadePost(ctx, post)
}

// ListPostComments returns a post's comments queried by their post_id
// foreign field. The post's own comment id cache is never consulted for
// reads, so a stale cache entry cannot resurface a deleted comment.
func (s *Service) ListPostComments(ctx context.Context, postID string, opts ListOptions) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID, opts)
}
