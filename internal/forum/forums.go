package forum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/placementcell/backend/internal/models"
)

// CreateForum opens a discussion forum for a job posting. Staff only; at
// most one forum may exist per job.
func (s *Service) CreateForum(ctx context.Context, actor models.Actor, req models.CreateForumRequest) (*models.JobForum, error) {
	if !actor.IsStaff() {
		return nil, fmt.Errorf("only staff may create forums: %w", ErrForbidden)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("forum title is required: %w", ErrValidation)
	}

	ok, err := s.jobs.JobExists(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("forum: job lookup failed: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("job %s does not exist: %w", req.JobID, ErrNotFound)
	}

	if _, err := s.forums.GetByJob(ctx, req.JobID); err == nil {
		return nil, fmt.Errorf("job %s already has a forum: %w", req.JobID, ErrConflict)
	} else if !isGone(err) {
		return nil, fmt.Errorf("forum: failed looking up forum: %w", err)
	}

	now := time.Now()
	f := &models.JobForum{
		ID:        newID(),
		Title:     strings.TrimSpace(req.Title),
		JobID:     req.JobID,
		Members:   []models.Actor{actor},
		Posts:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.forums.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("forum: failed creating forum: %w", err)
	}
	return f, nil
}

// GetForum returns a single job forum by id.
func (s *Service) GetForum(ctx context.Context, id string) (*models.JobForum, error) {
	return s.forums.GetByID(ctx, id)
}

// ListForums returns a page of job forums.
func (s *Service) ListForums(ctx context.Context, opts ListOptions) ([]models.JobForum, error) {
	return s.forums.List(ctx, opts)
}

// JoinForum adds the actor to the forum's member list. Joining twice is a
// no-op.
func (s *Service) JoinForum(ctx context.Context, actor models.Actor, id string) (*models.JobForum, error) {
	f, err := s.forums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, m := range f.Members {
		if m.ID == actor.ID {
			return f, nil
		}
	}
	if err := s.forums.PushMember(ctx, f.ID, actor); err != nil {
		return nil, fmt.Errorf("forum: failed adding member: %w", err)
	}
	f.Members = append(f.Members, actor)
	return f, nil
}

// ListForumPosts returns a page of the forum's posts queried by their
// job_id foreign field, not the forum's post id cache.
func (s *Service) ListForumPosts(ctx context.Context, id string, opts ListOptions) ([]models.Post, error) {
	f, err := s.forums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.posts.ListByJob(ctx, f.JobID, opts)
}

// DeleteForum removes a forum and every post it owns, with all their
// comments and replies. Staff only; per-post authorship is not consulted.
func (s *Service) DeleteForum(ctx context.Context, actor models.Actor, id string) error {
	if !actor.IsStaff() {
		return fmt.Errorf("only staff may delete forums: %w", ErrForbidden)
	}
	f, err := s.forums.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.cascadeForum(ctx, f)
}
