package forum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/placementcell/backend/internal/models"
	"go.uber.org/zap"
)

// CreateComment persists a comment under an existing post and appends its
// id to the post's cache list.
func (s *Service) CreateComment(ctx context.Context, actor models.Actor, postID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("comment text is required: %w", ErrValidation)
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &models.Comment{
		ID:        newID(),
		PostID:    postID,
		Author:    actor,
		Text:      s.sanitize.Sanitize(text),
		Likes:     []models.Actor{},
		Replies:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("forum: failed creating comment: %w", err)
	}

	if err := s.posts.PushComment(ctx, postID, comment.ID); err != nil {
		s.log.Warn("failed to add comment to post cache list",
			zap.String("comment_id", comment.ID), zap.String("post_id", postID), zap.Error(err))
	}
	return comment, nil
}

// GetComment returns a single comment by id.
func (s *Service) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	return s.comments.GetByID(ctx, id)
}

// UpdateComment applies an author-only edit to a comment's text.
func (s *Service) UpdateComment(ctx context.Context, actor models.Actor, id, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("comment text is required: %w", ErrValidation)
	}
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canEdit(comment.Author, actor); err != nil {
		return nil, err
	}

	comment.Text = s.sanitize.Sanitize(text)
	comment.UpdatedAt = time.Now()
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("forum: failed updating comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment and all its replies. The actor must be
// the comment's author or staff; reply authorship is not consulted.
func (s *Service) DeleteComment(ctx context.Context, actor models.Actor, id string) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canDelete(comment.Author, actor); err != nil {
		return err
	}
	return s.cascadeComment(ctx, comment)
}

// ListCommentReplies returns a comment's replies queried by their
// comment_id foreign field, never by the comment's reply id cache.
func (s *Service) ListCommentReplies(ctx context.Context, commentID string, opts ListOptions) ([]models.Reply, error) {
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return nil, err
	}
	return s.replies.ListByComment(ctx, commentID, opts)
}
