package forum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/placementcell/backend/internal/models"
	"go.uber.org/zap"
)

// CreateReply persists a reply under an existing comment and appends its
// id to the comment's cache list.
func (s *Service) CreateReply(ctx context.Context, actor models.Actor, commentID, text string) (*models.Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("reply text is required: %w", ErrValidation)
	}
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return nil, err
	}

	now := time.Now()
	reply := &models.Reply{
		ID:        newID(),
		CommentID: commentID,
		Author:    actor,
		Text:      s.sanitize.Sanitize(text),
		Likes:     []models.Actor{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("forum: failed creating reply: %w", err)
	}

	if err := s.comments.PushReply(ctx, commentID, reply.ID); err != nil {
		s.log.Warn("failed to add reply to comment cache list",
			zap.String("reply_id", reply.ID), zap.String("comment_id", commentID), zap.Error(err))
	}
	return reply, nil
}

// GetReply returns a single reply by id.
func (s *Service) GetReply(ctx context.Context, id string) (*models.Reply, error) {
	return s.replies.GetByID(ctx, id)
}

// UpdateReply applies an author-only edit to a reply's text.
func (s *Service) UpdateReply(ctx context.Context, actor models.Actor, id, text string) (*models.Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("reply text is required: %w", ErrValidation)
	}
	reply, err := s.replies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canEdit(reply.Author, actor); err != nil {
		return nil, err
	}

	reply.Text = s.sanitize.Sanitize(text)
	reply.UpdatedAt = time.Now()
	if err := s.replies.Update(ctx, reply); err != nil {
		return nil, fmt.Errorf("forum: failed updating reply: %w", err)
	}
	return reply, nil
}

// DeleteReply removes a reply. The actor must be the reply's author or staff.
func (s *Service) DeleteReply(ctx context.Context, actor models.Actor, id string) error {
	reply, err := s.replies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canDelete(reply.Author, actor); err != nil {
		return err
	}
	return s.cascadeReply(ctx, reply)
}
