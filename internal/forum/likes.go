package forum

import (
	"context"
	"fmt"
	"time"

	"github.com/placementcell/backend/internal/models"
)

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

// ToggleLike flips the actor's like on a post, comment or reply: present
// means remove, absent means add. Each liker is stored as a (kind, id)
// pair in one list, so the identity and its kind can never desynchronize.
// Concurrent toggles by the same actor are last-writer-wins.
func (s *Service) ToggleLike(ctx context.Context, actor models.Actor, kind models.TargetKind, targetID string) (*LikeResult, error) {
	switch kind {
	case models.TargetPost:
		post, err := s.posts.GetByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		likes, liked := toggleActor(post.Likes, actor)
		post.Likes = likes
		post.UpdatedAt = time.Now()
		if err := s.posts.Update(ctx, post); err != nil {
			return nil, fmt.Errorf("forum: failed saving post likes: %w", err)
		}
		return &LikeResult{Liked: liked, Count: len(likes)}, nil
	case models.TargetComment:
		comment, err := s.comments.GetByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		likes, liked := toggleActor(comment.Likes, actor)
		comment.Likes = likes
		comment.UpdatedAt = time.Now()
		if err := s.comments.Update(ctx, comment); err != nil {
			return nil, fmt.Errorf("forum: failed saving comment likes: %w", err)
		}
		return &LikeResult{Liked: liked, Count: len(likes)}, nil
	case models.TargetReply:
		reply, err := s.replies.GetByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		likes, liked := toggleActor(reply.Likes, actor)
		reply.Likes = likes
		reply.UpdatedAt = time.Now()
		if err := s.replies.Update(ctx, reply); err != nil {
			return nil, fmt.Errorf("forum: failed saving reply likes: %w", err)
		}
		return &LikeResult{Liked: liked, Count: len(likes)}, nil
	default:
		return nil, fmt.Errorf("unknown target kind %q: %w", kind, ErrValidation)
	}
}

// toggleActor removes the actor from the liker list if present, otherwise
// appends it. The returned bool is the resulting state: true if the actor
// now likes the entity.
func toggleActor(likes []models.Actor, actor models.Actor) ([]models.Actor, bool) {
	for i, l := range likes {
		if l.ID == actor.ID {
			return append(likes[:i], likes[i+1:]...), false
		}
	}
	return append(likes, actor), true
}
