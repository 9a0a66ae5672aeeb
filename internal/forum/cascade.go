package forum

import (
	"context"
	"errors"
	"fmt"

	"github.com/placementcell/backend/internal/models"
	"go.uber.org/zap"
)

// The cascade routines below delete an entity together with everything
// that exists only in reference to it. Two rules hold across all of them:
//
//  1. Descendants are removed before ancestors, so a live reply or comment
//     never points at a parent that is already gone.
//  2. The parent's cache list (a post's comment ids, a comment's reply
//     ids, a forum's post ids) is updated last, and a failure there is
//     logged but does not fail the operation. The cache is a denormalized
//     hint; the authoritative link is the foreign field on each child.
//
// Authorization is the caller's concern. DeletePost/DeleteComment/
// DeleteReply check author-or-staff before entering a cascade; the report
// resolver and forum deletion call the cascades directly because the
// moderator has already been verified at that layer.

// cascadeReply removes a reply, then scrubs its id from the owning
// comment's reply cache.
func (s *Service) cascadeReply(ctx context.Context, reply *models.Reply) error {
	if err := s.replies.Delete(ctx, reply.ID); err != nil {
		return fmt.Errorf("forum: failed deleting reply %s: %w", reply.ID, err)
	}
	if err := s.comments.PullReply(ctx, reply.CommentID, reply.ID); err != nil {
		s.log.Warn("failed to remove reply from comment cache list",
			zap.String("reply_id", reply.ID), zap.String("comment_id", reply.CommentID), zap.Error(err))
	}
	return nil
}

// cascadeComment removes a comment with all its replies, then scrubs the
// comment id from the owning post's cache. Reply authorship is not
// re-checked: deleting a comment takes its replies with it regardless of
// who wrote them.
func (s *Service) cascadeComment(ctx context.Context, comment *models.Comment) error {
	if err := s.replies.DeleteByComments(ctx, []string{comment.ID}); err != nil {
		return fmt.Errorf("forum: failed deleting replies of comment %s: %w", comment.ID, err)
	}
	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("forum: failed deleting comment %s: %w", comment.ID, err)
	}
	if err := s.posts.PullComment(ctx, comment.PostID, comment.ID); err != nil {
		s.log.Warn("failed to remove comment from post cache list",
			zap.String("comment_id", comment.ID), zap.String("post_id", comment.PostID), zap.Error(err))
	}
	return nil
}

// cascadePost removes a post, its comments and their replies, bottom-up,
// then scrubs the post id from its job forum's cache when one exists.
func (s *Service) cascadePost(ctx context.Context, post *models.Post) error {
	commentIDs, err := s.comments.IDsByPost(ctx, post.ID)
	if err != nil {
		return fmt.Errorf("forum: failed collecting comments of post %s: %w", post.ID, err)
	}
	if len(commentIDs) > 0 {
		if err := s.replies.DeleteByComments(ctx, commentIDs); err != nil {
			return fmt.Errorf("forum: failed deleting replies under post %s: %w", post.ID, err)
		}
		if err := s.comments.DeleteByPost(ctx, post.ID); err != nil {
			return fmt.Errorf("forum: failed deleting comments of post %s: %w", post.ID, err)
		}
	}
	if err := s.posts.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("forum: failed deleting post %s: %w", post.ID, err)
	}
	if post.JobID != "" {
		if err := s.forums.PullPost(ctx, post.JobID, post.ID); err != nil {
			s.log.Warn("failed to remove post from forum cache list",
				zap.String("post_id", post.ID), zap.String("job_id", post.JobID), zap.Error(err))
		}
	}
	return nil
}

// cascadeForum removes every post in the forum's owned list, with all
// their comments and replies, then the forum record itself. Individual
// post authorship is not consulted; forum deletion is an administrative
// operation.
func (s *Service) cascadeForum(ctx context.Context, f *models.JobForum) error {
	if len(f.Posts) > 0 {
		commentIDs, err := s.comments.IDsByPosts(ctx, f.Posts)
		if err != nil {
			return fmt.Errorf("forum: failed collecting comments of forum %s: %w", f.ID, err)
		}
		if len(commentIDs) > 0 {
			if err := s.replies.DeleteByComments(ctx, commentIDs); err != nil {
				return fmt.Errorf("forum: failed deleting replies under forum %s: %w", f.ID, err)
			}
			if err := s.comments.DeleteByPosts(ctx, f.Posts); err != nil {
				return fmt.Errorf("forum: failed deleting comments under forum %s: %w", f.ID, err)
			}
		}
		if err := s.posts.DeleteMany(ctx, f.Posts); err != nil {
			return fmt.Errorf("forum: failed deleting posts of forum %s: %w", f.ID, err)
		}
	}
	if err := s.forums.Delete(ctx, f.ID); err != nil {
		return fmt.Errorf("forum: failed deleting forum %s: %w", f.ID, err)
	}
	return nil
}

// cascadeTarget dispatches a moderator-initiated removal to the right
// cascade based on the report's target kind. A target that is already
// gone counts as done.
func (s *Service) cascadeTarget(ctx context.Context, kind models.TargetKind, targetID string) error {
	switch kind {
	case models.TargetPost:
		post, err := s.posts.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		return s.cascadePost(ctx, post)
	case models.TargetComment:
		comment, err := s.comments.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		return s.cascadeComment(ctx, comment)
	case models.TargetReply:
		reply, err := s.replies.GetByID(ctx, targetID)
		if err != nil {
			return err
		}
		return s.cascadeReply(ctx, reply)
	default:
		return fmt.Errorf("unknown target kind %q: %w", kind, ErrValidation)
	}
}

// isGone reports whether an error means the entity no longer exists, which
// the moderation workflow treats as already cleaned up.
func isGone(err error) bool {
	return errors.Is(err, ErrNotFound)
}
