package forum_test

import (
	"context"
	"testing"

	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditRequiresAuthor(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	post, c1, replies := buildThread(t, svc)

	// The author may edit.
	updated, err := svc.UpdatePost(ctx, student, post.ID, models.UpdatePostRequest{Title: "Interview experience (updated)"})
	require.NoError(t, err)
	assert.Equal(t, "Interview experience (updated)", updated.Title)

	// Nobody else may, staff included.
	_, err = svc.UpdatePost(ctx, otherStudent, post.ID, models.UpdatePostRequest{Title: "hijack"})
	assert.ErrorIs(t, err, forum.ErrForbidden)
	_, err = svc.UpdatePost(ctx, staff, post.ID, models.UpdatePostRequest{Title: "hijack"})
	assert.ErrorIs(t, err, forum.ErrForbidden)

	_, err = svc.UpdateComment(ctx, student, c1.ID, "edited by non-author")
	assert.ErrorIs(t, err, forum.ErrForbidden)
	_, err = svc.UpdateReply(ctx, otherStudent, replies[0].ID, "edited by non-author")
	assert.ErrorIs(t, err, forum.ErrForbidden)
}

func TestDeleteAllowsAuthorOrStaff(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	post, c1, replies := buildThread(t, svc)

	// A third party who is neither author nor staff is rejected.
	assert.ErrorIs(t, svc.DeleteReply(ctx, staffImpersonator(), replies[0].ID), forum.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteComment(ctx, student, c1.ID), forum.ErrForbidden)
	assert.ErrorIs(t, svc.DeletePost(ctx, otherStudent, post.ID), forum.ErrForbidden)

	// Staff may delete anything regardless of authorship.
	require.NoError(t, svc.DeleteReply(ctx, staff, replies[0].ID))
	require.NoError(t, svc.DeleteComment(ctx, staff, c1.ID))
	require.NoError(t, svc.DeletePost(ctx, staff, post.ID))
}

func TestMissingEntityBeatsForbidden(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	// Existence is checked before authorship, so an absent id yields
	// NotFound for every actor.
	assert.ErrorIs(t, svc.DeletePost(ctx, otherStudent, "ghost"), forum.ErrNotFound)
	_, err := svc.UpdateComment(ctx, otherStudent, "ghost", "text")
	assert.ErrorIs(t, err, forum.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteReply(ctx, staff, "ghost"), forum.ErrNotFound)
}

// staffImpersonator carries a staff-looking id under a student kind; only
// the kind grants moderation power.
func staffImpersonator() models.Actor {
	return models.Actor{Kind: models.KindStudent, ID: "EMP999"}
}
