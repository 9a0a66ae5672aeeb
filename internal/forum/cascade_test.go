package forum_test

import (
	"context"
	"testing"

	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	student      = models.Actor{Kind: models.KindStudent, ID: "21CS042"}
	otherStudent = models.Actor{Kind: models.KindStudent, ID: "21CS077"}
	staff        = models.Actor{Kind: models.KindStaff, ID: "EMP007"}
)

// buildThread seeds one post with two comments; the first comment carries
// two replies. Returns the post and the first comment with its replies.
func buildThread(t *testing.T, svc *forum.Service) (*models.Post, *models.Comment, []*models.Reply) {
	t.Helper()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, student, forum.CreatePostInput{Title: "Interview experience", Body: "AMA"})
	require.NoError(t, err)

	c1, err := svc.CreateComment(ctx, otherStudent, post.ID, "how many rounds?")
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, student, post.ID, "three rounds total")
	require.NoError(t, err)

	r1, err := svc.CreateReply(ctx, student, c1.ID, "three")
	require.NoError(t, err)
	r2, err := svc.CreateReply(ctx, otherStudent, c1.ID, "thanks")
	require.NoError(t, err)

	return post, c1, []*models.Reply{r1, r2}
}

func TestDeletePostCascadesToCommentsAndReplies(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	post, _, _ := buildThread(t, svc)

	require.NoError(t, svc.DeletePost(ctx, student, post.ID))

	assert.Empty(t, store.posts)
	assert.Empty(t, store.comments)
	assert.Empty(t, store.replies)

	_, err := svc.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, forum.ErrNotFound)
}

func TestDeleteCommentCascadesToReplies(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	post, c1, replies := buildThread(t, svc)

	require.NoError(t, svc.DeleteComment(ctx, otherStudent, c1.ID))

	_, err := svc.GetComment(ctx, c1.ID)
	assert.ErrorIs(t, err, forum.ErrNotFound)
	for _, r := range replies {
		_, err := svc.GetReply(ctx, r.ID)
		assert.ErrorIs(t, err, forum.ErrNotFound, "reply %s must be gone", r.ID)
	}

	// The sibling comment and the post itself survive.
	assert.Len(t, store.comments, 1)
	got, err := svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.NotContains(t, got.Comments, c1.ID)
}

func TestDeleteReplyDetachesFromParentCache(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, c1, replies := buildThread(t, svc)

	require.NoError(t, svc.DeleteReply(ctx, student, replies[0].ID))

	_, err := svc.GetReply(ctx, replies[0].ID)
	assert.ErrorIs(t, err, forum.ErrNotFound)

	got, err := svc.GetComment(ctx, c1.ID)
	require.NoError(t, err)
	assert.NotContains(t, got.Replies, replies[0].ID)
	assert.Contains(t, got.Replies, replies[1].ID)
}

// A failing parent cache update must not abort the cascade: the entities
// are still removed and the call reports success.
func TestCascadeSurvivesCacheUpdateFailure(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	post, c1, replies := buildThread(t, svc)

	store.failPullReply = true
	require.NoError(t, svc.DeleteReply(ctx, student, replies[0].ID))
	_, err := svc.GetReply(ctx, replies[0].ID)
	assert.ErrorIs(t, err, forum.ErrNotFound)

	store.failPullComment = true
	require.NoError(t, svc.DeleteComment(ctx, otherStudent, c1.ID))
	_, err = svc.GetComment(ctx, c1.ID)
	assert.ErrorIs(t, err, forum.ErrNotFound)
	assert.Empty(t, store.replies)

	// The post still carries the stale comment id, but reads go through
	// the foreign key so the deleted comment never resurfaces.
	got, err := svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Contains(t, got.Comments, c1.ID)

	comments, err := svc.ListPostComments(ctx, post.ID, forum.ListOptions{Page: 1, Limit: 25})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.NotEqual(t, c1.ID, comments[0].ID)
}

// A comment created while the post cache push fails is still readable and
// still cascades away with its post.
func TestCommentSurvivesCachePushFailure(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, student, forum.CreatePostInput{Title: "Orphaned cache"})
	require.NoError(t, err)

	store.failPushComment = true
	comment, err := svc.CreateComment(ctx, otherStudent, post.ID, "still here")
	require.NoError(t, err)
	store.failPushComment = false

	got, err := svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.NotContains(t, got.Comments, comment.ID)

	comments, err := svc.ListPostComments(ctx, post.ID, forum.ListOptions{Page: 1, Limit: 25})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)

	require.NoError(t, svc.DeletePost(ctx, student, post.ID))
	assert.Empty(t, store.comments)
}

func TestDeleteForumCascadesThroughPosts(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()
	store.jobs["7"] = true

	f, err := svc.CreateForum(ctx, staff, models.CreateForumRequest{Title: "Backend hiring", JobID: "7"})
	require.NoError(t, err)

	p1, err := svc.CreatePost(ctx, student, forum.CreatePostInput{Title: "Referral?", JobID: "7"})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, otherStudent, forum.CreatePostInput{Title: "CTC?", JobID: "7"})
	require.NoError(t, err)
	c, err := svc.CreateComment(ctx, otherStudent, p1.ID, "asking too")
	require.NoError(t, err)
	_, err = svc.CreateReply(ctx, student, c.ID, "same")
	require.NoError(t, err)

	// An unrelated post must not be touched by the forum cascade.
	loose, err := svc.CreatePost(ctx, student, forum.CreatePostInput{Title: "General tips"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteForum(ctx, staff, f.ID))

	_, err = svc.GetForum(ctx, f.ID)
	assert.ErrorIs(t, err, forum.ErrNotFound)
	assert.Len(t, store.posts, 1)
	assert.Empty(t, store.comments)
	assert.Empty(t, store.replies)
	_, err = svc.GetPost(ctx, loose.ID)
	assert.NoError(t, err)
}

func TestDeleteForumRequiresStaff(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()
	store.jobs["7"] = true

	f, err := svc.CreateForum(ctx, staff, models.CreateForumRequest{Title: "Backend hiring", JobID: "7"})
	require.NoError(t, err)

	err = svc.DeleteForum(ctx, student, f.ID)
	assert.ErrorIs(t, err, forum.ErrForbidden)
}
