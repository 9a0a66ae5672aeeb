package forum_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/placementcell/backend/internal/forum"
	"github.com/placementcell/backend/internal/models"
	"go.uber.org/zap"
)

// fakeStore is a shared in-memory backing for the per-interface fakes.
// Fail flags simulate storage errors on the cache-list updates so the
// non-fatal paths can be exercised.
type fakeStore struct {
	posts    map[string]*models.Post
	comments map[string]*models.Comment
	replies  map[string]*models.Reply
	reports  map[string]*models.Report
	forums   map[string]*models.JobForum
	jobs     map[string]bool

	failPullComment bool
	failPullReply   bool
	failPullPost    bool
	failPushComment bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		posts:    map[string]*models.Post{},
		comments: map[string]*models.Comment{},
		replies:  map[string]*models.Reply{},
		reports:  map[string]*models.Report{},
		forums:   map[string]*models.JobForum{},
		jobs:     map[string]bool{},
	}
}

func newTestService(store *fakeStore) *forum.Service {
	return forum.NewService(
		&fakePosts{store},
		&fakeComments{store},
		&fakeReplies{store},
		&fakeReports{store},
		&fakeForums{store},
		&fakeJobs{store},
		zap.NewNop(),
	)
}

func notFound(what, id string) error {
	return fmt.Errorf("%s %s: %w", what, id, forum.ErrNotFound)
}

// --- posts ---

type fakePosts struct{ s *fakeStore }

func (f *fakePosts) Create(_ context.Context, p *models.Post) error {
	cp := *p
	f.s.posts[p.ID] = &cp
	return nil
}

func (f *fakePosts) GetByID(_ context.Context, id string) (*models.Post, error) {
	p, ok := f.s.posts[id]
	if !ok {
		return nil, notFound("post", id)
	}
	cp := *p
	return &cp, nil
}

func (f *fakePosts) List(_ context.Context, opts forum.ListOptions) ([]models.Post, error) {
	all := make([]models.Post, 0, len(f.s.posts))
	for _, p := range f.s.posts {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, opts), nil
}

func (f *fakePosts) ListByJob(_ context.Context, jobID string, opts forum.ListOptions) ([]models.Post, error) {
	matched := []models.Post{}
	for _, p := range f.s.posts {
		if p.JobID == jobID {
			matched = append(matched, *p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return page(matched, opts), nil
}

func (f *fakePosts) Update(_ context.Context, p *models.Post) error {
	if _, ok := f.s.posts[p.ID]; !ok {
		return notFound("post", p.ID)
	}
	cp := *p
	f.s.posts[p.ID] = &cp
	return nil
}

func (f *fakePosts) Delete(_ context.Context, id string) error {
	if _, ok := f.s.posts[id]; !ok {
		return notFound("post", id)
	}
	delete(f.s.posts, id)
	return nil
}

func (f *fakePosts) DeleteMany(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.s.posts, id)
	}
	return nil
}

func (f *fakePosts) PushComment(_ context.Context, postID, commentID string) error {
	if f.s.failPushComment {
		return fmt.Errorf("posts: push failed")
	}
	p, ok := f.s.posts[postID]
	if !ok {
		return notFound("post", postID)
	}
	p.Comments = append(p.Comments, commentID)
	return nil
}

func (f *fakePosts) PullComment(_ context.Context, postID, commentID string) error {
	if f.s.failPullComment {
		return fmt.Errorf("posts: pull failed")
	}
	p, ok := f.s.posts[postID]
	if !ok {
		return notFound("post", postID)
	}
	p.Comments = remove(p.Comments, commentID)
	return nil
}

// --- comments ---

type fakeComments struct{ s *fakeStore }

func (f *fakeComments) Create(_ context.Context, c *models.Comment) error {
	cp := *c
	f.s.comments[c.ID] = &cp
	return nil
}

func (f *fakeComments) GetByID(_ context.Context, id string) (*models.Comment, error) {
	c, ok := f.s.comments[id]
	if !ok {
		return nil, notFound("comment", id)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeComments) ListByPost(_ context.Context, postID string, opts forum.ListOptions) ([]models.Comment, error) {
	matched := []models.Comment{}
	for _, c := range f.s.comments {
		if c.PostID == postID {
			matched = append(matched, *c)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })
	return page(matched, opts), nil
}

func (f *fakeComments) IDsByPost(_ context.Context, postID string) ([]string, error) {
	var ids []string
	for _, c := range f.s.comments {
		if c.PostID == postID {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (f *fakeComments) IDsByPosts(_ context.Context, postIDs []string) ([]string, error) {
	var ids []string
	for _, c := range f.s.comments {
		for _, pid := range postIDs {
			if c.PostID == pid {
				ids = append(ids, c.ID)
				break
			}
		}
	}
	return ids, nil
}

func (f *fakeComments) Update(_ context.Context, c *models.Comment) error {
	if _, ok := f.s.comments[c.ID]; !ok {
		return notFound("comment", c.ID)
	}
	cp := *c
	f.s.comments[c.ID] = &cp
	return nil
}

func (f *fakeComments) Delete(_ context.Context, id string) error {
	if _, ok := f.s.comments[id]; !ok {
		return notFound("comment", id)
	}
	delete(f.s.comments, id)
	return nil
}

func (f *fakeComments) DeleteByPost(_ context.Context, postID string) error {
	for id, c := range f.s.comments {
		if c.PostID == postID {
			delete(f.s.comments, id)
		}
	}
	return nil
}

func (f *fakeComments) DeleteByPosts(_ context.Context, postIDs []string) error {
	for _, pid := range postIDs {
		_ = f.DeleteByPost(context.Background(), pid)
	}
	return nil
}

func (f *fakeComments) PushReply(_ context.Context, commentID, replyID string) error {
	c, ok := f.s.comments[commentID]
	if !ok {
		return notFound("comment", commentID)
	}
	c.Replies = append(c.Replies, replyID)
	return nil
}

func (f *fakeComments) PullReply(_ context.Context, commentID, replyID string) error {
	if f.s.failPullReply {
		return fmt.Errorf("comments: pull failed")
	}
	c, ok := f.s.comments[commentID]
	if !ok {
		return notFound("comment", commentID)
	}
	c.Replies = remove(c.Replies, replyID)
	return nil
}

// --- replies ---

type fakeReplies struct{ s *fakeStore }

func (f *fakeReplies) Create(_ context.Context, r *models.Reply) error {
	cp := *r
	f.s.replies[r.ID] = &cp
	return nil
}

func (f *fakeReplies) GetByID(_ context.Context, id string) (*models.Reply, error) {
	r, ok := f.s.replies[id]
	if !ok {
		return nil, notFound("reply", id)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReplies) ListByComment(_ context.Context, commentID string, opts forum.ListOptions) ([]models.Reply, error) {
	matched := []models.Reply{}
	for _, r := range f.s.replies {
		if r.CommentID == commentID {
			matched = append(matched, *r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })
	return page(matched, opts), nil
}

func (f *fakeReplies) Update(_ context.Context, r *models.Reply) error {
	if _, ok := f.s.replies[r.ID]; !ok {
		return notFound("reply", r.ID)
	}
	cp := *r
	f.s.replies[r.ID] = &cp
	return nil
}

func (f *fakeReplies) Delete(_ context.Context, id string) error {
	if _, ok := f.s.replies[id]; !ok {
		return notFound("reply", id)
	}
	delete(f.s.replies, id)
	return nil
}

func (f *fakeReplies) DeleteByComments(_ context.Context, commentIDs []string) error {
	for id, r := range f.s.replies {
		for _, cid := range commentIDs {
			if r.CommentID == cid {
				delete(f.s.replies, id)
				break
			}
		}
	}
	return nil
}

// --- reports ---

type fakeReports struct{ s *fakeStore }

func (f *fakeReports) Create(_ context.Context, r *models.Report) error {
	cp := *r
	cp.Entries = append([]models.ReportEntry(nil), r.Entries...)
	f.s.reports[r.ID] = &cp
	return nil
}

func (f *fakeReports) GetByID(_ context.Context, id string) (*models.Report, error) {
	r, ok := f.s.reports[id]
	if !ok {
		return nil, notFound("report", id)
	}
	cp := *r
	cp.Entries = append([]models.ReportEntry(nil), r.Entries...)
	return &cp, nil
}

func (f *fakeReports) GetByTarget(_ context.Context, kind models.TargetKind, targetID string) (*models.Report, error) {
	for _, r := range f.s.reports {
		if r.TargetKind == kind && r.TargetID == targetID {
			cp := *r
			cp.Entries = append([]models.ReportEntry(nil), r.Entries...)
			return &cp, nil
		}
	}
	return nil, notFound("report for", targetID)
}

func (f *fakeReports) List(_ context.Context, status models.ReportStatus, opts forum.ListOptions) ([]models.Report, error) {
	matched := []models.Report{}
	for _, r := range f.s.reports {
		if status == "" || r.Status == status {
			matched = append(matched, *r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return page(matched, opts), nil
}

func (f *fakeReports) AddEntry(_ context.Context, id string, entry models.ReportEntry) error {
	r, ok := f.s.reports[id]
	if !ok {
		return notFound("report", id)
	}
	r.Entries = append(r.Entries, entry)
	return nil
}

func (f *fakeReports) SetStatus(_ context.Context, id string, status models.ReportStatus) error {
	r, ok := f.s.reports[id]
	if !ok {
		return notFound("report", id)
	}
	r.Status = status
	return nil
}

func (f *fakeReports) Delete(_ context.Context, id string) error {
	if _, ok := f.s.reports[id]; !ok {
		return notFound("report", id)
	}
	delete(f.s.reports, id)
	return nil
}

// --- forums ---

type fakeForums struct{ s *fakeStore }

func (f *fakeForums) Create(_ context.Context, jf *models.JobForum) error {
	cp := *jf
	f.s.forums[jf.ID] = &cp
	return nil
}

func (f *fakeForums) GetByID(_ context.Context, id string) (*models.JobForum, error) {
	jf, ok := f.s.forums[id]
	if !ok {
		return nil, notFound("forum", id)
	}
	cp := *jf
	return &cp, nil
}

func (f *fakeForums) GetByJob(_ context.Context, jobID string) (*models.JobForum, error) {
	for _, jf := range f.s.forums {
		if jf.JobID == jobID {
			cp := *jf
			return &cp, nil
		}
	}
	return nil, notFound("forum for job", jobID)
}

func (f *fakeForums) List(_ context.Context, opts forum.ListOptions) ([]models.JobForum, error) {
	all := make([]models.JobForum, 0, len(f.s.forums))
	for _, jf := range f.s.forums {
		all = append(all, *jf)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, opts), nil
}

func (f *fakeForums) PushPost(_ context.Context, jobID, postID string) error {
	for _, jf := range f.s.forums {
		if jf.JobID == jobID {
			jf.Posts = append(jf.Posts, postID)
			return nil
		}
	}
	return notFound("forum for job", jobID)
}

func (f *fakeForums) PullPost(_ context.Context, jobID, postID string) error {
	if f.s.failPullPost {
		return fmt.Errorf("forums: pull failed")
	}
	for _, jf := range f.s.forums {
		if jf.JobID == jobID {
			jf.Posts = remove(jf.Posts, postID)
			return nil
		}
	}
	return notFound("forum for job", jobID)
}

func (f *fakeForums) PushMember(_ context.Context, id string, member models.Actor) error {
	jf, ok := f.s.forums[id]
	if !ok {
		return notFound("forum", id)
	}
	jf.Members = append(jf.Members, member)
	return nil
}

func (f *fakeForums) Delete(_ context.Context, id string) error {
	if _, ok := f.s.forums[id]; !ok {
		return notFound("forum", id)
	}
	delete(f.s.forums, id)
	return nil
}

// --- job registry ---

type fakeJobs struct{ s *fakeStore }

func (f *fakeJobs) JobExists(_ context.Context, jobID string) (bool, error) {
	return f.s.jobs[jobID], nil
}

// --- helpers ---

func remove(list []string, v string) []string {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func page[T any](list []T, opts forum.ListOptions) []T {
	skip := int(opts.Skip())
	if skip >= len(list) {
		return []T{}
	}
	end := skip + int(opts.Limit)
	if opts.Limit <= 0 || end > len(list) {
		end = len(list)
	}
	return list[skip:end]
}
