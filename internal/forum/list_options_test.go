package forum_test

import (
	"testing"

	"github.com/placementcell/backend/internal/forum"
	"github.com/stretchr/testify/assert"
)

func TestNewListOptionsClamps(t *testing.T) {
	opts := forum.NewListOptions(0, 0, "", 10)
	assert.Equal(t, int64(1), opts.Page)
	assert.Equal(t, int64(10), opts.Limit)
	assert.Equal(t, forum.SortNewest, opts.Sort)
	assert.Equal(t, int64(0), opts.Skip())

	opts = forum.NewListOptions(3, 25, "most-liked", 10)
	assert.Equal(t, forum.SortMostLiked, opts.Sort)
	assert.Equal(t, int64(50), opts.Skip())

	opts = forum.NewListOptions(-4, -1, "trending", 5)
	assert.Equal(t, int64(1), opts.Page)
	assert.Equal(t, int64(5), opts.Limit)
	assert.Equal(t, forum.SortNewest, opts.Sort)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, forum.SortMostCommented, forum.ParseSortKey("most-commented"))
	assert.Equal(t, forum.SortMostLiked, forum.ParseSortKey("most-liked"))
	assert.Equal(t, forum.SortNewest, forum.ParseSortKey("newest"))
	assert.Equal(t, forum.SortNewest, forum.ParseSortKey("whatever"))
}
