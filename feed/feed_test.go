package feed

import (
	"fmt"
	"testing"

	"github.com/taren4ik/hw05-final/db"
	"github.com/taren4ik/hw05-final/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestFeed(t *testing.T) *Service {
	db.InitTest()
	models.Init()
	cleanup := func() {
		for _, model := range []interface{}{&models.Follow{}, &models.Comment{}, &models.Post{}, &models.Group{}, &models.User{}} {
			if err := db.Instance.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
				t.Logf("failed to cleanup table for %T: %v", model, err)
			}
		}
	}
	cleanup()
	t.Cleanup(cleanup)
	return NewService()
}

func createUser(t *testing.T, username string) models.User {
	user, err := models.UserCreate(username, username, username+"@example.com", "pass")
	require.NoError(t, err)
	return user
}

func createPosts(t *testing.T, authorID uint64, n int) {
	for i := 0; i < n; i++ {
		_, err := models.CreatePost(authorID, fmt.Sprintf("post %d", i), nil, "")
		require.NoError(t, err)
	}
}

func TestAll_NewestFirst(t *testing.T) {
	svc := setupTestFeed(t)
	author := createUser(t, "chronicler")
	createPosts(t, author.ID, 5)

	// Age the first post so the ordering is driven by time, not insertion
	var oldest models.Post
	require.NoError(t, db.Instance.Order("id").First(&oldest).Error)
	require.NoError(t, db.Instance.Model(&oldest).UpdateColumn("created_at", oldest.CreatedAt-3600).Error)

	page, err := svc.All(1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 5)
	for i := 1; i < len(page.Posts); i++ {
		assert.LessOrEqual(t, page.Posts[i].CreatedAt, page.Posts[i-1].CreatedAt,
			"listing order must be non-increasing by creation time")
	}
	assert.Equal(t, oldest.ID, page.Posts[4].ID, "the aged post must come last")
}

func TestAll_Pagination(t *testing.T) {
	svc := setupTestFeed(t)
	author := createUser(t, "prolific")
	createPosts(t, author.ID, 15)

	first, err := svc.All(1)
	require.NoError(t, err)
	assert.Len(t, first.Posts, PostsPerPage)
	assert.Equal(t, int64(15), first.Total)
	assert.Equal(t, 2, first.Count)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	second, err := svc.All(2)
	require.NoError(t, err)
	assert.Len(t, second.Posts, 5)
	assert.True(t, second.HasPrev)
	assert.False(t, second.HasNext)
}

func TestAll_PageOutOfRange(t *testing.T) {
	svc := setupTestFeed(t)
	author := createUser(t, "edgecase")
	createPosts(t, author.ID, 15)

	// Beyond the last page resolves to the last page, never an error
	beyond, err := svc.All(99)
	require.NoError(t, err)
	assert.Equal(t, 2, beyond.Number)
	assert.Len(t, beyond.Posts, 5)

	// Zero and negative resolve to the first page
	for _, n := range []int{0, -3} {
		page, err := svc.All(n)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
		assert.Len(t, page.Posts, PostsPerPage)
	}
}

func TestAll_Empty(t *testing.T) {
	svc := setupTestFeed(t)

	page, err := svc.All(1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 1, page.Count)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestByGroup(t *testing.T) {
	svc := setupTestFeed(t)
	author := createUser(t, "grouped")
	group, err := models.CreateGroup("G", "g-slug", "desc")
	require.NoError(t, err)

	post, err := models.CreatePost(author.ID, "hello", &group.ID, "")
	require.NoError(t, err)
	_, err = models.CreatePost(author.ID, "groupless", nil, "")
	require.NoError(t, err)

	found, page, err := svc.ByGroup("g-slug", 1)
	require.NoError(t, err)
	assert.Equal(t, "G", found.Title)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, post.ID, page.Posts[0].ID)

	_, _, err = svc.ByGroup("no-such-slug", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestByAuthor(t *testing.T) {
	svc := setupTestFeed(t)
	author := createUser(t, "self")
	other := createUser(t, "someoneelse")
	createPosts(t, author.ID, 2)
	createPosts(t, other.ID, 3)

	found, page, err := svc.ByAuthor("self", 1)
	require.NoError(t, err)
	assert.Equal(t, author.ID, found.ID)
	assert.Equal(t, int64(2), page.Total)
	for _, p := range page.Posts {
		assert.Equal(t, author.ID, p.UserID)
	}

	_, _, err = svc.ByAuthor("ghost", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestFollowed(t *testing.T) {
	svc := setupTestFeed(t)
	follower := createUser(t, "fan")
	author := createUser(t, "star")
	bystander := createUser(t, "bystander")

	require.NoError(t, models.FollowAuthor(follower.ID, author.ID))

	before, err := svc.Followed(follower.ID, 1)
	require.NoError(t, err)

	_, err = models.CreatePost(author.ID, "new release", nil, "")
	require.NoError(t, err)

	after, err := svc.Followed(follower.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, before.Total+1, after.Total, "a follower sees the new post")

	unrelated, err := svc.Followed(bystander.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unrelated.Total, "a non-follower's feed is unchanged")
}

func TestFollowed_AfterUnfollow(t *testing.T) {
	svc := setupTestFeed(t)
	follower := createUser(t, "fickle")
	author := createUser(t, "dropped")

	require.NoError(t, models.FollowAuthor(follower.ID, author.ID))
	createPosts(t, author.ID, 2)

	page, err := svc.Followed(follower.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	require.NoError(t, models.UnfollowAuthor(follower.ID, author.ID))

	page, err = svc.Followed(follower.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total, "unfollowed author's posts must disappear")
}
