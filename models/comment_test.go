package models

import (
	"testing"

	"github.com/taren4ik/hw05-final/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "writer")
	reader := createTestUser(t, "reader")

	post, err := CreatePost(author.ID, "a post", nil, "")
	require.NoError(t, err)

	comment, err := AddComment(reader.ID, post.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, reader.ID, comment.UserID)
	assert.Equal(t, post.ID, comment.PostID)
	assert.NotZero(t, comment.CreatedAt)
}

func TestAddComment_UnknownPost(t *testing.T) {
	setupTestDB(t)
	reader := createTestUser(t, "lost")

	_, err := AddComment(reader.ID, 42, "hello?")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddComment_EmptyText(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "quiet")
	post, err := CreatePost(author.ID, "a post", nil, "")
	require.NoError(t, err)

	_, err = AddComment(author.ID, post.ID, "  ")
	assert.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, db.Instance.Model(&Comment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCommentsForPost_OldestFirst(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "op")
	reader := createTestUser(t, "replier")

	post, err := CreatePost(author.ID, "thread", nil, "")
	require.NoError(t, err)

	for _, text := range []string{"first", "second", "third"} {
		_, err = AddComment(reader.ID, post.ID, text)
		require.NoError(t, err)
	}

	comments, err := CommentsForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
	assert.Equal(t, "third", comments[2].Text)
	assert.Equal(t, "replier", comments[0].User.Username, "comment author should be preloaded")
}
