package pg

import (
	"context"
	"strings"
	"testing"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, "johndoe")
	threadId := createThread(t, owner)

	t.Run("persists comment", func(t *testing.T) {
		comment, err := domain.NewAddComment(domain.Payload{"content": "sebuah comment", "threadId": threadId, "owner": owner})
		require.NoError(t, err)

		added, err := storage.AddComment(ctx, comment)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(added.Id, domain.CommentIdPrefix))
		assert.Equal(t, domain.AddedComment{Id: added.Id, Content: "sebuah comment", Owner: owner}, added)

		stored, err := storage.GetCommentById(ctx, added.Id)
		require.NoError(t, err)
		assert.Equal(t, threadId, stored.ThreadId)
		assert.False(t, stored.IsDelete)
	})

	t.Run("unknown thread", func(t *testing.T) {
		comment, err := domain.NewAddComment(domain.Payload{"content": "x", "threadId": "thread-missing", "owner": owner})
		require.NoError(t, err)

		_, err = storage.AddComment(ctx, comment)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestGetCommentsByThreadId(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, "dicoding")
	other := createUser(t, "johndoe")
	threadId := createThread(t, owner)

	t.Run("empty thread yields empty list", func(t *testing.T) {
		comments, err := storage.GetCommentsByThreadId(ctx, threadId)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	first := createComment(t, threadId, owner, "first")
	second := createComment(t, threadId, other, "second")
	require.NoError(t, storage.DeleteCommentById(ctx, second))

	t.Run("ordered by date with usernames and flags", func(t *testing.T) {
		comments, err := storage.GetCommentsByThreadId(ctx, threadId)
		require.NoError(t, err)
		require.Len(t, comments, 2)

		assert.Equal(t, first, comments[0].Id)
		assert.Equal(t, "first", comments[0].Content)
		assert.Equal(t, usernameOf(t, owner), comments[0].Username)
		assert.False(t, comments[0].IsDelete)

		assert.Equal(t, second, comments[1].Id)
		assert.Equal(t, "second", comments[1].Content)
		assert.True(t, comments[1].IsDelete)
		assert.True(t, comments[0].Date.Before(comments[1].Date))
	})
}

func TestDeleteCommentById(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, "dicoding")
	commentId := createComment(t, createThread(t, owner), owner, "to be deleted")

	require.NoError(t, storage.DeleteCommentById(ctx, commentId))
	// flag stays set, a repeated update still matches the row
	require.NoError(t, storage.DeleteCommentById(ctx, commentId))

	stored, err := storage.GetCommentById(ctx, commentId)
	require.NoError(t, err)
	assert.True(t, stored.IsDelete)
	assert.Equal(t, "to be deleted", stored.Content)

	err = storage.DeleteCommentById(ctx, "comment-missing")
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestVerifyComment(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, "dicoding")
	other := createUser(t, "johndoe")
	commentId := createComment(t, createThread(t, owner), owner, "mine")

	assert.NoError(t, storage.VerifyCommentExistById(ctx, commentId))
	assert.True(t, internal_errors.IsNotFound(storage.VerifyCommentExistById(ctx, "comment-missing")))

	assert.NoError(t, storage.VerifyCommentOwner(ctx, commentId, owner))
	err := storage.VerifyCommentOwner(ctx, commentId, other)
	assert.True(t, internal_errors.IsForbidden(err))

	_, err = storage.GetCommentById(ctx, "comment-missing")
	assert.True(t, internal_errors.IsNotFound(err))
}
