package service

import (
	"context"
	"testing"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeToggle(t *testing.T) {
	ctx := context.Background()
	req := domain.LikeRequest{ThreadId: "thread-123", CommentId: "comment-123", Owner: "user-123"}

	t.Run("Toggling twice restores the original state", func(t *testing.T) {
		likes := NewFakeLikeRepository()
		service := NewLike(
			&MockThreadRepository{verifyThreadExistF: threadExists},
			&MockCommentRepository{verifyCommentExistFunc: commentExists},
			likes,
		)

		liked, err := service.Toggle(ctx, req)
		require.NoError(t, err)
		assert.True(t, liked)
		exists, _ := likes.VerifyLikeExist(ctx, "comment-123", "user-123")
		assert.True(t, exists)

		liked, err = service.Toggle(ctx, req)
		require.NoError(t, err)
		assert.False(t, liked)
		exists, _ = likes.VerifyLikeExist(ctx, "comment-123", "user-123")
		assert.False(t, exists)
	})

	t.Run("Likes of other users are untouched", func(t *testing.T) {
		likes := NewFakeLikeRepository()
		require.NoError(t, likes.AddLike(ctx, "comment-123", "user-456"))
		service := NewLike(
			&MockThreadRepository{verifyThreadExistF: threadExists},
			&MockCommentRepository{verifyCommentExistFunc: commentExists},
			likes,
		)

		_, err := service.Toggle(ctx, req)
		require.NoError(t, err)

		n, _ := likes.GetLikesByCommentId(ctx, "comment-123")
		assert.Equal(t, 2, n)
	})

	t.Run("Missing thread", func(t *testing.T) {
		threads := &MockThreadRepository{verifyThreadExistF: func(context.Context, domain.ThreadId) error {
			return internal_errors.NotFound("thread tidak ditemukan")
		}}
		service := NewLike(threads, &MockCommentRepository{}, UnimplementedLikeRepository{})

		_, err := service.Toggle(ctx, req)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("Missing comment", func(t *testing.T) {
		comments := &MockCommentRepository{verifyCommentExistFunc: func(context.Context, domain.CommentId) error {
			return internal_errors.NotFound("komentar tidak ditemukan")
		}}
		service := NewLike(&MockThreadRepository{verifyThreadExistF: threadExists}, comments, UnimplementedLikeRepository{})

		_, err := service.Toggle(ctx, req)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
