package service

import (
	"context"
	"testing"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/stretchr/testify/assert"
)

func TestUnimplementedRepositories(t *testing.T) {
	ctx := context.Background()
	threads := UnimplementedThreadRepository{}
	comments := UnimplementedCommentRepository{}
	replies := UnimplementedReplyRepository{}
	likes := UnimplementedLikeRepository{}

	calls := []struct {
		name     string
		call     func() error
		expected string
	}{
		{"AddThread", func() error { _, err := threads.AddThread(ctx, domain.AddThread{}); return err }, "THREAD_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"GetThreadById", func() error { _, err := threads.GetThreadById(ctx, ""); return err }, "THREAD_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"VerifyThreadExistById", func() error { return threads.VerifyThreadExistById(ctx, "") }, "THREAD_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"AddComment", func() error { _, err := comments.AddComment(ctx, domain.AddComment{}); return err }, "COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"DeleteCommentById", func() error { return comments.DeleteCommentById(ctx, "") }, "COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"GetCommentsByThreadId", func() error { _, err := comments.GetCommentsByThreadId(ctx, ""); return err }, "COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"GetCommentById", func() error { _, err := comments.GetCommentById(ctx, ""); return err }, "COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"VerifyCommentExistById", func() error { return comments.VerifyCommentExistById(ctx, "") }, "COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"VerifyCommentOwner", func() error { return comments.VerifyCommentOwner(ctx, "", "") }, "COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"AddReply", func() error { _, err := replies.AddReply(ctx, domain.AddReply{}); return err }, "REPLY_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"DeleteReplyById", func() error { return replies.DeleteReplyById(ctx, "") }, "REPLY_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"GetRepliesByThreadId", func() error { _, err := replies.GetRepliesByThreadId(ctx, ""); return err }, "REPLY_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"GetReplyById", func() error { _, err := replies.GetReplyById(ctx, ""); return err }, "REPLY_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"VerifyReplyExistById", func() error { return replies.VerifyReplyExistById(ctx, "") }, "REPLY_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"VerifyReplyOwner", func() error { return replies.VerifyReplyOwner(ctx, "", "") }, "REPLY_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"AddLike", func() error { return likes.AddLike(ctx, "", "") }, "LIKE_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"DeleteLike", func() error { return likes.DeleteLike(ctx, "", "") }, "LIKE_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"GetLikesByCommentId", func() error { _, err := likes.GetLikesByCommentId(ctx, ""); return err }, "LIKE_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
		{"VerifyLikeExist", func() error { _, err := likes.VerifyLikeExist(ctx, "", ""); return err }, "LIKE_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.True(t, internal_errors.IsNotImplemented(err))
			assert.EqualError(t, err, tt.expected)
		})
	}
}
