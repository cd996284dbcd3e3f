package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/errors"
)

type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error)
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error)
	VerifyThreadExistById(ctx context.Context, id domain.ThreadId) error
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error)
	// DeleteCommentById sets the soft-delete flag.
	DeleteCommentById(ctx context.Context, id domain.CommentId) error
	// GetCommentsByThreadId returns comments ordered by date, empty when there are none.
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error)
	GetCommentById(ctx context.Context, id domain.CommentId) (domain.Comment, error)
	VerifyCommentExistById(ctx context.Context, id domain.CommentId) error
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
}

type ReplyRepository interface {
	AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error)
	DeleteReplyById(ctx context.Context, id domain.ReplyId) error
	// GetRepliesByThreadId returns every reply under the thread's comments ordered by date.
	GetRepliesByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRecord, error)
	GetReplyById(ctx context.Context, id domain.ReplyId) (domain.Reply, error)
	VerifyReplyExistById(ctx context.Context, id domain.ReplyId) error
	VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
}

type LikeRepository interface {
	AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error
	GetLikesByCommentId(ctx context.Context, commentId domain.CommentId) (int, error)
	VerifyLikeExist(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error)
}

// Unimplemented repositories fail every call with METHOD_NOT_IMPLEMENTED.
// Test doubles embed them and override only the methods a case needs.

const (
	threadRepositoryName  = "THREAD_REPOSITORY"
	commentRepositoryName = "COMMENT_REPOSITORY"
	replyRepositoryName   = "REPLY_REPOSITORY"
	likeRepositoryName    = "LIKE_REPOSITORY"
)

type UnimplementedThreadRepository struct{}

var _ ThreadRepository = UnimplementedThreadRepository{}

func (UnimplementedThreadRepository) AddThread(context.Context, domain.AddThread) (domain.AddedThread, error) {
	return domain.AddedThread{}, errors.NotImplemented(threadRepositoryName)
}

func (UnimplementedThreadRepository) GetThreadById(context.Context, domain.ThreadId) (domain.ThreadRecord, error) {
	return domain.ThreadRecord{}, errors.NotImplemented(threadRepositoryName)
}

func (UnimplementedThreadRepository) VerifyThreadExistById(context.Context, domain.ThreadId) error {
	return errors.NotImplemented(threadRepositoryName)
}

type UnimplementedCommentRepository struct{}

var _ CommentRepository = UnimplementedCommentRepository{}

func (UnimplementedCommentRepository) AddComment(context.Context, domain.AddComment) (domain.AddedComment, error) {
	return domain.AddedComment{}, errors.NotImplemented(commentRepositoryName)
}

func (UnimplementedCommentRepository) DeleteCommentById(context.Context, domain.CommentId) error {
	return errors.NotImplemented(commentRepositoryName)
}

func (UnimplementedCommentRepository) GetCommentsByThreadId(context.Context, domain.ThreadId) ([]domain.CommentRecord, error) {
	return nil, errors.NotImplemented(commentRepositoryName)
}

func (UnimplementedCommentRepository) GetCommentById(context.Context, domain.CommentId) (domain.Comment, error) {
	return domain.Comment{}, errors.NotImplemented(commentRepositoryName)
}

func (UnimplementedCommentRepository) VerifyCommentExistById(context.Context, domain.CommentId) error {
	return errors.NotImplemented(commentRepositoryName)
}

func (UnimplementedCommentRepository) VerifyCommentOwner(context.Context, domain.CommentId, domain.UserId) error {
	return errors.NotImplemented(commentRepositoryName)
}

type UnimplementedReplyRepository struct{}

var _ ReplyRepository = UnimplementedReplyRepository{}

func (UnimplementedReplyRepository) AddReply(context.Context, domain.AddReply) (domain.AddedReply, error) {
	return domain.AddedReply{}, errors.NotImplemented(replyRepositoryName)
}

func (UnimplementedReplyRepository) DeleteReplyById(context.Context, domain.ReplyId) error {
	return errors.NotImplemented(replyRepositoryName)
}

func (UnimplementedReplyRepository) GetRepliesByThreadId(context.Context, domain.ThreadId) ([]domain.ReplyRecord, error) {
	return nil, errors.NotImplemented(replyRepositoryName)
}

func (UnimplementedReplyRepository) GetReplyById(context.Context, domain.ReplyId) (domain.Reply, error) {
	return domain.Reply{}, errors.NotImplemented(replyRepositoryName)
}

func (UnimplementedReplyRepository) VerifyReplyExistById(context.Context, domain.ReplyId) error {
	return errors.NotImplemented(replyRepositoryName)
}

func (UnimplementedReplyRepository) VerifyReplyOwner(context.Context, domain.ReplyId, domain.UserId) error {
	return errors.NotImplemented(replyRepositoryName)
}

type UnimplementedLikeRepository struct{}

var _ LikeRepository = UnimplementedLikeRepository{}

func (UnimplementedLikeRepository) AddLike(context.Context, domain.CommentId, domain.UserId) error {
	return errors.NotImplemented(likeRepositoryName)
}

func (UnimplementedLikeRepository) DeleteLike(context.Context, domain.CommentId, domain.UserId) error {
	return errors.NotImplemented(likeRepositoryName)
}

func (UnimplementedLikeRepository) GetLikesByCommentId(context.Context, domain.CommentId) (int, error) {
	return 0, errors.NotImplemented(likeRepositoryName)
}

func (UnimplementedLikeRepository) VerifyLikeExist(context.Context, domain.CommentId, domain.UserId) (bool, error) {
	return false, errors.NotImplemented(likeRepositoryName)
}
