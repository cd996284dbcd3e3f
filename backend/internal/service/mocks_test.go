package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
)

// Mocks fall through to the embedded Unimplemented repository when a func
// field is left nil, so an unexpected call fails with METHOD_NOT_IMPLEMENTED.

type MockThreadRepository struct {
	UnimplementedThreadRepository
	addThreadFunc      func(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error)
	getThreadByIdFunc  func(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error)
	verifyThreadExistF func(ctx context.Context, id domain.ThreadId) error
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	if m.addThreadFunc != nil {
		return m.addThreadFunc(ctx, thread)
	}
	return m.UnimplementedThreadRepository.AddThread(ctx, thread)
}

func (m *MockThreadRepository) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error) {
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(ctx, id)
	}
	return m.UnimplementedThreadRepository.GetThreadById(ctx, id)
}

func (m *MockThreadRepository) VerifyThreadExistById(ctx context.Context, id domain.ThreadId) error {
	if m.verifyThreadExistF != nil {
		return m.verifyThreadExistF(ctx, id)
	}
	return m.UnimplementedThreadRepository.VerifyThreadExistById(ctx, id)
}

type MockCommentRepository struct {
	UnimplementedCommentRepository
	addCommentFunc         func(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error)
	deleteCommentByIdFunc  func(ctx context.Context, id domain.CommentId) error
	getCommentsByThreadF   func(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error)
	verifyCommentExistFunc func(ctx context.Context, id domain.CommentId) error
	verifyCommentOwnerFunc func(ctx context.Context, id domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ctx, comment)
	}
	return m.UnimplementedCommentRepository.AddComment(ctx, comment)
}

func (m *MockCommentRepository) DeleteCommentById(ctx context.Context, id domain.CommentId) error {
	if m.deleteCommentByIdFunc != nil {
		return m.deleteCommentByIdFunc(ctx, id)
	}
	return m.UnimplementedCommentRepository.DeleteCommentById(ctx, id)
}

func (m *MockCommentRepository) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	if m.getCommentsByThreadF != nil {
		return m.getCommentsByThreadF(ctx, threadId)
	}
	return m.UnimplementedCommentRepository.GetCommentsByThreadId(ctx, threadId)
}

func (m *MockCommentRepository) VerifyCommentExistById(ctx context.Context, id domain.CommentId) error {
	if m.verifyCommentExistFunc != nil {
		return m.verifyCommentExistFunc(ctx, id)
	}
	return m.UnimplementedCommentRepository.VerifyCommentExistById(ctx, id)
}

func (m *MockCommentRepository) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(ctx, id, owner)
	}
	return m.UnimplementedCommentRepository.VerifyCommentOwner(ctx, id, owner)
}

type MockReplyRepository struct {
	UnimplementedReplyRepository
	addReplyFunc         func(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error)
	deleteReplyByIdFunc  func(ctx context.Context, id domain.ReplyId) error
	getRepliesByThreadF  func(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRecord, error)
	verifyReplyExistFunc func(ctx context.Context, id domain.ReplyId) error
	verifyReplyOwnerFunc func(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
}

func (m *MockReplyRepository) AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error) {
	if m.addReplyFunc != nil {
		return m.addReplyFunc(ctx, reply)
	}
	return m.UnimplementedReplyRepository.AddReply(ctx, reply)
}

func (m *MockReplyRepository) DeleteReplyById(ctx context.Context, id domain.ReplyId) error {
	if m.deleteReplyByIdFunc != nil {
		return m.deleteReplyByIdFunc(ctx, id)
	}
	return m.UnimplementedReplyRepository.DeleteReplyById(ctx, id)
}

func (m *MockReplyRepository) GetRepliesByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRecord, error) {
	if m.getRepliesByThreadF != nil {
		return m.getRepliesByThreadF(ctx, threadId)
	}
	return m.UnimplementedReplyRepository.GetRepliesByThreadId(ctx, threadId)
}

func (m *MockReplyRepository) VerifyReplyExistById(ctx context.Context, id domain.ReplyId) error {
	if m.verifyReplyExistFunc != nil {
		return m.verifyReplyExistFunc(ctx, id)
	}
	return m.UnimplementedReplyRepository.VerifyReplyExistById(ctx, id)
}

func (m *MockReplyRepository) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(ctx, id, owner)
	}
	return m.UnimplementedReplyRepository.VerifyReplyOwner(ctx, id, owner)
}

// FakeLikeRepository keeps likes in memory and counts calls per comment.
type FakeLikeRepository struct {
	UnimplementedLikeRepository
	countFunc func(ctx context.Context, commentId domain.CommentId) (int, error)

	mu         sync.Mutex
	likes      map[domain.CommentId]map[domain.UserId]bool
	countCalls map[domain.CommentId]int
}

func NewFakeLikeRepository() *FakeLikeRepository {
	return &FakeLikeRepository{
		likes:      make(map[domain.CommentId]map[domain.UserId]bool),
		countCalls: make(map[domain.CommentId]int),
	}
}

func (f *FakeLikeRepository) AddLike(_ context.Context, commentId domain.CommentId, owner domain.UserId) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.likes[commentId] == nil {
		f.likes[commentId] = make(map[domain.UserId]bool)
	}
	f.likes[commentId][owner] = true
	return nil
}

func (f *FakeLikeRepository) DeleteLike(_ context.Context, commentId domain.CommentId, owner domain.UserId) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.likes[commentId], owner)
	return nil
}

func (f *FakeLikeRepository) VerifyLikeExist(_ context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[commentId][owner], nil
}

func (f *FakeLikeRepository) GetLikesByCommentId(ctx context.Context, commentId domain.CommentId) (int, error) {
	f.mu.Lock()
	f.countCalls[commentId]++
	n := len(f.likes[commentId])
	f.mu.Unlock()

	if f.countFunc != nil {
		return f.countFunc(ctx, commentId)
	}
	return n, nil
}

func (f *FakeLikeRepository) CountCalls() map[domain.CommentId]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[domain.CommentId]int, len(f.countCalls))
	for k, v := range f.countCalls {
		out[k] = v
	}
	return out
}

type passthroughSanitizer struct{}

func (passthroughSanitizer) Sanitize(s string) string { return s }

func threadExists(context.Context, domain.ThreadId) error   { return nil }
func commentExists(context.Context, domain.CommentId) error { return nil }
