package handler

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type MockThreadService struct {
	MockCreate func(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	MockGet    func(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, payload)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, id)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	MockCreate func(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	MockDelete func(ctx context.Context, req domain.DeleteCommentRequest) error
}

func (m *MockCommentService) Create(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, payload)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, req domain.DeleteCommentRequest) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, req)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(ctx context.Context, payload domain.Payload) (domain.AddedReply, error)
	MockDelete func(ctx context.Context, req domain.DeleteReplyRequest) error
}

func (m *MockReplyService) Create(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, payload)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, req domain.DeleteReplyRequest) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, req)
	}
	return nil
}

type MockLikeService struct {
	MockToggle func(ctx context.Context, req domain.LikeRequest) (bool, error)
}

func (m *MockLikeService) Toggle(ctx context.Context, req domain.LikeRequest) (bool, error) {
	if m.MockToggle != nil {
		return m.MockToggle(ctx, req)
	}
	return true, nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
