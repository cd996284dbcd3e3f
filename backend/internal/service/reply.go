package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type ReplyService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedReply, error)
	Delete(ctx context.Context, req domain.DeleteReplyRequest) error
}

type Reply struct {
	threads   ThreadRepository
	comments  CommentRepository
	replies   ReplyRepository
	sanitizer TextSanitizer
}

func NewReply(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, sanitizer TextSanitizer) *Reply {
	return &Reply{threads: threads, comments: comments, replies: replies, sanitizer: sanitizer}
}

// Create expects threadId next to the reply fields in payload.
func (s *Reply) Create(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	if err := s.threads.VerifyThreadExistById(ctx, payload.String("threadId")); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.comments.VerifyCommentExistById(ctx, payload.String("commentId")); err != nil {
		return domain.AddedReply{}, err
	}
	reply, err := domain.NewAddReply(sanitizeFields(s.sanitizer, payload, "content"))
	if err != nil {
		return domain.AddedReply{}, err
	}
	return s.replies.AddReply(ctx, reply)
}

func (s *Reply) Delete(ctx context.Context, req domain.DeleteReplyRequest) error {
	if err := s.threads.VerifyThreadExistById(ctx, req.ThreadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExistById(ctx, req.CommentId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyExistById(ctx, req.ReplyId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyOwner(ctx, req.ReplyId, req.Owner); err != nil {
		return err
	}
	return s.replies.DeleteReplyById(ctx, req.ReplyId)
}
