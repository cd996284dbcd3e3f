package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type CommentService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	Delete(ctx context.Context, req domain.DeleteCommentRequest) error
}

type Comment struct {
	threads   ThreadRepository
	comments  CommentRepository
	sanitizer TextSanitizer
}

func NewComment(threads ThreadRepository, comments CommentRepository, sanitizer TextSanitizer) *Comment {
	return &Comment{threads: threads, comments: comments, sanitizer: sanitizer}
}

// Create checks the thread before validating the payload, so a comment on a
// missing thread reports NotFound even when the body is also invalid.
func (s *Comment) Create(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if err := s.threads.VerifyThreadExistById(ctx, payload.String("threadId")); err != nil {
		return domain.AddedComment{}, err
	}
	comment, err := domain.NewAddComment(sanitizeFields(s.sanitizer, payload, "content"))
	if err != nil {
		return domain.AddedComment{}, err
	}
	return s.comments.AddComment(ctx, comment)
}

func (s *Comment) Delete(ctx context.Context, req domain.DeleteCommentRequest) error {
	if err := s.threads.VerifyThreadExistById(ctx, req.ThreadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExistById(ctx, req.CommentId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(ctx, req.CommentId, req.Owner); err != nil {
		return err
	}
	return s.comments.DeleteCommentById(ctx, req.CommentId)
}
