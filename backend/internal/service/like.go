package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type LikeService interface {
	// Toggle flips the caller's like and reports whether the comment is now liked.
	Toggle(ctx context.Context, req domain.LikeRequest) (bool, error)
}

type Like struct {
	threads  ThreadRepository
	comments CommentRepository
	likes    LikeRepository
}

func NewLike(threads ThreadRepository, comments CommentRepository, likes LikeRepository) *Like {
	return &Like{threads: threads, comments: comments, likes: likes}
}

func (s *Like) Toggle(ctx context.Context, req domain.LikeRequest) (bool, error) {
	if err := s.threads.VerifyThreadExistById(ctx, req.ThreadId); err != nil {
		return false, err
	}
	if err := s.comments.VerifyCommentExistById(ctx, req.CommentId); err != nil {
		return false, err
	}
	exists, err := s.likes.VerifyLikeExist(ctx, req.CommentId, req.Owner)
	if err != nil {
		return false, err
	}
	if exists {
		return false, s.likes.DeleteLike(ctx, req.CommentId, req.Owner)
	}
	if err := s.likes.AddLike(ctx, req.CommentId, req.Owner); err != nil {
		return false, err
	}
	return true, nil
}
