package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"golang.org/x/sync/errgroup"
)

type ThreadService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

// TextSanitizer strips markup from user supplied text.
type TextSanitizer interface {
	Sanitize(s string) string
}

type Thread struct {
	threads   ThreadRepository
	comments  CommentRepository
	replies   ReplyRepository
	likes     LikeRepository
	sanitizer TextSanitizer
	markers   domain.RedactionMarkers
	// like counts are fetched with at most this many queries in flight
	likeConcurrency int
}

func NewThread(
	threads ThreadRepository,
	comments CommentRepository,
	replies ReplyRepository,
	likes LikeRepository,
	sanitizer TextSanitizer,
	markers domain.RedactionMarkers,
	likeConcurrency int,
) *Thread {
	if likeConcurrency < 1 {
		likeConcurrency = 1
	}
	return &Thread{
		threads:         threads,
		comments:        comments,
		replies:         replies,
		likes:           likes,
		sanitizer:       sanitizer,
		markers:         markers,
		likeConcurrency: likeConcurrency,
	}
}

func (s *Thread) Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	thread, err := domain.NewAddThread(sanitizeFields(s.sanitizer, payload, "title", "body"))
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threads.AddThread(ctx, thread)
}

// Get assembles the thread with its comments, replies and like counts.
// Content of soft-deleted comments and replies is replaced with the markers.
func (s *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	thread, err := s.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	comments, err := s.comments.GetCommentsByThreadId(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	replies, err := s.replies.GetRepliesByThreadId(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	likeCounts, err := s.likeCounts(ctx, comments)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	repliesByComment := make(map[domain.CommentId][]domain.ReplyDetail, len(comments))
	for _, r := range replies {
		content := r.Content
		if r.IsDelete {
			content = s.markers.Reply
		}
		repliesByComment[r.CommentId] = append(repliesByComment[r.CommentId], domain.ReplyDetail{
			Id:       r.Id,
			Content:  content,
			Date:     r.Date,
			Username: r.Username,
		})
	}

	details := make([]domain.CommentDetail, 0, len(comments))
	for i, c := range comments {
		content := c.Content
		if c.IsDelete {
			content = s.markers.Comment
		}
		commentReplies := repliesByComment[c.Id]
		if commentReplies == nil {
			commentReplies = []domain.ReplyDetail{}
		}
		details = append(details, domain.CommentDetail{
			Id:        c.Id,
			Username:  c.Username,
			Date:      c.Date,
			Content:   content,
			Replies:   commentReplies,
			LikeCount: likeCounts[i],
		})
	}

	return domain.ThreadDetail{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: details,
	}, nil
}

// likeCounts returns one count per comment, in comment order.
func (s *Thread) likeCounts(ctx context.Context, comments []domain.CommentRecord) ([]int, error) {
	counts := make([]int, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.likeConcurrency)
	for i, c := range comments {
		g.Go(func() error {
			n, err := s.likes.GetLikesByCommentId(gctx, c.Id)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

// sanitizeFields returns a copy of payload with the string values under keys
// sanitized. Values of other types are left for entity validation to reject.
func sanitizeFields(sanitizer TextSanitizer, payload domain.Payload, keys ...string) domain.Payload {
	out := payload
	for _, key := range keys {
		if s, ok := payload[key].(string); ok {
			out = out.With(key, sanitizer.Sanitize(s))
		}
	}
	return out
}
