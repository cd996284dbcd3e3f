package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

const (
	replyNotFound = "reply tidak ditemukan"
	notReplyOwner = "user bukan pemilik balasan"
)

func (s *Storage) AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error) {
	id := domain.ReplyIdPrefix + s.idGen()
	var row struct{ id, content, owner string }
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO replies (id, owner, content, commentid, isdelete, date)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING id, content, owner
	`, id, reply.Owner(), reply.Content(), reply.CommentId(), s.now()).Scan(&row.id, &row.content, &row.owner)
	if sharedpg.HasCode(err, sharedpg.ForeignKeyViolation) {
		return domain.AddedReply{}, internal_errors.NotFound(commentNotFound)
	}
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.NewAddedReply(domain.Payload{"id": row.id, "content": row.content, "owner": row.owner})
}

func (s *Storage) DeleteReplyById(ctx context.Context, id domain.ReplyId) error {
	res, err := s.db.ExecContext(ctx, "UPDATE replies SET isdelete = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	return notFoundIfNoRows(res, replyNotFound)
}

func (s *Storage) GetRepliesByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT replies.id, replies.commentid, replies.content, replies.date, users.username, replies.isdelete
		FROM replies
		JOIN comments ON comments.id = replies.commentid
		JOIN users ON users.id = replies.owner
		WHERE comments.threadid = $1
		ORDER BY replies.date ASC, replies.id ASC
	`, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.ReplyRecord{}
	for rows.Next() {
		var r domain.ReplyRecord
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Content, &r.Date, &r.Username, &r.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}

func (s *Storage) GetReplyById(ctx context.Context, id domain.ReplyId) (domain.Reply, error) {
	var r domain.Reply
	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner, content, commentid, isdelete, date
		FROM replies
		WHERE id = $1
	`, id).Scan(&r.Id, &r.Owner, &r.Content, &r.CommentId, &r.IsDelete, &r.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Reply{}, internal_errors.NotFound(replyNotFound)
	}
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to get reply: %w", err)
	}
	return r, nil
}

func (s *Storage) VerifyReplyExistById(ctx context.Context, id domain.ReplyId) error {
	return s.verifyExists(ctx, "SELECT EXISTS(SELECT 1 FROM replies WHERE id = $1)", replyNotFound, id)
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	var owned bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM replies WHERE id = $1 AND owner = $2)", id, owner,
	).Scan(&owned)
	if err != nil {
		return fmt.Errorf("failed to check reply owner: %w", err)
	}
	if !owned {
		return internal_errors.Forbidden(notReplyOwner)
	}
	return nil
}
