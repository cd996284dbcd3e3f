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
	commentNotFound = "komentar tidak ditemukan"
	notCommentOwner = "user bukan pemilik komentar"
)

func (s *Storage) AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	id := domain.CommentIdPrefix + s.idGen()
	var row struct{ id, content, owner string }
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (id, owner, content, threadid, isdelete, date)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING id, content, owner
	`, id, comment.Owner(), comment.Content(), comment.ThreadId(), s.now()).Scan(&row.id, &row.content, &row.owner)
	if sharedpg.HasCode(err, sharedpg.ForeignKeyViolation) {
		return domain.AddedComment{}, internal_errors.NotFound(threadNotFound)
	}
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewAddedComment(domain.Payload{"id": row.id, "content": row.content, "owner": row.owner})
}

// DeleteCommentById only ever sets isdelete to true.
func (s *Storage) DeleteCommentById(ctx context.Context, id domain.CommentId) error {
	res, err := s.db.ExecContext(ctx, "UPDATE comments SET isdelete = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return notFoundIfNoRows(res, commentNotFound)
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT comments.id, comments.content, comments.date, users.username, comments.isdelete
		FROM comments
		JOIN users ON users.id = comments.owner
		WHERE comments.threadid = $1
		ORDER BY comments.date ASC, comments.id ASC
	`, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRecord{}
	for rows.Next() {
		var c domain.CommentRecord
		if err := rows.Scan(&c.Id, &c.Content, &c.Date, &c.Username, &c.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

func (s *Storage) GetCommentById(ctx context.Context, id domain.CommentId) (domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner, content, threadid, isdelete, date
		FROM comments
		WHERE id = $1
	`, id).Scan(&c.Id, &c.Owner, &c.Content, &c.ThreadId, &c.IsDelete, &c.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, internal_errors.NotFound(commentNotFound)
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to get comment: %w", err)
	}
	return c, nil
}

func (s *Storage) VerifyCommentExistById(ctx context.Context, id domain.CommentId) error {
	return s.verifyExists(ctx, "SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)", commentNotFound, id)
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	var owned bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1 AND owner = $2)", id, owner,
	).Scan(&owned)
	if err != nil {
		return fmt.Errorf("failed to check comment owner: %w", err)
	}
	if !owned {
		return internal_errors.Forbidden(notCommentOwner)
	}
	return nil
}

func notFoundIfNoRows(res sql.Result, message string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return internal_errors.NotFound(message)
	}
	return nil
}
