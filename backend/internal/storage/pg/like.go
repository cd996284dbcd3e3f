package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

// AddLike inserts only when (commentId, owner) has no like yet. A transaction
// level advisory lock on the pair serializes racing toggles, so the NOT EXISTS
// guard cannot be passed twice.
func (s *Storage) AddLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	id := domain.LikeIdPrefix + s.idGen()
	err := sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"SELECT pg_advisory_xact_lock(hashtext($1::text || '/' || $2::text))", commentId, owner,
		); err != nil {
			return fmt.Errorf("failed to lock like: %w", err)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO likes (id, commentid, owner)
			SELECT $1::text, $2::text, $3::text
			WHERE NOT EXISTS (SELECT 1 FROM likes WHERE commentid = $2::text AND owner = $3::text)
		`, id, commentId, owner)
		return err
	})
	if sharedpg.HasCode(err, sharedpg.ForeignKeyViolation) {
		return internal_errors.NotFound(commentNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) DeleteLike(ctx context.Context, commentId domain.CommentId, owner domain.UserId) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM likes WHERE commentid = $1 AND owner = $2", commentId, owner)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) GetLikesByCommentId(ctx context.Context, commentId domain.CommentId) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM likes WHERE commentid = $1", commentId).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}

func (s *Storage) VerifyLikeExist(ctx context.Context, commentId domain.CommentId, owner domain.UserId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM likes WHERE commentid = $1 AND owner = $2)", commentId, owner,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}
