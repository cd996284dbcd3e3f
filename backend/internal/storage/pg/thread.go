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

const threadNotFound = "thread tidak ditemukan"

func (s *Storage) AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	id := domain.ThreadIdPrefix + s.idGen()
	var row struct{ id, title, owner string }
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO threads (id, owner, title, body, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, owner
	`, id, thread.Owner(), thread.Title(), thread.Body(), s.now()).Scan(&row.id, &row.title, &row.owner)
	if sharedpg.HasCode(err, sharedpg.ForeignKeyViolation) {
		return domain.AddedThread{}, internal_errors.NotFound("user tidak ditemukan")
	}
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewAddedThread(domain.Payload{"id": row.id, "title": row.title, "owner": row.owner})
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRecord, error) {
	var t domain.ThreadRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT threads.id, threads.title, threads.body, threads.date, users.username
		FROM threads
		JOIN users ON users.id = threads.owner
		WHERE threads.id = $1
	`, id).Scan(&t.Id, &t.Title, &t.Body, &t.Date, &t.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ThreadRecord{}, internal_errors.NotFound(threadNotFound)
	}
	if err != nil {
		return domain.ThreadRecord{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return t, nil
}

func (s *Storage) VerifyThreadExistById(ctx context.Context, id domain.ThreadId) error {
	return s.verifyExists(ctx, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", threadNotFound, id)
}

// verifyExists runs an EXISTS query and turns false into NotFound(message).
func (s *Storage) verifyExists(ctx context.Context, query, message string, args ...any) error {
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}
	if !exists {
		return internal_errors.NotFound(message)
	}
	return nil
}
