package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/storage/pg"
)

// Storage is a small user store for tools that run outside the API server.
type Storage struct {
	db    *sql.DB
	idGen func() string
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	db, err := pg.Connect(ctx, cfg, pg.LightweightConnectionConfig())
	if err != nil {
		return nil, err
	}
	return NewWithDB(db, uuid.NewString), nil
}

func NewWithDB(db *sql.DB, idGen func() string) *Storage {
	return &Storage{db: db, idGen: idGen}
}

// SaveUser stores user with a generated id. Password must already be hashed.
func (s *Storage) SaveUser(ctx context.Context, user domain.User) (domain.UserId, error) {
	id := domain.UserIdPrefix + s.idGen()
	err := pg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var taken bool
		if err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", user.Username,
		).Scan(&taken); err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return internal_errors.BadRequest("username tidak tersedia")
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)",
			id, user.Username, user.Password, user.Fullname,
		)
		if pg.HasCode(err, pg.UniqueViolation) {
			return internal_errors.BadRequest("username tidak tersedia")
		}
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// UserByUsername returns NotFound when no user has username.
func (s *Storage) UserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	var u domain.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password, fullname FROM users WHERE username = $1", username,
	).Scan(&u.Id, &u.Username, &u.Password, &u.Fullname)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, internal_errors.NotFound("user tidak ditemukan")
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Cleanup closes the database connection pool.
func (s *Storage) Cleanup() {
	if s.db != nil {
		s.db.Close()
	}
}
