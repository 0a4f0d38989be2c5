package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. Sessions are keyed by their opaque token, so every
// operation is a primary-key lookup against the "sessions" table.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession inserts a new session record keyed by its token.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createSession, session.Token, session.UserID, session.Email, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Str("user_id", session.UserID).Msg("error creating session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GetSession retrieves the session record for the given token.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoSessionWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) GetSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, getSession, token)

	if err := row.Scan(&session.Token, &session.UserID, &session.Email, &session.CreatedAt, &session.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}

		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error getting session")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// DeleteSession removes the session with the given token. The delete is
// idempotent: removing an absent session is not an error, which keeps both
// logout and lazy expiry cleanup retry-safe.
func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, deleteSession, token)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
