package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zerovault/zero-vault/internal/config"
	"github.com/zerovault/zero-vault/internal/logger"
	"github.com/zerovault/zero-vault/internal/store"
	"github.com/zerovault/zero-vault/internal/utils"
	"github.com/zerovault/zero-vault/internal/validators"
	"github.com/zerovault/zero-vault/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// token lifecycle using a UserRepository and a SessionRepository for
// persistence and PBKDF2-HMAC-SHA256 for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository stores issued sessions keyed by their token.
	sessionRepository store.SessionRepository

	// uuid generates opaque identifiers for new users.
	uuid *utils.UUIDGenerator

	// validator checks incoming credentials payloads before any hashing
	// or storage work is done.
	validator validators.Validator

	// kdfIterations is the PBKDF2 iteration count applied when hashing
	// passwords. Must match the value used at registration time.
	kdfIterations int

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		uuid:              utils.NewUUIDGenerator(),
		validator:         validators.NewCredentialsValidator(),
		kdfIterations:     cfg.KDFIterations,
		sessionDuration:   cfg.SessionDuration,
		logger:            logger,
	}
}

// Register creates a new user account.
//
// It normalizes the email (lowercase, trim), validates that both email and
// password are non-empty, derives the password hash with a fresh random
// salt, and delegates persistence to the UserRepository. The database-level
// unique index on email makes the uniqueness check atomic.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is already taken.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if err := a.validator.Validate(ctx, models.CredentialsRequest{Email: email, Password: password}); err != nil {
		log.Err(err).Msg("invalid credentials payload")
		return models.User{}, ErrInvalidDataProvided
	}

	salt, err := utils.NewSalt()
	if err != nil {
		log.Err(err).Msg("salt generation failed")
		return models.User{}, fmt.Errorf("salt generation failed: %w", err)
	}

	passwordHash := utils.DeriveKey(password, salt, a.kdfIterations)

	user := models.User{
		UserID:       a.uuid.Generate(),
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a session.
//
// It normalizes the email, looks up the account, recomputes the password
// hash with the stored salt, and compares it to the stored hash in constant
// time. On success a cryptographically random session token is generated
// and persisted with an expiry of now + sessionDuration.
//
// Returns the issued session or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the email is unknown or the password is
//     wrong; both cases produce the identical error. Storage faults are
//     not folded in and propagate wrapped.
func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if err := a.validator.Validate(ctx, models.CredentialsRequest{Email: email, Password: password}); err != nil {
		log.Err(err).Msg("invalid credentials payload")
		return models.Session{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", email).Msg("no user with this email")
			// unknown emails and wrong passwords must be indistinguishable
			return models.Session{}, ErrInvalidCredentials
		}
		// storage faults are not credential failures and must surface as such
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyKey(password, foundUser.Salt, foundUser.PasswordHash, a.kdfIterations) {
		log.Error().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, fmt.Errorf("session token generation failed: %w", err)
	}

	now := time.Now().UTC()
	session := models.Session{
		Token:     token,
		UserID:    foundUser.UserID,
		Email:     foundUser.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionDuration),
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("user_id", foundUser.UserID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// ValidateSession resolves a bearer token to the owning user id.
//
// Absent tokens, expired sessions, and storage faults all produce
// ok == false; validation intentionally never surfaces an error, so a
// flaky store degrades to "unauthenticated" rather than 500s on every
// protected route. Expired sessions are deleted on first access (lazy
// expiry); a failed cleanup delete is logged and otherwise ignored since
// the next access repeats it.
func (a *authService) ValidateSession(ctx context.Context, token string) (string, bool) {
	log := logger.FromContext(ctx)

	if token == "" {
		return "", false
	}

	session, err := a.sessionRepository.GetSession(ctx, token)
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		return "", false
	}

	if session.Expired(time.Now().UTC()) {
		if err := a.sessionRepository.DeleteSession(ctx, token); err != nil {
			log.Err(err).Msg("expired session cleanup failed")
		}
		return "", false
	}

	return session.UserID, true
}

// Logout revokes the session for the given token. The underlying delete is
// idempotent, so logging out twice (or with a never-issued token) succeeds.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.DeleteSession(ctx, token); err != nil {
		log.Err(err).Msg("session deletion ended with error")
		return fmt.Errorf("session deletion ended with error: %w", err)
	}

	return nil
}

// normalizeEmail lowercases and trims the email so that lookups and the
// uniqueness constraint operate on a canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
