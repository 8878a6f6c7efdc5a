package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/service/auth"
	"github.com/manodhithyaa-cs/mindful-companion/internal/store"
)

// UserService provides user registration and authentication operations.
type UserService interface {
	// Register creates a new user with the specified email and password.
	// Returns ErrEmailExists if the email is already registered, or domain
	// validation errors for invalid input.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Authenticate verifies the email/password pair and returns the matching
	// user. Returns ErrInvalidCredentials if the email is unknown or the
	// password does not match.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	verifier  auth.PasswordVerifier
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	verifier auth.PasswordVerifier,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		verifier:  verifier,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// Register creates a new user with the specified email and password.
// Uses a transaction to ensure atomicity of the operation.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(email, password)
	if err != nil {
		s.logger.Debug("user registration rejected by validation",
			"error", err,
			"email", email)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)
		return txStore.Create(ctx, user)
	})

	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register existing email",
				"email", email)
			return nil, ErrEmailExists
		}
		s.logger.Error("failed to save user to database",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}

// Authenticate verifies the email/password pair and returns the matching user.
// Unknown emails and wrong passwords both produce ErrInvalidCredentials so
// callers cannot distinguish which part failed.
func (s *UserServiceImpl) Authenticate(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("authentication failed: unknown email",
				"email", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to retrieve user by email",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("authentication failed: password mismatch",
			"user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Debug("user authenticated successfully",
		"user_id", user.ID)

	return user, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}
