package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// UserService provides registration, login, and profile retrieval.
type UserService interface {
	// Register creates a new account with a hashed password.
	// Returns store.ErrEmailExists when the email is already registered.
	Register(ctx context.Context, email, password, name string) (*domain.User, error)

	// Login authenticates by email and password. An unknown email and a
	// wrong password both return (nil, nil) so callers cannot tell the
	// two cases apart.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns store.ErrUserNotFound when no such user exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		logger:    logger.With("component", "user_service"),
	}
}

// Register creates the domain user, hashes its password, and persists it.
// Email comparison is exact; no case normalization is performed.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	email, password, name string,
) (*domain.User, error) {
	user, err := domain.NewUser(email, password, name)
	if err != nil {
		s.logger.Debug("invalid registration data", "error", err)
		return nil, err
	}

	hashed, err := s.hasher.Hash(ctx, password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	// Plaintext is not needed past this point.
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register existing email")
		} else {
			s.logger.Error("failed to save user", "error", err, "user_id", user.ID)
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login fetches by email and verifies the password. Both failure modes
// collapse to the same "no match" result to prevent user enumeration.
func (s *UserServiceImpl) Login(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown email")
			return nil, nil
		}
		s.logger.Error("failed to fetch user for login", "error", err)
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login password mismatch", "user_id", user.ID)
		return nil, nil
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, nil
}

// GetByID retrieves a user by ID.
func (s *UserServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", id)
		} else {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", id)
		}
		return nil, err
	}

	return user, nil
}
