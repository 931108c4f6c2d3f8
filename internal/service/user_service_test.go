package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("successful registration hashes and stores the password", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		hasher := &mocks.MockPasswordHasher{Digest: "bcrypt-digest"}
		svc := service.NewUserService(userStore, hasher, &mocks.MockPasswordVerifier{}, discardLogger())

		user, err := svc.Register(context.Background(), "alice@example.com", "password123", "Alice")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "bcrypt-digest", user.HashedPassword)
		assert.Empty(t, user.Password, "plaintext should be cleared before persistence")
		assert.True(t, user.IsActive)

		stored, ok := userStore.Users["alice@example.com"]
		require.True(t, ok, "user should have been saved")
		assert.Equal(t, user.ID, stored.ID)
	})

	t.Run("duplicate email surfaces ErrEmailExists", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		hasher := &mocks.MockPasswordHasher{}
		svc := service.NewUserService(userStore, hasher, &mocks.MockPasswordVerifier{}, discardLogger())

		_, err := svc.Register(context.Background(), "bob@example.com", "password123", "Bob")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "bob@example.com", "different456", "Bob Again")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("invalid input is rejected before hashing", func(t *testing.T) {
		t.Parallel()

		hashCalled := false
		hasher := &mocks.MockPasswordHasher{
			HashFn: func(ctx context.Context, password string) (string, error) {
				hashCalled = true
				return "", nil
			},
		}
		svc := service.NewUserService(mocks.NewMockUserStore(), hasher, &mocks.MockPasswordVerifier{}, discardLogger())

		_, err := svc.Register(context.Background(), "carol@example.com", "short", "Carol")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
		assert.False(t, hashCalled)
	})

	t.Run("hasher failure is wrapped", func(t *testing.T) {
		t.Parallel()

		hasherErr := errors.New("bcrypt blew up")
		hasher := &mocks.MockPasswordHasher{Err: hasherErr}
		svc := service.NewUserService(mocks.NewMockUserStore(), hasher, &mocks.MockPasswordVerifier{}, discardLogger())

		_, err := svc.Register(context.Background(), "dave@example.com", "password123", "Dave")
		assert.ErrorIs(t, err, hasherErr)
	})
}

func TestUserServiceLogin(t *testing.T) {
	t.Parallel()

	registeredUser := func(t *testing.T) (*mocks.MockUserStore, *domain.User) {
		t.Helper()
		user, err := domain.NewUser("erin@example.com", "password123", "Erin")
		require.NoError(t, err)
		user.HashedPassword = "stored-digest"
		user.Password = ""

		userStore := mocks.NewMockUserStore()
		userStore.Users[user.Email] = user
		return userStore, user
	}

	t.Run("correct credentials return the user", func(t *testing.T) {
		t.Parallel()

		userStore, want := registeredUser(t)
		verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
		svc := service.NewUserService(userStore, &mocks.MockPasswordHasher{}, verifier, discardLogger())

		got, err := svc.Login(context.Background(), "erin@example.com", "password123")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want.ID, got.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		userStore, _ := registeredUser(t)
		verifier := &mocks.MockPasswordVerifier{ShouldSucceed: false}
		svc := service.NewUserService(userStore, &mocks.MockPasswordHasher{}, verifier, discardLogger())

		unknownUser, unknownErr := svc.Login(context.Background(), "nobody@example.com", "password123")
		wrongPassUser, wrongPassErr := svc.Login(context.Background(), "erin@example.com", "wrongpassword")

		assert.Nil(t, unknownUser)
		assert.NoError(t, unknownErr)
		assert.Nil(t, wrongPassUser)
		assert.NoError(t, wrongPassErr)
	})

	t.Run("store failure is an error, not a missed login", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.GetByEmailError = errors.New("connection refused")
		svc := service.NewUserService(userStore, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, discardLogger())

		user, err := svc.Login(context.Background(), "erin@example.com", "password123")
		assert.Nil(t, user)
		assert.Error(t, err)
	})
}

func TestUserServiceGetByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored user", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("frank@example.com", "password123", "Frank")
		require.NoError(t, err)

		userStore := mocks.NewMockUserStore()
		userStore.Users[user.Email] = user
		svc := service.NewUserService(userStore, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, discardLogger())

		got, err := svc.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("unknown ID returns ErrUserNotFound", func(t *testing.T) {
		t.Parallel()

		svc := service.NewUserService(mocks.NewMockUserStore(), &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{}, discardLogger())

		_, err := svc.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
