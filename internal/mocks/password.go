package mocks

import (
	"context"
	"errors"

	"github.com/phrazzld/todo-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing
type MockPasswordHasher struct {
	HashFn func(ctx context.Context, password string) (string, error)

	// Digest is returned by the default implementation.
	Digest string
	Err    error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(ctx, password)
	}
	if m.Err != nil {
		return "", m.Err
	}
	if m.Digest != "" {
		return m.Digest, nil
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error

	// ShouldSucceed controls the default implementation.
	ShouldSucceed bool
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
