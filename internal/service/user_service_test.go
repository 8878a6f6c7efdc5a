package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manodhithyaa-cs/mindful-companion/internal/domain"
	"github.com/manodhithyaa-cs/mindful-companion/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserServiceAuthenticate(t *testing.T) {
	t.Parallel()

	userStore := newFakeUserStore()
	user := &domain.User{
		ID:             uuid.New(),
		Email:          "someone@example.com",
		HashedPassword: "irrelevant-for-fake-verifier",
	}
	userStore.add(user)

	svc := service.NewUserService(
		userStore,
		&fakeVerifier{accepted: "correct-password"},
		nil,
		discardLogger(),
	)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "someone@example.com", "correct-password")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "someone@example.com", "wrong-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		// Unknown email and wrong password are indistinguishable to callers.
		_, err := svc.Authenticate(ctx, "nobody@example.com", "correct-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestUserServiceRegisterValidation(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(
		newFakeUserStore(),
		&fakeVerifier{},
		nil,
		discardLogger(),
	)
	ctx := context.Background()

	t.Run("invalid email rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "not-an-email", "long-enough-password")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "someone@example.com", "short")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})
}

func TestUserServiceGetUser(t *testing.T) {
	t.Parallel()

	userStore := newFakeUserStore()
	user := &domain.User{ID: uuid.New(), Email: "someone@example.com"}
	userStore.add(user)

	svc := service.NewUserService(userStore, &fakeVerifier{}, nil, discardLogger())

	got, err := svc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.GetUser(context.Background(), uuid.New())
	assert.Error(t, err)
}
