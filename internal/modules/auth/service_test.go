package auth

import (
	"testing"

	"github.com/globetrotter-app/core/internal/middleware"
	"github.com/globetrotter-app/core/internal/pkg/apperr"
	"github.com/globetrotter-app/core/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)

	t.Run("Valid", func(t *testing.T) {
		u, token, err := svc.Register(&RegisterDTO{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "hunter2",
		}, "127.0.0.1", "test")
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.NotEmpty(t, token)
		require.NotEqual(t, "hunter2", u.Password)

		claims, err := middleware.ValidateTokenClaims(db, token)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.UserID)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, _, err := svc.Register(&RegisterDTO{
			Username: "alice",
			Email:    "alice2@example.com",
			Password: "hunter2",
		}, "", "")
		require.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, _, err := svc.Register(&RegisterDTO{
			Username: "alice2",
			Email:    "alice@example.com",
			Password: "hunter2",
		}, "", "")
		require.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		_, _, err := svc.Register(&RegisterDTO{
			Username: "bob",
			Email:    "bob@example.com",
		}, "", "")
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "password", verr.Field)
	})
}

func TestLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)

	registered, _, err := svc.Register(&RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	}, "", "")
	require.NoError(t, err)
	require.Nil(t, registered.LastLoginTime)

	t.Run("Valid", func(t *testing.T) {
		u, token, err := svc.Login("alice", "hunter2", "127.0.0.1", "test")
		require.NoError(t, err)
		require.Equal(t, registered.ID, u.ID)
		require.NotEmpty(t, token)
		require.NotNil(t, u.LastLoginTime)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Login("alice", "wrong", "", "")
		require.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		// Unknown users and wrong passwords are indistinguishable.
		_, _, err := svc.Login("nobody", "hunter2", "", "")
		require.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})
}

func TestLogoutRevokesSession(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)

	u, token, err := svc.Register(&RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	}, "", "")
	require.NoError(t, err)

	claims, err := middleware.ValidateTokenClaims(db, token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(u.ID, claims.SessionID))

	// The JWT is still well-formed but the session behind it is gone.
	_, err = middleware.ValidateTokenClaims(db, token)
	require.Error(t, err)

	// Logging out twice is a no-op.
	require.NoError(t, svc.Logout(u.ID, claims.SessionID))
}
