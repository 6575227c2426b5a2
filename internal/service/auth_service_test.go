package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaops/timesheet-backend-go/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	users := repository.NewUserRepository(testDB(t))
	return NewAuthService(users, "test-secret", time.Hour)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pass", "Budi")
	assert.ErrorIs(t, err, ErrFieldsRequired)

	_, err = svc.Register(ctx, "budi", "123", "Budi")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register(ctx, "bu", "1234", "Budi")
	assert.ErrorIs(t, err, ErrShortUsername)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "budi", "secret", "Budi Santoso")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "budi", "other", "Another Budi")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginRoundTrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, "budi", "secret", "Budi Santoso")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "budi", "secret")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "BUDI SANTOSO", user.FullName) // stored uppercase
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "budi", claims.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "budi", "secret", "Budi")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "budi", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	svc := newAuthService(t)
	other := NewAuthService(nil, "other-secret", time.Hour)

	_, token, err := registerAndLogin(t, svc)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func registerAndLogin(t *testing.T, svc *AuthService) (int64, string, error) {
	t.Helper()
	ctx := context.Background()
	id, err := svc.Register(ctx, "budi", "secret", "Budi")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "budi", "secret")
	return id, token, err
}
