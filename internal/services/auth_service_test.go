package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotewall/backend/internal/models"
)

func newAuthService() (*AuthService, *fakeUsers, *fakeSessions) {
	users := &fakeUsers{}
	sessions := newFakeSessions()
	return NewAuthService(users, sessions, time.Hour), users, sessions
}

func TestRegister(t *testing.T) {
	svc, users, _ := newAuthService()

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, models.RoleUser.String(), u.Role)
	assert.NotEqual(t, "pw", users.users[0].PasswordHash, "password must be hashed")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, _ := newAuthService()

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice2", "alice@example.com", "pw2")
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	assert.Len(t, users.users, 1, "failed registration must not mutate the store")
}

func TestRegisterRequiresFields(t *testing.T) {
	svc, _, _ := newAuthService()

	var v models.ErrValidation
	_, err := svc.Register(context.Background(), "", "a@b.c", "pw")
	assert.ErrorAs(t, err, &v)
	_, err = svc.Register(context.Background(), "alice", "", "pw")
	assert.ErrorAs(t, err, &v)
	_, err = svc.Register(context.Background(), "alice", "a@b.c", "")
	assert.ErrorAs(t, err, &v)
}

func TestLoginEstablishesSession(t *testing.T) {
	svc, users, sessions := newAuthService()

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, users.UpdateRole(context.Background(), u.ID, models.RoleEditor.String()))

	sid, data, err := svc.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, data.UserID)
	assert.Equal(t, "alice", data.Username)
	assert.Equal(t, "editor", data.Role, "session role matches the stored role")

	stored, err := sessions.Get(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestLoginFailureIsUniform(t *testing.T) {
	svc, _, sessions := newAuthService()

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, _, errWrongPw := svc.Login(context.Background(), "alice@example.com", "nope")
	_, _, errUnknown := svc.Login(context.Background(), "ghost@example.com", "pw")

	assert.ErrorIs(t, errWrongPw, models.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, models.ErrInvalidCredentials)
	assert.Equal(t, errWrongPw.Error(), errUnknown.Error(), "unknown email must be indistinguishable from wrong password")
	assert.Empty(t, sessions.sessions, "no session on failed login")
}

func TestLogout(t *testing.T) {
	svc, _, sessions := newAuthService()

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	sid, _, err := svc.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sid))
	_, err = sessions.Get(context.Background(), sid)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// unknown or missing sid is not an error
	assert.NoError(t, svc.Logout(context.Background(), sid))
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
