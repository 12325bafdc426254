package services

import (
	"context"
	"testing"
	"time"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/logging"
	"github.com/gerich15/TemplateHub/internal/server/auth"
	"github.com/gerich15/TemplateHub/internal/server/config"
	"github.com/gerich15/TemplateHub/internal/server/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	return cfg
}

func newTestUserService(t *testing.T) (*UserService, *memManager) {
	t.Helper()
	m := newMemManager()
	return NewUserService(m, testConfig(), logging.Nop{}), m
}

func registerAlice(t *testing.T, s *UserService) int64 {
	t.Helper()
	u, err := s.Register(context.Background(), RegisterInput{UserName: "alice", Email: "Alice@Example.com", Password: "password123"})
	require.NoError(t, err)
	return u.ID
}

func TestUserService_Register(t *testing.T) {
	s, m := newTestUserService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{UserName: "  alice ", Email: "Alice@Example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "password123", m.users[u.ID].PasswordHash)

	_, err = s.Register(ctx, RegisterInput{UserName: "alice", Email: "other@example.com", Password: "password123"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestUserService_RegisterValidation(t *testing.T) {
	s, _ := newTestUserService(t)

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"short username", RegisterInput{UserName: "al", Email: "a@example.com", Password: "password123"}},
		{"bad email", RegisterInput{UserName: "alice", Email: "not-an-email", Password: "password123"}},
		{"short password", RegisterInput{UserName: "alice", Email: "a@example.com", Password: "123"}},
		{"empty", RegisterInput{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.in)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	s, _ := newTestUserService(t)
	ctx := context.Background()
	id := registerAlice(t, s)

	for _, login := range []string{"alice", "alice@example.com", "ALICE@example.com"} {
		pair, err := s.Login(ctx, login, "password123")
		require.NoError(t, err, login)
		uid, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("test-secret"))
		require.NoError(t, err)
		assert.Equal(t, id, uid)
		assert.Len(t, pair.RefreshToken, 64)
	}

	_, err := s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = s.Login(ctx, "", "password123")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUserService_RefreshToken(t *testing.T) {
	s, m := newTestUserService(t)
	ctx := context.Background()
	registerAlice(t, s)

	pair, err := s.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	next, err := s.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	// the old token is consumed
	_, err = s.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	expired := m.tokens[next.RefreshToken]
	expired.Expires = time.Now().Add(-time.Minute)
	m.tokens[next.RefreshToken] = expired
	_, err = s.RefreshToken(ctx, next.RefreshToken)
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
	_, found := m.tokens[next.RefreshToken]
	assert.False(t, found, "expired token should be deleted")
}

func TestUserService_Logout(t *testing.T) {
	s, _ := newTestUserService(t)
	ctx := context.Background()
	registerAlice(t, s)

	pair, err := s.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx, pair.RefreshToken))
	require.NoError(t, s.Logout(ctx, pair.RefreshToken))

	_, err = s.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestUserService_ProfileAndAuthenticate(t *testing.T) {
	s, _ := newTestUserService(t)
	ctx := context.Background()
	id := registerAlice(t, s)

	_, err := s.Profile(ctx, session.Anonymous())
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	_, err = s.Profile(ctx, session.User(999))
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	pair, err := s.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	caller, err := s.Authenticate(pair.AccessToken)
	require.NoError(t, err)
	got, ok := caller.UserID()
	require.True(t, ok)
	assert.Equal(t, id, got)

	u, err := s.Profile(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)

	caller, err = s.Authenticate("garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.False(t, caller.Authenticated())
}
