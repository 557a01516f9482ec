package domain_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/infra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginAndVerify(t *testing.T) {
	clk := newClock()
	sessions := infra.NewKVSessionStore(infra.NewMemoryKV())
	auth := domain.NewAuthService(sessions, domain.Credentials{Username: "admin", Password: "pw"}, 0, clk.Now, nopLogger())
	ctx := context.Background()

	_, err := auth.Login(ctx, "admin", "nope")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = auth.Login(ctx, "root", "pw")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	sess, err := auth.Login(ctx, "admin", "pw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sess.Token, "session_"))
	assert.Equal(t, clk.Now().Add(24*time.Hour), sess.ExpiresAt)

	got, err := auth.Verify(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	_, err = auth.Verify(ctx, "session_unknown")
	require.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestVerifyExpiredSessionIsRemoved(t *testing.T) {
	clk := newClock()
	sessions := infra.NewKVSessionStore(infra.NewMemoryKV())
	auth := domain.NewAuthService(sessions, domain.Credentials{Username: "admin", Password: "pw"}, 0, clk.Now, nopLogger())
	ctx := context.Background()

	sess, err := auth.Login(ctx, "admin", "pw")
	require.NoError(t, err)

	clk.Advance(24*time.Hour + time.Second)
	_, err = auth.Verify(ctx, sess.Token)
	require.ErrorIs(t, err, domain.ErrSessionExpired)

	stored, err := sessions.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Nil(t, stored)

	_, err = auth.Verify(ctx, sess.Token)
	require.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestLogout(t *testing.T) {
	clk := newClock()
	sessions := infra.NewKVSessionStore(infra.NewMemoryKV())
	auth := domain.NewAuthService(sessions, domain.Credentials{Username: "admin", Password: "pw"}, time.Hour, clk.Now, nopLogger())
	ctx := context.Background()

	sess, err := auth.Login(ctx, "admin", "pw")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx, sess.Token))
	require.NoError(t, auth.Logout(ctx, sess.Token))
	require.NoError(t, auth.Logout(ctx, ""))

	_, err = auth.Verify(ctx, sess.Token)
	require.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestLoginWithPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	creds := domain.Credentials{Username: "admin", Password: "ignored", PasswordHash: string(hash)}
	auth := domain.NewAuthService(infra.NewKVSessionStore(infra.NewMemoryKV()), creds, 0, nil, nopLogger())
	ctx := context.Background()

	_, err = auth.Login(ctx, "admin", "ignored")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
}
