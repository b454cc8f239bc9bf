package sessions

import (
	"context"
	"testing"
	"time"

	"clinicportal-service/internal/app/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionRepository(client), mr
}

func TestRedisSessionRepository_SessionLifecycle(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	session := &models.Session{
		SessionID: "sess-1",
		Token:     "backend-token",
		User: &models.User{
			UUID:      "user-1",
			FirstName: "John",
			LastName:  "Doe",
			UserType:  "PATIENT",
		},
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	require.NoError(t, repo.CreateSession(ctx, session, 24*time.Hour))

	t.Run("stored session round-trips", func(t *testing.T) {
		got, err := repo.GetSession(ctx, "sess-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "backend-token", got.Token)
		assert.Equal(t, "John", got.User.FirstName)
	})

	t.Run("unknown session returns nil without error", func(t *testing.T) {
		got, err := repo.GetSession(ctx, "no-such-session")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired session entry is gone", func(t *testing.T) {
		mr.FastForward(25 * time.Hour)
		got, err := repo.GetSession(ctx, "sess-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRedisSessionRepository_DeleteSession(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	session := &models.Session{SessionID: "sess-2", Token: "tok"}
	require.NoError(t, repo.CreateSession(ctx, session, time.Hour))
	require.NoError(t, repo.DeleteSession(ctx, "sess-2"))

	got, err := repo.GetSession(ctx, "sess-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionRepository_OTPChallenge(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	key := "PATIENT:US:+15550100001"

	exists, err := repo.HasOTPChallenge(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.SetOTPChallenge(ctx, key, 5*time.Minute))

	exists, err = repo.HasOTPChallenge(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("challenge expires with its TTL", func(t *testing.T) {
		mr.FastForward(6 * time.Minute)
		exists, err := repo.HasOTPChallenge(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("cleared challenge is gone", func(t *testing.T) {
		require.NoError(t, repo.SetOTPChallenge(ctx, key, 5*time.Minute))
		require.NoError(t, repo.ClearOTPChallenge(ctx, key))
		exists, err := repo.HasOTPChallenge(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
