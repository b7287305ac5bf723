package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
)

func newRedisRepo(t *testing.T) (SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return NewRedisSessionRepository(client), mr
}

func TestRedisSessionRepository_SaveAndGet(t *testing.T) {
	repo, mr := newRedisRepo(t)
	session := testSession("s1", time.Hour)

	require.NoError(t, repo.Save(context.Background(), session))

	got, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, session.Tokens, got.Tokens)
	assert.Equal(t, session.Identity, got.Identity)

	// The key expires with the session's absolute lifetime
	ttl := mr.TTL("admin:session:s1")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestRedisSessionRepository_GetMissing(t *testing.T) {
	repo, _ := newRedisRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestRedisSessionRepository_SaveExpiredRejected(t *testing.T) {
	repo, mr := newRedisRepo(t)

	err := repo.Save(context.Background(), testSession("s1", -time.Minute))
	require.Error(t, err)
	assert.False(t, mr.Exists("admin:session:s1"))
}

func TestRedisSessionRepository_GetAfterKeyExpiry(t *testing.T) {
	repo, mr := newRedisRepo(t)
	require.NoError(t, repo.Save(context.Background(), testSession("s1", time.Minute)))

	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestRedisSessionRepository_SaveReplacesWholeValue(t *testing.T) {
	repo, _ := newRedisRepo(t)
	session := testSession("s1", time.Hour)
	require.NoError(t, repo.Save(context.Background(), session))

	updated := session.WithTokens(domain.TokenPair{AccessToken: "A2", RefreshToken: "R2"})
	require.NoError(t, repo.Save(context.Background(), updated))

	got, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Tokens.AccessToken)
	assert.Equal(t, "R2", got.Tokens.RefreshToken)
	assert.Equal(t, session.Identity, got.Identity)
}

func TestRedisSessionRepository_DeleteIsIdempotent(t *testing.T) {
	repo, _ := newRedisRepo(t)
	require.NoError(t, repo.Save(context.Background(), testSession("s1", time.Hour)))

	require.NoError(t, repo.Delete(context.Background(), "s1"))
	require.NoError(t, repo.Delete(context.Background(), "s1"))

	_, err := repo.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
