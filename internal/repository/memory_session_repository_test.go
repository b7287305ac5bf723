package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
)

func testSession(id string, ttl time.Duration) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID: id,
		Identity: domain.Identity{
			ID:    "admin-1",
			Name:  "Alice",
			Phone: "0812345678",
			Role:  domain.RoleAdmin,
		},
		Tokens: domain.TokenPair{
			AccessToken:  "A1",
			RefreshToken: "R1",
		},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestMemorySessionRepository_SaveAndGet(t *testing.T) {
	repo := NewMemorySessionRepository()
	session := testSession("s1", time.Hour)

	require.NoError(t, repo.Save(context.Background(), session))

	got, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, session.Tokens, got.Tokens)
	assert.Equal(t, session.Identity, got.Identity)
}

func TestMemorySessionRepository_GetMissing(t *testing.T) {
	repo := NewMemorySessionRepository()

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestMemorySessionRepository_GetExpired(t *testing.T) {
	repo := NewMemorySessionRepository()
	require.NoError(t, repo.Save(context.Background(), testSession("s1", -time.Minute)))

	_, err := repo.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestMemorySessionRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewMemorySessionRepository()
	require.NoError(t, repo.Save(context.Background(), testSession("s1", time.Hour)))

	require.NoError(t, repo.Delete(context.Background(), "s1"))
	require.NoError(t, repo.Delete(context.Background(), "s1"))

	_, err := repo.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestMemorySessionRepository_GetReturnsCopy(t *testing.T) {
	repo := NewMemorySessionRepository()
	require.NoError(t, repo.Save(context.Background(), testSession("s1", time.Hour)))

	first, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	first.Tokens.AccessToken = "tampered"

	second, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "A1", second.Tokens.AccessToken)
}

func TestMemorySessionRepository_SaveReplacesWholeValue(t *testing.T) {
	repo := NewMemorySessionRepository()
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
