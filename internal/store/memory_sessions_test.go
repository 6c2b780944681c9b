package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository_CreateAndFind(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s := models.Session{Token: "t1", UserGUID: "guid-alice", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateSession(ctx, s))

	got, err := repo.FindSession(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "guid-alice", got.UserGUID)

	_, err = repo.FindSession(ctx, "unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionRepository_ExpiredSessionIsDropped(t *testing.T) {
	repo := NewMemorySessionRepository().(*memorySessionRepository)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, models.Session{Token: "old", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, repo.CreateSession(ctx, models.Session{Token: "forever"}))

	_, err := repo.FindSession(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NotContains(t, repo.sessions, "old")

	_, err = repo.FindSession(ctx, "forever")
	assert.NoError(t, err)
}

func TestMemorySessionRepository_DeleteUserSessions(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	for _, s := range []models.Session{
		{Token: "a1", UserGUID: "guid-alice"},
		{Token: "a2", UserGUID: "guid-alice"},
		{Token: "b1", UserGUID: "guid-bob"},
	} {
		require.NoError(t, repo.CreateSession(ctx, s))
	}

	n, err := repo.DeleteUserSessions(ctx, "guid-alice")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = repo.FindSession(ctx, "a1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.FindSession(ctx, "b1")
	assert.NoError(t, err)

	n, err = repo.DeleteUserSessions(ctx, "guid-alice")
	require.NoError(t, err)
	assert.Zero(t, n)
}
