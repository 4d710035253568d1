package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	"github.com/jobdeck/jobdeck-ui/internal/testutil"
)

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID: id,
		User: &model.User{
			ID:    "user-123",
			Name:  "Ada",
			Email: "ada@example.com",
			Role:  model.RoleApplicant,
		},
		Credentials: []domainauth.CredentialCookie{
			{Name: "token", Value: "abc123", Path: "/"},
		},
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession(uuid.NewString())
	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	require.NotNil(t, retrieved.User)
	assert.Equal(t, session.User.Email, retrieved.User.Email)
	assert.Equal(t, session.User.Role, retrieved.User.Role)
	require.Len(t, retrieved.Credentials, 1)
	assert.Equal(t, "token", retrieved.Credentials[0].Name)
	assert.Equal(t, "abc123", retrieved.Credentials[0].Value)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	_, err := store.Get(context.Background(), "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_Delete(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession(uuid.NewString())
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session.ID))

	_, err := store.Get(ctx, session.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_RejectsExpired(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	session := testSession(uuid.NewString())
	session.ExpiresAt = time.Now().Add(-time.Minute)

	err := store.Save(context.Background(), session)
	assert.Error(t, err)
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	ctx := context.Background()
	store := NewSessionStoreWithPrefix(client, "jobdeck:sess:")
	session := testSession(uuid.NewString())
	require.NoError(t, store.Save(ctx, session))

	// The default prefix must not see it.
	_, err := NewSessionStore(client).Get(ctx, session.ID)
	assert.Equal(t, ErrNotFound, err)

	retrieved, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
}
