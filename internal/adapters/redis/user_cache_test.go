package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
	"github.com/jobdeck/jobdeck-ui/internal/testutil"
)

func TestUserCache_PutAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	cache := NewUserCache(client, 10*time.Minute)
	ctx := context.Background()

	user := &model.User{
		ID:     uuid.NewString(),
		Name:   "Ada",
		Email:  "ada@example.com",
		Role:   model.RoleApplicant,
		Skills: []string{"go", "redis"},
	}
	require.NoError(t, cache.Put(ctx, user))

	got, err := cache.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Skills, got.Skills)
}

func TestUserCache_MissReturnsNil(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	cache := NewUserCache(client, 10*time.Minute)
	got, err := cache.Get(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserCache_Invalidate(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	cache := NewUserCache(client, 10*time.Minute)
	ctx := context.Background()

	user := &model.User{ID: uuid.NewString(), Name: "Rex", Role: model.RoleRecruiter}
	require.NoError(t, cache.Put(ctx, user))
	require.NoError(t, cache.Invalidate(ctx, user.ID))

	got, err := cache.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserCache_RejectsEmptyID(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	cache := NewUserCache(client, 10*time.Minute)
	assert.Error(t, cache.Put(context.Background(), &model.User{Name: "nobody"}))
	assert.Error(t, cache.Put(context.Background(), nil))
}
