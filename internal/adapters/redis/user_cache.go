package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

// UserCache holds recently fetched profile records keyed by user id so
// repeated page loads skip the upstream round trip. A miss returns
// (nil, nil); callers fall through to the API.
type UserCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewUserCache creates a profile cache with the given entry TTL.
func NewUserCache(client redis.UniversalClient, ttl time.Duration) *UserCache {
	return &UserCache{
		client: client,
		prefix: "usercache:",
		ttl:    ttl,
	}
}

func (c *UserCache) Put(ctx context.Context, u *model.User) error {
	if u == nil || u.ID == "" {
		return errors.New("user cache entry needs a user with an ID")
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	return c.client.Set(ctx, c.prefix+u.ID, data, c.ttl).Err()
}

func (c *UserCache) Get(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, nil
	}

	data, err := c.client.Get(ctx, c.prefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var u model.User
	if unmarshalErr := json.Unmarshal([]byte(data), &u); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal user: %w", unmarshalErr)
	}
	return &u, nil
}

func (c *UserCache) Invalidate(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	return c.client.Del(ctx, c.prefix+userID).Err()
}
