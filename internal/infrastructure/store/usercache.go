package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

// UserCacheImpl implements domain.UserCache using Redis. Entries are keyed by
// the auth token and expire with the token cookie, so a stale token never
// resurrects a user record.
type UserCacheImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewUserCache creates a new Redis-backed user cache.
func NewUserCache(client *redis.Client, prefix string, ttl time.Duration) domain.UserCache {
	return &UserCacheImpl{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Put implements domain.UserCache
func (c *UserCacheImpl) Put(ctx context.Context, token string, user *domain.User) error {
	key := c.prefix + token
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Get implements domain.UserCache. A corrupt record is deleted and reported
// as a miss rather than an error, so a bad cache entry can never wedge the
// session flow.
func (c *UserCacheImpl) Get(ctx context.Context, token string) (*domain.User, error) {
	key := c.prefix + token
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrUserCacheMiss
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		c.client.Del(ctx, key)
		return nil, domain.ErrUserCacheMiss
	}

	return &user, nil
}

// Delete implements domain.UserCache
func (c *UserCacheImpl) Delete(ctx context.Context, token string) error {
	key := c.prefix + token
	return c.client.Del(ctx, key).Err()
}
