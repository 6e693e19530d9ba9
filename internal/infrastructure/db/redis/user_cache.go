package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/domainpanel/backend/internal/core/domain"
)

const (
	userCacheTTL = 15 * time.Minute
	userKeyFmt   = "user:%s"
)

// UserCache caches user records by id for the token-refresh flow.
// Entries expire after userCacheTTL and are invalidated on any
// directory mutation, so a refresh never sees state older than the TTL.
type UserCache struct {
	client *redis.Client
}

func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// cachedUser is the wire form stored in Redis. The password hash is
// deliberately excluded: the refresh flow never needs it and secrets
// stay out of the cache tier.
type cachedUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Get returns the cached user, or (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("user cache decode: %w", err)
	}

	return &domain.User{
		ID:        cu.ID,
		Name:      cu.Name,
		Email:     cu.Email,
		Role:      cu.Role,
		Status:    cu.Status,
		CreatedAt: cu.CreatedAt,
		UpdatedAt: cu.UpdatedAt,
	}, nil
}

func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, userCacheTTL).Err()
}

func (c *UserCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *UserCache) key(id string) string {
	return fmt.Sprintf(userKeyFmt, id)
}
