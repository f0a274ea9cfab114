package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "revoked_token:"

// RedisBlacklistStore keeps revoked tokens in Redis with a TTL equal to the
// remaining token lifetime, so entries expire on their own and survive
// process restarts.
type RedisBlacklistStore struct {
	client *redis.Client
}

// NewRedisBlacklistStore connects to the Redis instance at addr.
func NewRedisBlacklistStore(addr string, password string) (*RedisBlacklistStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisBlacklistStore{client: client}, nil
}

// IsBlacklisted checks if the given token is blacklisted.
func (s *RedisBlacklistStore) IsBlacklisted(token string) (bool, error) {
	n, err := s.client.Exists(context.Background(), blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddToBlacklist adds the given token to the blacklist with an expiration time.
// Tokens already past their expiry are not stored.
func (s *RedisBlacklistStore) AddToBlacklist(token string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(context.Background(), blacklistKeyPrefix+token, "revoked", ttl).Err()
}
