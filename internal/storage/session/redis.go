package session

import (
	"context"
	"errors"
	"time"

	"eterno_memorial/internal/storage"
	redisapp "eterno_memorial/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

const sessionKey = "session:operator_token"

// Redis persists the operator token across CLI runs.
type Redis struct {
	Client *redisapp.Client
	TTL    time.Duration
}

func NewRedis(client *redisapp.Client, ttl time.Duration) *Redis {
	return &Redis{Client: client, TTL: ttl}
}

func (r *Redis) Token(ctx context.Context) (string, error) {
	val, err := r.Client.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", storage.ErrNoToken
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *Redis) SetToken(ctx context.Context, token string) error {
	return r.Client.Set(ctx, sessionKey, token, r.TTL).Err()
}

func (r *Redis) Clear(ctx context.Context) error {
	return r.Client.Del(ctx, sessionKey).Err()
}
