package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

const redisKeyPrefix = "arcade:"

// saveMaxScript stores ARGV[1] only when it beats the current value.
var saveMaxScript = redis.NewScript(`
local cur = tonumber(redis.call("GET", KEYS[1]) or "-1")
local val = tonumber(ARGV[1])
if val > cur then
	redis.call("SET", KEYS[1], val)
	return val
end
return cur
`)

// RedisStore keeps high scores and victory counters in Redis.
// Score history stays in SQLite.
type RedisStore struct {
	client *redis.Client
}

var (
	_ core.HighScoreStore = (*RedisStore)(nil)
	_ core.VictoryStore   = (*RedisStore)(nil)
)

// NewRedisStore creates a client for cfg and verifies the connection.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot reach redis at %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Close releases the connection pool.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

func (r *RedisStore) HighScore(ctx context.Context, key string) (int, error) {
	n, err := r.client.Get(ctx, redisKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}
	return n, nil
}

func (r *RedisStore) SaveHighScore(ctx context.Context, key string, score int) error {
	if err := saveMaxScript.Run(ctx, r.client, []string{redisKey(key)}, score).Err(); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

func (r *RedisStore) Victories(ctx context.Context, key string) (int, error) {
	return r.HighScore(ctx, key)
}

func (r *RedisStore) AddVictory(ctx context.Context, key string) (int, error) {
	n, err := r.client.Incr(ctx, redisKey(key)).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot add victory: %w", err)
	}
	return int(n), nil
}
