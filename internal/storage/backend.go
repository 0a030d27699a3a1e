package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Backend bundles the score history with the key-value stores selected by
// the storage config.
type Backend struct {
	History *Store
	Scores  core.HighScoreStore
	Wins    core.VictoryStore

	redis *RedisStore
}

// OpenBackend opens the SQLite history at dbPath (cfg.Path when empty) and,
// for the redis backend, a Redis client for high scores and victories.
func OpenBackend(ctx context.Context, cfg config.StorageConfig, dbPath string) (*Backend, error) {
	if dbPath == "" {
		dbPath = cfg.Path
	}
	history, err := Open(dbPath)
	if err != nil {
		return nil, err
	}

	b := &Backend{History: history, Scores: history, Wins: history}
	switch cfg.Backend {
	case "", config.BackendSQLite:
	case config.BackendRedis:
		rs, err := NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			history.Close()
			return nil, err
		}
		b.redis = rs
		b.Scores = rs
		b.Wins = rs
	default:
		history.Close()
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
	return b, nil
}

// Close releases every open connection.
func (b *Backend) Close() error {
	var errs []error
	if b.redis != nil {
		errs = append(errs, b.redis.Close())
	}
	errs = append(errs, b.History.Close())
	return errors.Join(errs...)
}
