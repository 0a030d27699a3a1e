package kit

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

const persistTimeout = 2 * time.Second

// LoadHighScore reads the stored high score for gameID. Failures are logged
// and read as zero.
func LoadHighScore(store core.HighScoreStore, logger *log.Logger, gameID string) int {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	n, err := store.HighScore(ctx, core.HighScoreKey(gameID))
	if err != nil {
		logger.Warn("cannot load high score", "game", gameID, "error", err)
		return 0
	}
	return n
}

// SaveHighScore persists score for gameID. Failures are logged only.
func SaveHighScore(store core.HighScoreStore, logger *log.Logger, gameID string, score int) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := store.SaveHighScore(ctx, core.HighScoreKey(gameID), score); err != nil {
		logger.Warn("cannot save high score", "game", gameID, "score", score, "error", err)
		return
	}
	logger.Debug("new high score", "game", gameID, "score", score)
}

// LoadVictories reads a victory counter. Failures are logged and read as
// zero.
func LoadVictories(store core.VictoryStore, logger *log.Logger, key string) int {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	n, err := store.Victories(ctx, key)
	if err != nil {
		logger.Warn("cannot load victories", "key", key, "error", err)
		return 0
	}
	return n
}

// AddVictory bumps a victory counter and returns the new total, or -1 when
// the store failed.
func AddVictory(store core.VictoryStore, logger *log.Logger, key string) int {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	n, err := store.AddVictory(ctx, key)
	if err != nil {
		logger.Warn("cannot record victory", "key", key, "error", err)
		return -1
	}
	return n
}

// Seed returns cfg.Seed, or a clock-derived seed when it is zero.
func Seed(cfg core.RuntimeConfig) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}
