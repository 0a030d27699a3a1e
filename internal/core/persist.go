package core

import (
	"context"
	"fmt"
	"time"
)

// HighScoreStore keeps the best score per key ("high_score_snake").
type HighScoreStore interface {
	HighScore(ctx context.Context, key string) (int, error)
	// SaveHighScore stores score unless a higher one is already recorded.
	SaveHighScore(ctx context.Context, key string, score int) error
}

// VictoryStore keeps win counters per opponent pair.
type VictoryStore interface {
	Victories(ctx context.Context, key string) (int, error)
	// AddVictory increments the counter and returns the new total.
	AddVictory(ctx context.Context, key string) (int, error)
}

// HighScoreKey returns the storage key for a game's high score.
func HighScoreKey(gameID string) string {
	return "high_score_" + gameID
}

// VictoryKey returns the counter key for a win of winner over opponent.
func VictoryKey(game, winner, opponent string) string {
	return fmt.Sprintf("%s_%svs%s", game, winner, opponent)
}

// Result describes a finished round.
type Result struct {
	GameID   string    `json:"game_id"`
	Score    int       `json:"score"`
	Outcome  string    `json:"outcome,omitempty"`
	Winner   string    `json:"winner,omitempty"`
	Finished time.Time `json:"finished"`
}

// ResultPublisher announces finished rounds to interested parties.
type ResultPublisher interface {
	Publish(ctx context.Context, r Result) error
}
