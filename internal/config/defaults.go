package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// Default returns the built-in configuration. It matches defaults/arcade.yaml.
func Default() Config {
	return Config{
		Difficulty: DifficultyNormal,
		Snake: SnakeConfig{
			BoardSize:       24,
			InitialInterval: 150 * time.Millisecond,
			MinInterval:     50 * time.Millisecond,
			SpeedFactor:     0.99935,
			InitialLength:   4,
			FoodPoints:      5,
		},
		Pacman: PacmanConfig{
			Tick:             300 * time.Millisecond,
			Invulnerable:     3 * time.Second,
			GhostsVulnerable: 5 * time.Second,
			FoodPoints:       5,
			PelletPoints:     10,
			WanderChase:      0.6,
		},
		Tetris: TetrisConfig{
			Rows:       20,
			Cols:       10,
			Tick:       500 * time.Millisecond,
			LinePoints: 5,
		},
		Memory: MemoryConfig{
			GameName:      "Memoria",
			MatchDelay:    400 * time.Millisecond,
			MismatchDelay: 800 * time.Millisecond,
			LevelPause:    1500 * time.Millisecond,
			Players:       []string{"Player 1", "Player 2"},
			StartTier:     1,
		},
		Escape: EscapeConfig{
			BoardSize:   20,
			Tick:        200 * time.Millisecond,
			SparkPoints: 10,
			ShadowOdds:  5,
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    "~/.arcade/scores.db",
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				PoolSize: 10,
			},
		},
		Events: EventsConfig{
			Subject:       "arcade.results",
			MaxReconnects: 10,
			ReconnectWait: 2 * time.Second,
		},
	}
}
