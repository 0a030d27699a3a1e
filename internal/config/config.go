// Package config provides YAML-based tuning for every engine plus the
// storage and event endpoints, with embedded defaults and difficulty presets.
package config

import "time"

// Config is the root of arcade.yaml.
type Config struct {
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Snake      SnakeConfig      `yaml:"snake"`
	Pacman     PacmanConfig     `yaml:"pacman"`
	Tetris     TetrisConfig     `yaml:"tetris"`
	Memory     MemoryConfig     `yaml:"memory"`
	Escape     EscapeConfig     `yaml:"escape"`
	Storage    StorageConfig    `yaml:"storage"`
	Events     EventsConfig     `yaml:"events"`
}

// SnakeConfig tunes the Snake engine.
type SnakeConfig struct {
	BoardSize       int           `yaml:"board_size"`
	InitialInterval time.Duration `yaml:"initial_interval"`
	MinInterval     time.Duration `yaml:"min_interval"`
	SpeedFactor     float64       `yaml:"speed_factor"` // interval multiplier per food
	InitialLength   int           `yaml:"initial_length"`
	FoodPoints      int           `yaml:"food_points"`
}

// PacmanConfig tunes the Pac-Man engine.
type PacmanConfig struct {
	Tick             time.Duration `yaml:"tick"`
	Invulnerable     time.Duration `yaml:"invulnerable"`      // grace period at round start
	GhostsVulnerable time.Duration `yaml:"ghosts_vulnerable"` // window after a power pellet
	FoodPoints       int           `yaml:"food_points"`
	PelletPoints     int           `yaml:"pellet_points"`
	WanderChase      float64       `yaml:"wander_chase"` // chase probability of the wandering ghost
}

// TetrisConfig tunes the Tetris engine.
type TetrisConfig struct {
	Rows       int           `yaml:"rows"`
	Cols       int           `yaml:"cols"`
	Tick       time.Duration `yaml:"tick"`
	LinePoints int           `yaml:"line_points"`
}

// MemoryConfig tunes the Memory-match engine.
type MemoryConfig struct {
	GameName      string        `yaml:"game_name"` // prefix of victory counter keys
	MatchDelay    time.Duration `yaml:"match_delay"`
	MismatchDelay time.Duration `yaml:"mismatch_delay"`
	LevelPause    time.Duration `yaml:"level_pause"`
	TwoPlayer     bool          `yaml:"two_player"`
	Players       []string      `yaml:"players"`
	StartTier     int           `yaml:"start_tier"` // 1-based
}

// EscapeConfig tunes the Escape engine.
type EscapeConfig struct {
	BoardSize   int           `yaml:"board_size"`
	Tick        time.Duration `yaml:"tick"`
	SparkPoints int           `yaml:"spark_points"`
	ShadowOdds  int           `yaml:"shadow_odds"` // a shadow spawns with chance 1/ShadowOdds per tick
}

// Storage backends for high scores and victories.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// StorageConfig selects where high scores and victories live.
type StorageConfig struct {
	Backend string      `yaml:"backend"` // "sqlite" or "redis"
	Path    string      `yaml:"path"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// EventsConfig holds the optional NATS result feed settings.
type EventsConfig struct {
	NATSURL       string        `yaml:"nats_url"` // empty disables publishing
	Subject       string        `yaml:"subject"`
	MaxReconnects int           `yaml:"max_reconnects"`
	ReconnectWait time.Duration `yaml:"reconnect_wait"`
}
