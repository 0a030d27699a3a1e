package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
}

// TempoForPreset returns the multiplier applied to tick intervals.
// Above 1 slows the game down.
func TempoForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.3
	case DifficultyHard:
		return 0.7
	default:
		return 1.0
	}
}

// ApplyPreset scales every tick interval of cfg for preset. The fixed
// preset also turns off the snake speed ramp.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	tempo := TempoForPreset(preset)
	cfg.Difficulty = preset

	cfg.Snake.InitialInterval = scale(cfg.Snake.InitialInterval, tempo)
	cfg.Snake.MinInterval = scale(cfg.Snake.MinInterval, tempo)
	cfg.Pacman.Tick = scale(cfg.Pacman.Tick, tempo)
	cfg.Tetris.Tick = scale(cfg.Tetris.Tick, tempo)
	cfg.Escape.Tick = scale(cfg.Escape.Tick, tempo)

	if preset == DifficultyFixed {
		cfg.Snake.SpeedFactor = 1
	}
}

func scale(d time.Duration, k float64) time.Duration {
	return time.Duration(float64(d) * k).Round(time.Millisecond)
}
