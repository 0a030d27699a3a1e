package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults drifted from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults fail validation: %v", err)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	data := "snake:\n  board_size: 16\n  initial_interval: 200ms\ntetris:\n  line_points: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Snake.BoardSize != 16 {
		t.Errorf("BoardSize = %d, expected 16", cfg.Snake.BoardSize)
	}
	if cfg.Snake.InitialInterval != 200*time.Millisecond {
		t.Errorf("InitialInterval = %v, expected 200ms", cfg.Snake.InitialInterval)
	}
	if cfg.Tetris.LinePoints != 10 {
		t.Errorf("LinePoints = %d, expected 10", cfg.Tetris.LinePoints)
	}
	// Untouched sections keep defaults
	if cfg.Pacman.Tick != 300*time.Millisecond {
		t.Errorf("Pacman.Tick = %v, expected default 300ms", cfg.Pacman.Tick)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: mongo\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "mongo") {
		t.Errorf("expected backend validation error, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		snakeStart time.Duration
		tetrisTick time.Duration
		factor     float64
	}{
		{DifficultyEasy, 195 * time.Millisecond, 650 * time.Millisecond, 0.99935},
		{DifficultyNormal, 150 * time.Millisecond, 500 * time.Millisecond, 0.99935},
		{DifficultyHard, 105 * time.Millisecond, 350 * time.Millisecond, 0.99935},
		{DifficultyFixed, 150 * time.Millisecond, 500 * time.Millisecond, 1},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Snake.InitialInterval != tc.snakeStart {
				t.Errorf("snake interval = %v, expected %v", cfg.Snake.InitialInterval, tc.snakeStart)
			}
			if cfg.Tetris.Tick != tc.tetrisTick {
				t.Errorf("tetris tick = %v, expected %v", cfg.Tetris.Tick, tc.tetrisTick)
			}
			if cfg.Snake.SpeedFactor != tc.factor {
				t.Errorf("speed factor = %v, expected %v", cfg.Snake.SpeedFactor, tc.factor)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
