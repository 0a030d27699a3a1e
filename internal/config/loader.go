package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "arcade.yaml"

// Load reads the arcade configuration.
// Search order: customPath -> ~/.arcade/configs/arcade.yaml -> ./configs/arcade.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial files are fine.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := Default()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, candidate.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects values the engines cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Snake.BoardSize <= 0 {
		errs = append(errs, errors.New("snake.board_size must be positive"))
	}
	if c.Snake.InitialInterval <= 0 || c.Snake.MinInterval <= 0 {
		errs = append(errs, errors.New("snake intervals must be positive"))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, errors.New("snake.initial_length must be at least 1"))
	}
	if c.Pacman.Tick <= 0 {
		errs = append(errs, errors.New("pacman.tick must be positive"))
	}
	if c.Pacman.WanderChase < 0 || c.Pacman.WanderChase > 1 {
		errs = append(errs, errors.New("pacman.wander_chase must be within [0, 1]"))
	}
	if c.Tetris.Rows < 4 || c.Tetris.Cols < 4 {
		errs = append(errs, errors.New("tetris board must be at least 4x4"))
	}
	if c.Tetris.Tick <= 0 {
		errs = append(errs, errors.New("tetris.tick must be positive"))
	}
	if c.Memory.TwoPlayer && len(c.Memory.Players) < 2 {
		errs = append(errs, errors.New("memory.players needs two names in two-player mode"))
	}
	if c.Escape.BoardSize <= 0 || c.Escape.Tick <= 0 || c.Escape.ShadowOdds < 1 {
		errs = append(errs, errors.New("escape board_size, tick and shadow_odds must be positive"))
	}
	switch c.Storage.Backend {
	case "", BackendSQLite, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("storage.backend %q is not sqlite or redis", c.Storage.Backend))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
