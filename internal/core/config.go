package core

// RuntimeConfig contains configuration passed to games when a round starts.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Redraw rate of the presentation layer
	Seed    int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 30,
		FPS:     30,
	}
}

// GameState is the engine-independent summary the platform needs.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool
	Status    string // engine status enum, e.g. "playing", "game_over"
	Outcome   string // human readable result once the round is over
	Winner    string // set by two-sided games
}
