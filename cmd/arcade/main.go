// arcade runs the pocket arcade games in the terminal.
//
// Usage:
//
//	arcade list                  - List available games
//	arcade play <game>           - Play a game
//	arcade menu                  - Pick games interactively
//	arcade scores [game]         - Show score history, high scores and victories
//	arcade serve                 - Start SSH server for remote play
//	arcade export --out f        - Write the score history to Parquet
//	arcade watch <ws-url>        - Print snapshots streamed by play --spectate
//	arcade results               - Tail finished rounds published on NATS
//
// Global flags:
//
//	--fps <rate>     - Redraw rate (default: 30)
//	--seed <value>   - RNG seed for reproducible rounds
//	--db <path>      - Score database (default: storage.path from config)
//	--config <path>  - arcade.yaml to load
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pocket-arcade/internal/games/escape"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/memory"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/pacman"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/snake"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/tetris"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pocket Arcade - Snake, Pac-Man, Tetris and friends in your terminal",
	Long: `Pocket Arcade runs small tick-driven games in the terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View score history, high scores and victories
  serve    - Start SSH server for remote play
  export   - Export score history to Parquet
  watch    - Follow a game streamed with play --spectate
  results  - Tail finished rounds published on NATS

Examples:
  arcade list
  arcade play snake
  arcade play memory --two-player --players Anna,Bob
  arcade play pacman --spectate :8090
  arcade serve --ssh :2222
  arcade scores tetris`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: storage.path from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arcade.yaml")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(resultsCmd)
}
