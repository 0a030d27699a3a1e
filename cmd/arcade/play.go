package main

import (
	"context"
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/pocket-arcade/internal/games/memory"
	"github.com/vovakirdan/pocket-arcade/internal/platform/spectate"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

var (
	flagDifficulty string
	flagSpectate   string
	flagTwoPlayer  bool
	flagPlayers    []string
	flagTier       int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, steer, move the cursor
  Enter/Space  - Tap a card or square, hard drop
  X            - Rotate (Tetris)
  R            - Restart
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower ticks
  normal - Configured speeds
  hard   - Faster ticks
  fixed  - Configured speeds, Snake never speeds up

Examples:
  arcade play snake
  arcade play tetris --difficulty hard
  arcade play memory --tier 3
  arcade play memory --two-player --players Anna,Bob
  arcade play pacman --spectate :8090`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream snapshots to websocket viewers on this address")
	playCmd.Flags().BoolVar(&flagTwoPlayer, "two-player", false, "Memory: two players take turns")
	playCmd.Flags().StringSliceVar(&flagPlayers, "players", nil, "Memory: player names, comma separated")
	playCmd.Flags().IntVar(&flagTier, "tier", 0, "Memory: starting tier (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	a, err := openApp(cmd.Context(), flagDifficulty, true)
	if err != nil {
		return err
	}
	defer a.Close()

	memoryFlags := cmd.Flags().Changed("two-player") || cmd.Flags().Changed("tier")
	if gameID == memory.ID && !memoryFlags {
		sel, err := tui.RunMemoryModeSelector(cmd.Context(), runtimeConfig())
		if err != nil || sel == nil {
			return err
		}
		sel.Apply(&a.cfg.Memory)
	}
	if cmd.Flags().Changed("two-player") {
		a.cfg.Memory.TwoPlayer = flagTwoPlayer
	}
	if len(flagPlayers) > 0 {
		a.cfg.Memory.Players = flagPlayers
	}
	if flagTier > 0 {
		a.cfg.Memory.StartTier = flagTier
	}

	game, err := registry.Create(gameID, a.services())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// Leaving the game ends the spectator stream too.
		defer cancel()
		return tui.Run(ctx, game, a.env(), runtimeConfig())
	})

	if flagSpectate != "" {
		srv := spectate.NewServer(game, a.logger)
		g.Go(func() error {
			return spectate.ListenAndServe(ctx, flagSpectate, srv, func(addr net.Addr) {
				a.logger.Info("spectators can connect", "url", "ws://"+addr.String()+"/")
			})
		})
	}

	return g.Wait()
}
