package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/games/memory"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for the
scoreboard. Leaving a game with Esc returns to the menu.

Examples:
  arcade menu
  arcade menu --difficulty easy
  arcade menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := openApp(ctx, flagDifficulty, true)
	if err != nil {
		return err
	}
	defer a.Close()

	env := a.env()
	cfg := runtimeConfig()

	for ctx.Err() == nil {
		res, err := tui.RunMenu(ctx, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(ctx, env, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			svc := env.Services
			if res.GameID == memory.ID {
				sel, err := tui.RunMemoryModeSelector(ctx, cfg)
				if err != nil {
					return err
				}
				if sel == nil {
					continue
				}
				sel.Apply(&svc.Config.Memory)
			}

			game, err := registry.Create(res.GameID, svc)
			if err != nil {
				return err
			}
			if err := tui.Run(ctx, game, tui.Env{Services: svc, History: env.History}, cfg); err != nil {
				a.logger.Error("game ended with error", "game", res.GameID, "error", err)
			}
		}
	}
	return nil
}
