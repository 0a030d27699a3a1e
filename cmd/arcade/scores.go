package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show score history, high scores and victories",
	Long: `With a game, display its top 10 scores and stored high score.
Without one, summarise every game and list the victory counters.

Examples:
  arcade scores
  arcade scores snake`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), "", false)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		return printGameScores(cmd.Context(), out, a, args[0])
	}
	return printSummary(cmd.Context(), out, a)
}

func printGameScores(ctx context.Context, out io.Writer, a *app, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	scores, err := a.backend.History.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", titleOf(gameID))

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'arcade play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
	}

	best, err := a.backend.Scores.HighScore(ctx, core.HighScoreKey(gameID))
	if err != nil {
		return err
	}
	if best > 0 {
		fmt.Fprintf(out, "\nBest: %d\n", best)
	}
	return nil
}

func printSummary(ctx context.Context, out io.Writer, a *app) error {
	stats, err := a.backend.History.AllGamesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Games")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-12s  %6s  %6s  %8s  %s\n", "Game", "Rounds", "Best", "Average", "Last played")
	for _, g := range registry.List() {
		st, ok := stats[g.ID]
		best, err := a.backend.Scores.HighScore(ctx, core.HighScoreKey(g.ID))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(out, "  %-12s  %6d  %6d  %8s  %s\n", g.ID, 0, best, "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-12s  %6d  %6d  %8.1f  %s\n", g.ID, st.GamesCount, core.Max(best, st.BestScore),
			st.AvgScore, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	// Victory counters can only be listed from SQLite; Redis keeps them by key.
	if a.cfg.Storage.Backend == config.BackendRedis {
		return nil
	}
	wins, err := a.backend.History.AllVictories(ctx)
	if err != nil {
		return err
	}
	if len(wins) == 0 {
		return nil
	}
	sort.Slice(wins, func(i, j int) bool { return wins[i].Value > wins[j].Value })

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Victories")
	fmt.Fprintln(out)
	for _, w := range wins {
		fmt.Fprintf(out, "  %-32s  %d\n", w.Key, w.Value)
	}
	return nil
}

func titleOf(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}
