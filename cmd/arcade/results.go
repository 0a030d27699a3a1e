package main

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/events"
)

var (
	flagNATSURL     string
	flagResultsGame string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Tail finished rounds published on NATS",
	Long: `Subscribe to the result feed and print each finished round.
The URL and subject default to the events section of arcade.yaml.

Examples:
  arcade results
  arcade results --nats nats://localhost:4222 --game tetris`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagNATSURL, "nats", "", "NATS server URL (default: events.nats_url or "+nats.DefaultURL+")")
	resultsCmd.Flags().StringVar(&flagResultsGame, "game", "", "Only show this game")
}

func runResults(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	evCfg := cfg.Events
	switch {
	case flagNATSURL != "":
		evCfg.NATSURL = flagNATSURL
	case evCfg.NATSURL == "":
		evCfg.NATSURL = nats.DefaultURL
	}

	logger, _ := newLogger(false)
	client, err := events.Connect(evCfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "listening on %s\n", events.Subject(evCfg.Subject, flagResultsGame))

	return client.Subscribe(cmd.Context(), flagResultsGame, func(r core.Result) {
		line := fmt.Sprintf("%s  %-10s  score %d", r.Finished.Local().Format("15:04:05"), r.GameID, r.Score)
		if r.Outcome != "" {
			line += "  " + r.Outcome
		}
		fmt.Fprintln(out, line)
	})
}
