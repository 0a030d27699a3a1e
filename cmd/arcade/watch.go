package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/platform/spectate"
)

var watchCmd = &cobra.Command{
	Use:   "watch <ws-url>",
	Short: "Print the snapshots of a game streamed with play --spectate",
	Long: `Connect to a spectator stream and print one JSON line per snapshot.

Examples:
  arcade play snake --spectate :8090   # in one terminal
  arcade watch ws://localhost:8090/    # in another`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	return spectate.Watch(cmd.Context(), args[0], func(ev spectate.Event) error {
		if ev.Type == spectate.EventInfo {
			var info struct {
				Title string `json:"title"`
			}
			if err := json.Unmarshal(ev.Data, &info); err == nil {
				fmt.Fprintf(out, "watching %s\n", info.Title)
			}
			return nil
		}
		_, err := fmt.Fprintf(out, "%d %s\n", ev.Seq, ev.Data)
		return err
	})
}
