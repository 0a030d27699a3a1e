package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagExportOut  string
	flagExportGame string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export score history to a Parquet file",
	Long: `Write every recorded score, or those of one game, to a zstd
compressed Parquet file.

Examples:
  arcade export --out scores.parquet
  arcade export --out snake.parquet --game snake`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "Output file")
	exportCmd.Flags().StringVar(&flagExportGame, "game", "", "Only export this game")
	exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context(), "", false)
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.backend.History.ExportScores(flagExportOut, flagExportGame)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d scores to %s\n", n, flagExportOut)
	return nil
}
