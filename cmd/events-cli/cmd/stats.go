package cmd

import (
	"fmt"

	"greekevents-backend/lib/feeds"
	"greekevents-backend/lib/normalize"
	"greekevents-backend/lib/report"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Normalizes the configured feeds and prints the grouped counts without touching the database.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		config := loadConfig()

		normalizer := normalize.New(config.Normalizer)
		events := normalizer.TransformAll(ctx, feeds.LoadSources(ctx, config.Sources))

		fmt.Printf("total events: %d\n", len(events))
		fmt.Println(report.RenderSummary(report.Summarize(events)))
	},
}
