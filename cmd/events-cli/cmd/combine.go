package cmd

import (
	"fmt"

	"greekevents-backend/lib/feeds"
	"greekevents-backend/lib/normalize"
	"greekevents-backend/lib/report"
	"greekevents-backend/services/catalog"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(combineCmd)
}

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Loads every configured feed, normalizes it and seeds the catalog database.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		config := loadConfig()

		database := openDB(config)
		defer database.Close()
		service := catalog.NewService(database)

		normalizer := normalize.New(config.Normalizer)
		batches := feeds.LoadSources(ctx, config.Sources)
		events := normalizer.TransformAll(ctx, batches)

		result := service.PersistBatch(ctx, events)

		deals := catalog.BatchResult{}
		for _, batch := range feeds.LoadSources(ctx, config.Deals) {
			for _, raw := range batch.Records {
				switch service.PersistDeal(ctx, normalizer.NormalizeDeal(raw, batch.Source)) {
				case catalog.ResultCreated:
					deals.Created++
				case catalog.ResultSkippedDuplicate:
					deals.Skipped++
				case catalog.ResultFailed:
					deals.Failed++
				}
			}
		}

		fmt.Printf(
			"events: %d created, %d skipped, %d failed\n",
			result.Created, result.Skipped, result.Failed,
		)
		if len(config.Deals) > 0 {
			fmt.Printf(
				"deals: %d created, %d skipped, %d failed\n",
				deals.Created, deals.Skipped, deals.Failed,
			)
		}
		fmt.Println(report.RenderSummary(report.Summarize(events)))
	},
}
