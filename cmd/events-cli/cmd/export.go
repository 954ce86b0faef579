package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"greekevents-backend/lib/feeds"
	"greekevents-backend/lib/normalize"

	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(
		&exportOutput, "output", "o", "all_events_combined.json",
		"file the combined canonical events are written to",
	)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the combined canonical events to a JSON file.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		config := loadConfig()

		normalizer := normalize.New(config.Normalizer)
		events := normalizer.TransformAll(ctx, feeds.LoadSources(ctx, config.Sources))

		contents, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		err = os.WriteFile(exportOutput, contents, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %d events to %s\n", len(events), exportOutput)
	},
}
