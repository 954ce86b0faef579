package cmd

import (
	"context"
	"database/sql"
	"log"
	"os"

	"greekevents-backend/lib/configutil"
	"greekevents-backend/lib/feeds"
	"greekevents-backend/lib/normalize"
	"greekevents-backend/services/catalog/db"

	"dario.cat/mergo"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "events-cli",
	Short: "Normalizes scraped Greek event feeds and seeds the catalog database.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "events.json5",
		"path to the pipeline config file",
	)
}

func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

type Config struct {
	// local sqlite file; ignored when DatabaseUrl is set
	Database string `json:"database"`
	// remote libsql url, for the hosted database
	DatabaseUrl string           `json:"database_url"`
	Sources     []feeds.Source   `json:"sources"`
	Deals       []feeds.Source   `json:"deals"`
	Normalizer  normalize.Config `json:"normalizer"`
}

func loadConfig() Config {
	config, err := configutil.ReadConfig[Config](configPath)
	if os.IsNotExist(err) {
		log.Fatalf("no config found at %s", configPath)
	}
	if err != nil {
		log.Fatal(err)
	}

	// config files override the pipeline defaults field by field
	err = mergo.Merge(&config.Normalizer, normalize.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	if config.Database == "" {
		config.Database = "events.db"
	}
	return config
}

func openDB(config Config) *sql.DB {
	var database *sql.DB
	var err error
	if config.DatabaseUrl != "" {
		database, err = sql.Open("libsql", config.DatabaseUrl)
	} else {
		database, err = sql.Open("sqlite", config.Database)
	}
	if err != nil {
		log.Fatal(err)
	}
	_, err = database.Exec(db.Schema)
	if err != nil {
		log.Fatal(err)
	}
	return database
}
