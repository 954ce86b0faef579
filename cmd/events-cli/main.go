package main

import (
	"context"
	"log/slog"
	"os"

	"greekevents-backend/cmd/events-cli/cmd"
	"greekevents-backend/lib/telemetry"
)

func main() {
	verbose := os.Getenv("EVENTS_VERBOSE") != ""
	telemetry.InitSlog(verbose)

	ctx := context.Background()
	tel, err := telemetry.SetupFromEnv(ctx, "events-cli")
	if err == nil {
		defer tel.Shutdown(ctx)
	} else if !os.IsNotExist(err) {
		slog.Error("setup telemetry", "err", err)
		os.Exit(1)
	}

	cmd.Execute(ctx)
}
