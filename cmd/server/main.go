package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ferdiebergado/inflowkit/internal/app"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	slog.Info("Starting server...")
	if err := app.Run(context.Background()); err != nil {
		slog.Error("Application failed to start.", "reason", err)
		os.Exit(1)
	}
	slog.Info("Server shutdown gracefully.")
}
