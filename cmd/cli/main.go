package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/apavlova/daybook/internal/cli"
	"github.com/apavlova/daybook/internal/config"
	"github.com/apavlova/daybook/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	log := logging.NewSlogLogger(slog.New(handler))

	app := cli.NewApp(cfg, log)
	app.Run(context.Background())
}
