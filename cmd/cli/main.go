package main

import (
	"context"
	"log"
	"os"

	"github.com/fahadsheikh/rescuepoint/internal/buildinfo"
	"github.com/fahadsheikh/rescuepoint/internal/client/cli"
	"github.com/fahadsheikh/rescuepoint/internal/client/config"
	"github.com/fahadsheikh/rescuepoint/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewZap(cfg.Debug)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
