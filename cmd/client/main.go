package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/popx/internal/buildinfo"
	"github.com/dmitrijs2005/popx/internal/client/cli"
	"github.com/dmitrijs2005/popx/internal/client/config"
	"github.com/dmitrijs2005/popx/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "client start failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
