package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jotdown-app/jotdown/adapter/cli"
	"github.com/jotdown-app/jotdown/internal/app"
	"github.com/jotdown-app/jotdown/pkg/config"
	"github.com/jotdown-app/jotdown/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()
		cli.SetApp(container)
	}
	cli.SetLogger(logger)

	root := cli.Root()
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
