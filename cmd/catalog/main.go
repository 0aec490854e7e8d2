package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/article-catalog-client/internal/app"
	"github.com/samvad-hq/article-catalog-client/internal/config"
	"github.com/samvad-hq/article-catalog-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "catalog browse failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.InfoObj("catalog browser starting", "config", cfg.LogFields())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	browser, err := app.NewBrowser(cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize browser", "error", err)
		return err
	}
	defer browser.Close()

	if err := browser.Run(ctx); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	return nil
}
