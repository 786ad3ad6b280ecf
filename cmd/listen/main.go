package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/listen/internal/buildinfo"
	"github.com/dmitrijs2005/listen/internal/cli"
	"github.com/dmitrijs2005/listen/internal/config"
	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/services"
	"github.com/dmitrijs2005/listen/internal/storage"
	"github.com/dmitrijs2005/listen/internal/widgetcenter"
)

func main() {
	os.Exit(run())
}

func run() int {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listen: %v\n", err)
		return 2
	}

	out, closeLog, err := logging.Output(cfg.LogFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listen: %v\n", err)
		return 1
	}
	defer closeLog()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listen: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := storage.Open(ctx, cfg.LocalStorePath, cfg.SharedStorePath, logger)
	if err != nil {
		logger.Error(ctx, "store init error", "error", err)
		return 1
	}
	defer closeStore()

	var reloader services.Reloader = services.NopReloader{}
	if client, err := widgetcenter.Dial(cfg.WidgetSocket, cfg.ReloadTimeout, logger); err != nil {
		logger.Warn(ctx, "widget signal disabled", "error", err)
	} else {
		defer client.Close()
		reloader = client
	}

	entries := services.NewEntryService(store, reloader, logger, services.EntryServiceOptions{WidgetKind: cfg.WidgetKind})
	profile := services.NewProfileService(store, entries, logger, nil)

	cli.NewApp(services.NewJournal(entries, profile), os.Stdin, os.Stdout, logger).Run(ctx)
	return 0
}
