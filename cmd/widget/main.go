package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/listen/internal/config"
	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/prefs"
	"github.com/dmitrijs2005/listen/internal/storage"
	"github.com/dmitrijs2005/listen/internal/widget"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listen-widget: %v\n", err)
		return 2
	}

	headless := cfg.Headless || !term.IsTerminal(int(os.Stdout.Fd()))

	// The interactive card owns the terminal, so logs go nowhere unless a
	// log file is configured.
	var fallback io.Writer = os.Stderr
	if !headless {
		fallback = io.Discard
	}
	out, closeLog, err := logging.Output(cfg.LogFile, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listen-widget: %v\n", err)
		return 1
	}
	defer closeLog()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listen-widget: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore := storage.OpenReadOnly(ctx, cfg.LocalStorePath, cfg.SharedStorePath, logger)
	defer closeStore()

	err = widget.Run(ctx, widget.Options{
		Store:             store,
		SocketPath:        cfg.WidgetSocket,
		Kind:              cfg.WidgetKind,
		RefreshInterval:   cfg.RefreshInterval,
		ImmediateInterval: cfg.ImmediateRefreshInterval,
		ThemeName:         prefs.Load(cfg.PrefsPath).Theme,
		PrefsPath:         cfg.PrefsPath,
		Headless:          headless,
		Out:               os.Stdout,
		Logger:            logger,
	})
	if err != nil {
		logger.Error(ctx, "widget host stopped", "error", err)
		fmt.Fprintf(os.Stderr, "listen-widget: %v\n", err)
		return 1
	}
	return 0
}
