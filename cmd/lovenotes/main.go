package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NethermindEth/lovenotes/pkg/composer"
	"github.com/NethermindEth/lovenotes/pkg/composer/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setupResult, err := setup.Setup(ctx)
	if err != nil {
		slog.Error("failed to setup", "error", err)
		os.Exit(1)
	}

	composerConfig, err := composer.NewComposerConfigFromSetupResult(ctx, setupResult)
	if err != nil {
		slog.Error("failed to create composer config", "error", err)
		os.Exit(1)
	}

	c, err := composer.NewComposer(ctx, composerConfig)
	if err != nil {
		slog.Error("failed to create composer", "error", err)
		os.Exit(1)
	}

	if err := c.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("composer stopped", "error", err)
		os.Exit(1)
	}

	slog.Info("composer stopped")
}
