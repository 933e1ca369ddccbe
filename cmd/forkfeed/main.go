package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forkfeed/forkfeed/internal/api"
	"github.com/forkfeed/forkfeed/internal/config"
	"github.com/forkfeed/forkfeed/internal/env"
	"github.com/forkfeed/forkfeed/internal/imaging"
	"github.com/forkfeed/forkfeed/internal/log"
	"github.com/forkfeed/forkfeed/internal/revalidate"
	"github.com/forkfeed/forkfeed/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	logger := log.New(nil)

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	images, err := setup.ImageStore(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup image store", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}

	environment := &env.Env{
		Logger:     logger,
		Database:   db,
		Images:     images,
		Normalizer: imaging.NewNormalizer(conf.Uploads.WebpQuality),
		Revalidate: revalidate.New(conf.Revalidate.URL, conf.Revalidate.Secret, logger),
		Config:     conf,
	}

	logger.DebugContext(ctx, "setting up admin")
	if err := setup.Admin(setupCtx, environment); err != nil {
		logger.Error("failed to setup admin", slog.Any("error", err))
		os.Exit(1)
	}

	if err := api.Start(environment); err != nil {
		environment.Logger.Error("API Failed", slog.Any("error", err))
		os.Exit(1)
	}
}
