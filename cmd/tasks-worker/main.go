package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/quintech/quintech-backend/internal/profiles"
	"github.com/quintech/quintech-backend/internal/progression"
	"github.com/quintech/quintech-backend/pkg/config"
	"github.com/quintech/quintech-backend/pkg/db"
	"github.com/quintech/quintech-backend/pkg/logger"
	"github.com/quintech/quintech-backend/pkg/metrics"
	"github.com/quintech/quintech-backend/pkg/migrate"
	"github.com/quintech/quintech-backend/pkg/pubsub"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "tasks-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "tasks-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	pubsubClient, err := pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap pubsub", err)
		os.Exit(1)
	}
	defer func() {
		if err := pubsubClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing pubsub client", err)
		}
	}()

	subscription := pubsubClient.TaskEventsSubscription()
	if subscription == nil {
		logg.Error(context.Background(), "task events subscription not configured", nil)
		os.Exit(1)
	}

	progressionMetrics := metrics.NewProgressionMetrics(prometheus.DefaultRegisterer)
	service, err := progression.NewService(profiles.NewRepository(dbClient.DB()), progressionMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create progression service", err)
		os.Exit(1)
	}

	consumer, err := progression.NewConsumer(service, subscription, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create task consumer", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":          cfg.App.Env,
		"subscription": cfg.PubSub.TaskEventsSubscription,
	})
	logg.Info(ctx, "starting tasks worker")

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "tasks worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "tasks worker shutting down gracefully")
}
