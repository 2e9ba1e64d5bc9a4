package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/joho/godotenv"

	"github.com/quintech/quintech-backend/internal/progression"
	"github.com/quintech/quintech-backend/pkg/config"
	"github.com/quintech/quintech-backend/pkg/enums"
	"github.com/quintech/quintech-backend/pkg/logger"
	"github.com/quintech/quintech-backend/pkg/pubsub"
)

const publishTimeout = 15 * time.Second

// Publishes a single task completion event, for seeding and manual checks
// against a running tasks worker.
func main() {
	logg := logger.New(logger.Options{ServiceName: "tasks-publisher"})

	_ = godotenv.Load()

	handle := flag.String("handle", "", "handle of the user that completed the task")
	taskID := flag.String("task", "", "task id to attribute the completion to")
	flag.Parse()

	if *handle == "" {
		fmt.Fprintln(os.Stderr, "missing -handle")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "tasks-publisher",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	pubsubClient, err := pubsub.NewClient(ctx, cfg.GCP, cfg.PubSub, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap pubsub", err)
		os.Exit(1)
	}
	defer func() {
		if err := pubsubClient.Close(); err != nil {
			logg.Error(ctx, "error closing pubsub client", err)
		}
	}()

	payload, err := json.Marshal(progression.TaskEvent{
		Type:   enums.TaskEventCompleted,
		Handle: *handle,
		TaskID: *taskID,
	})
	if err != nil {
		logg.Error(ctx, "failed to encode task event", err)
		os.Exit(1)
	}

	publisher := pubsubClient.TaskEventsPublisher()
	if publisher == nil {
		logg.Error(ctx, "task events topic not configured", nil)
		os.Exit(1)
	}

	result := publisher.Publish(ctx, &gcppubsub.Message{Data: payload})
	id, err := result.Get(ctx)
	if err != nil {
		logg.Error(ctx, "failed to publish task event", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"handle":     *handle,
		"task_id":    *taskID,
		"message_id": id,
	})
	logg.Info(ctx, "task completion published")
}
