package progression

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/quintech/quintech-backend/pkg/enums"
	"github.com/quintech/quintech-backend/pkg/logger"
)

const metricsEvent = enums.TaskEventCompleted

// TaskEvent is the payload published when a task reaches a terminal state.
type TaskEvent struct {
	Type   enums.TaskEventType `json:"type"`
	Handle string              `json:"handle"`
	TaskID string              `json:"taskId"`
}

type taskCompleter interface {
	CompleteTask(ctx context.Context, handle string) error
}

// Consumer watches task events and awards points for completions. The award
// is fire-and-forget: every message is acked regardless of outcome, and a
// failed award is only logged.
type Consumer struct {
	service      taskCompleter
	subscription *pubsub.Subscriber
	logg         *logger.Logger
}

// NewConsumer builds a task-completion consumer.
func NewConsumer(service taskCompleter, subscription *pubsub.Subscriber, logg *logger.Logger) (*Consumer, error) {
	if service == nil {
		return nil, fmt.Errorf("progression service required")
	}
	if subscription == nil {
		return nil, fmt.Errorf("task events subscription required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Consumer{
		service:      service,
		subscription: subscription,
		logg:         logg,
	}, nil
}

// Run starts the consumer loop until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	return c.subscription.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		c.process(ctx, msg)
		msg.Ack()
	})
}

func (c *Consumer) process(ctx context.Context, msg *pubsub.Message) {
	logCtx := c.logg.WithFields(ctx, map[string]any{
		"message_id": msg.ID,
	})

	var event TaskEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		c.logg.Error(logCtx, "failed to decode task event", err)
		return
	}

	logCtx = c.logg.WithFields(logCtx, map[string]any{
		"event_type": string(event.Type),
		"handle":     event.Handle,
		"task_id":    event.TaskID,
	})

	if !event.Type.IsValid() {
		c.logg.Info(logCtx, "skipping non-completion event")
		return
	}
	if strings.TrimSpace(event.Handle) == "" {
		c.logg.Warn(logCtx, "task event missing handle")
		return
	}

	if err := c.service.CompleteTask(ctx, event.Handle); err != nil {
		c.logg.Error(logCtx, "failed to apply task award", err)
		return
	}
	c.logg.Info(logCtx, "task award applied")
}
